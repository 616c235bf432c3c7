package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRunUnknownCommand(t *testing.T) {
	err := run(context.Background(), []string{"bogus"})
	if !errors.Is(err, errUsage) {
		t.Errorf("run(bogus) error = %v, want errUsage", err)
	}
}

func TestRunNoArgs(t *testing.T) {
	err := run(context.Background(), nil)
	if !errors.Is(err, errUsage) {
		t.Errorf("run() error = %v, want errUsage", err)
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := runHelp(nil, &out); err != nil {
		t.Fatalf("runHelp() error = %v", err)
	}
	if !strings.Contains(out.String(), "Usage: dentdown") {
		t.Errorf("runHelp() output = %q", out.String())
	}
}

func TestRunHelpConvert(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := runHelp([]string{"convert"}, &out); err != nil {
		t.Fatalf("runHelp(convert) error = %v", err)
	}
	if !strings.Contains(out.String(), "--workers") {
		t.Errorf("runHelp(convert) output = %q", out.String())
	}
}

func TestRunHelpUnknownCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := runHelp([]string{"bogus"}, &out)
	if !errors.Is(err, errUsage) {
		t.Errorf("runHelp(bogus) error = %v, want errUsage", err)
	}
}

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"convert", "-v", "file.dd"}, true},
		{[]string{"convert", "--verbose"}, true},
		{[]string{"convert", "file.dd"}, false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
