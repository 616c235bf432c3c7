package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadConfigFromPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfigFile(t, dir, "conf.yaml", `
input:
  defaultDir: ./docs
output:
  defaultDir: ./site
document:
  title: My Site
  style: plain
  standalone: true
workers: 4
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Input.DefaultDir != "./docs" {
		t.Errorf("Input.DefaultDir = %q", cfg.Input.DefaultDir)
	}
	if cfg.Output.DefaultDir != "./site" {
		t.Errorf("Output.DefaultDir = %q", cfg.Output.DefaultDir)
	}
	if cfg.Document.Title != "My Site" {
		t.Errorf("Document.Title = %q", cfg.Document.Title)
	}
	if cfg.Document.Style != "plain" {
		t.Errorf("Document.Style = %q", cfg.Document.Style)
	}
	if !cfg.Document.Standalone {
		t.Error("Document.Standalone = false, want true")
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
}

func TestLoadConfigEmptyName(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig("")
	if !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("LoadConfig() error = %v, want ErrEmptyConfigName", err)
	}
}

func TestLoadConfigPathNotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfigNameNotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig("definitely-not-a-real-config-name")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfigParseError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfigFile(t, dir, "bad.yaml", "workers: [not an int\n")

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
	}
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfigFile(t, dir, "unknown.yaml", "bogusField: true\n")

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Workers)
	}
	if cfg.Document.Standalone {
		t.Error("Standalone = true, want false")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"conf", false},
		{"conf.yaml", false},
		{"./conf.yaml", true},
		{"dir/conf.yaml", true},
		{`dir\conf.yaml`, true},
	}

	for _, tt := range tests {
		if got := isFilePath(tt.input); got != tt.want {
			t.Errorf("isFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
