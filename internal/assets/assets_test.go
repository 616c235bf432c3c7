package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	css, err := loader.LoadStyle("plain")
	if err != nil {
		t.Fatalf("LoadStyle(plain) error = %v", err)
	}
	if !strings.Contains(css, "body") {
		t.Errorf("LoadStyle(plain) missing body rule in:\n%s", css)
	}
}

func TestLoadStyleNotFound(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	_, err := loader.LoadStyle("nonexistent")
	if !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
	}
}

func TestLoadStyleInvalidName(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	_, err := loader.LoadStyle("../escape")
	if !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStyle() error = %v, want ErrInvalidAssetName", err)
	}
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	names := NewEmbeddedLoader().StyleNames()

	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	for _, want := range []string{"plain", "manuscript"} {
		if !found[want] {
			t.Errorf("StyleNames() = %v, missing %q", names, want)
		}
	}
}

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		assetName string
		wantErr   bool
	}{
		{name: "valid simple name", assetName: "plain", wantErr: false},
		{name: "valid with hyphen", assetName: "my-style", wantErr: false},
		{name: "valid with underscore", assetName: "my_style", wantErr: false},
		{name: "empty name", assetName: "", wantErr: true},
		{name: "path traversal", assetName: "../secret", wantErr: true},
		{name: "forward slash", assetName: "dir/name", wantErr: true},
		{name: "backslash", assetName: "dir\\name", wantErr: true},
		{name: "dot extension", assetName: "plain.css", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.assetName)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAssetName(%q) error = %v, wantErr %v", tt.assetName, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", tt.assetName, err)
			}
		})
	}
}
