package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[render]
col_width = 24
format = "list"

[schedule]
default_locale = "de"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Render.ColWidth != 24 {
		t.Errorf("col_width = %d, want 24", cfg.Render.ColWidth)
	}
	if cfg.Render.Format != "list" {
		t.Errorf("format = %q, want list", cfg.Render.Format)
	}
	if cfg.Render.Color != "auto" {
		t.Errorf("color = %q, want the default auto", cfg.Render.Color)
	}
	if cfg.Schedule.DefaultLocale != "de" {
		t.Errorf("default_locale = %q, want de", cfg.Schedule.DefaultLocale)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[render]\nformat = \"list\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FAHRPLAN_FORMAT", "proportional")
	t.Setenv("FAHRPLAN_COL_WIDTH", "32")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Render.Format != "proportional" {
		t.Errorf("format = %q, want proportional", cfg.Render.Format)
	}
	if cfg.Render.ColWidth != 32 {
		t.Errorf("col_width = %d, want 32", cfg.Render.ColWidth)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults pass", func(*Config) {}, nil},
		{"narrow columns", func(c *Config) { c.Render.ColWidth = 4 }, ErrColWidthTooSmall},
		{"bad format", func(c *Config) { c.Render.Format = "grid" }, ErrUnknownFormat},
		{"bad color", func(c *Config) { c.Render.Color = "sometimes" }, ErrUnknownColorMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}
