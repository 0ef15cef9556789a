// Package config loads fahrplan settings from a TOML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Validation errors.
var (
	ErrColWidthTooSmall = errors.New("render.col_width must be at least 8")
	ErrUnknownFormat    = errors.New("render.format must be table, list or proportional")
	ErrUnknownColorMode = errors.New("render.color must be auto, always or never")
)

// Config is the resolved application configuration: defaults, then the
// config file, then FAHRPLAN_* environment variables, each layer
// overriding the previous one.
type Config struct {
	Render   RenderConfig   `toml:"render"`
	UI       UIConfig       `toml:"ui"`
	Schedule ScheduleConfig `toml:"schedule"`
}

type RenderConfig struct {
	// ColWidth is the grid column width in terminal cells.
	ColWidth int `toml:"col_width"`
	// Format is the default output format: table, list or proportional.
	Format string `toml:"format"`
	// Color is auto, always or never.
	Color string `toml:"color"`
}

type UIConfig struct {
	// Theme names the browser color theme.
	Theme string `toml:"theme"`
}

type ScheduleConfig struct {
	// DefaultLocale replaces the parser's fallback locale on sources
	// that carry no per-talk language, e.g. most ICS feeds.
	DefaultLocale string `toml:"default_locale"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Render: RenderConfig{
			ColWidth: 20,
			Format:   "table",
			Color:    "auto",
		},
		UI: UIConfig{
			Theme: "mocha",
		},
		Schedule: ScheduleConfig{
			DefaultLocale: "en",
		},
	}
}

// Path returns the default config file location,
// ~/.config/fahrplan/config.toml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "fahrplan", "config.toml"), nil
}

// Load reads the configuration from path. A missing file is not an
// error: the defaults apply. Environment overrides apply either way.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDefault loads from the default path.
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return Load(path)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FAHRPLAN_COL_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Render.ColWidth = n
		}
	}
	if v := os.Getenv("FAHRPLAN_FORMAT"); v != "" {
		cfg.Render.Format = v
	}
	if v := os.Getenv("FAHRPLAN_COLOR"); v != "" {
		cfg.Render.Color = v
	}
	if v := os.Getenv("FAHRPLAN_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("FAHRPLAN_LOCALE"); v != "" {
		cfg.Schedule.DefaultLocale = v
	}
}

// Validate checks the configuration for values no command could use.
func (c Config) Validate() error {
	if c.Render.ColWidth < 8 {
		return fmt.Errorf("%w: got %d", ErrColWidthTooSmall, c.Render.ColWidth)
	}
	switch c.Render.Format {
	case "table", "list", "proportional":
	default:
		return fmt.Errorf("%w: got %q", ErrUnknownFormat, c.Render.Format)
	}
	switch c.Render.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: got %q", ErrUnknownColorMode, c.Render.Color)
	}
	return nil
}
