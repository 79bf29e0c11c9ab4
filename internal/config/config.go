// Package config loads the branchline CLI settings and event files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// DefaultPath is the settings file read when no --config flag is given.
const DefaultPath = "branchline.toml"

// Config holds the CLI settings. Every field can be overridden from the
// environment.
type Config struct {
	Window        WindowConfig `toml:"window"`
	Debug         bool         `toml:"debug" env:"BRANCHLINE_DEBUG"`
	ScreenshotDir string       `toml:"screenshot_dir" env:"BRANCHLINE_SCREENSHOT_DIR"`
	EventsFile    string       `toml:"events_file" env:"BRANCHLINE_EVENTS"`
	Threshold     float64      `toml:"threshold" env:"BRANCHLINE_THRESHOLD"`
}

// WindowConfig controls the interactive viewer window.
type WindowConfig struct {
	Title   string `toml:"title" env:"BRANCHLINE_TITLE"`
	Width   int    `toml:"width" env:"BRANCHLINE_WIDTH"`
	Height  int    `toml:"height" env:"BRANCHLINE_HEIGHT"`
	ShowFPS bool   `toml:"show_fps" env:"BRANCHLINE_SHOW_FPS"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "branchline",
			Width:  960,
			Height: 640,
		},
		ScreenshotDir: "screenshots",
		Threshold:     0.2,
	}
}

// Load reads the TOML settings at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv parses environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("config: threshold %v outside [0, 1]", c.Threshold)
	}
	return nil
}
