package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	if *cfg != *want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "branchline.toml", `
debug = true
events_file = "events.yaml"
threshold = 0.5

[window]
title = "history"
width = 1280
show_fps = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug || cfg.EventsFile != "events.yaml" || cfg.Threshold != 0.5 {
		t.Errorf("top-level fields = %+v", cfg)
	}
	if cfg.Window.Title != "history" || cfg.Window.Width != 1280 || !cfg.Window.ShowFPS {
		t.Errorf("window = %+v", cfg.Window)
	}
	// Unset keys keep their defaults.
	if cfg.Window.Height != 640 || cfg.ScreenshotDir != "screenshots" {
		t.Errorf("defaults lost: height %d dir %q", cfg.Window.Height, cfg.ScreenshotDir)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeFile(t, "branchline.toml", "[window]\nwidth = 1280\n")
	t.Setenv("BRANCHLINE_WIDTH", "800")
	t.Setenv("BRANCHLINE_DEBUG", "true")
	t.Setenv("BRANCHLINE_THRESHOLD", "0.75")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("width = %d, want env value 800", cfg.Window.Width)
	}
	if !cfg.Debug || cfg.Threshold != 0.75 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "window = ["},
		{"zero width", "[window]\nwidth = 0\n"},
		{"threshold too high", "threshold = 1.5\n"},
		{"negative threshold", "threshold = -0.1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, "c.toml", tt.content)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("BRANCHLINE_WIDTH", "wide")
	if _, err := Load(filepath.Join(t.TempDir(), "none.toml")); err == nil {
		t.Error("expected an error for a non-numeric width")
	}
}
