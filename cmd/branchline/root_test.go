package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the root command with args, isolated from any settings file
// in the working directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	full := append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...)
	rootCmd.SetArgs(full)
	t.Cleanup(func() {
		eventsPath = ""
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSVGCommandStdout(t *testing.T) {
	out, err := run(t, "svg")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<svg") || strings.Count(out, `class="event"`) != 7 {
		t.Errorf("unexpected svg output:\n%s", out)
	}
}

func TestSVGCommandFile(t *testing.T) {
	events := filepath.Join(t.TempDir(), "events.yaml")
	if err := os.WriteFile(events, []byte("events:\n  - id: 1\n    title: Only\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(t.TempDir(), "out.svg")
	if _, err := run(t, "--events", events, "svg", "-o", dst); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Only") {
		t.Errorf("svg file missing the event title:\n%s", data)
	}
}

func TestEventsCommand(t *testing.T) {
	out, err := run(t, "events")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"TITLE", "Root Timeline", "Further Growth", "canvas 1120x600"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBadEventsFile(t *testing.T) {
	if _, err := run(t, "--events", "timeline.json", "events"); err == nil {
		t.Error("expected an error for an unreadable events file")
	}
}
