package main

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/branchline"
	"github.com/phanxgames/branchline/internal/config"
	"github.com/phanxgames/branchline/internal/ui"
)

var version = "0.3.0"

var (
	configPath string
	eventsPath string
)

var rootCmd = &cobra.Command{
	Use:     "branchline",
	Short:   "branchline: animated branching timelines",
	Long:    ui.Brand.Sprint("branchline") + " renders events as an animated, branching timeline\n" + ui.Subtle.Sprint("View it in a window, export it as SVG, or list the computed layout"),
	Version: version,
	// Errors are printed by Execute in color.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.SetVersionTemplate("branchline {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Settings file (TOML)")
	rootCmd.PersistentFlags().StringVar(&eventsPath, "events", "", "Event list (.yaml, .yml or .toml); defaults to the sample events")

	rootCmd.AddCommand(
		viewCmd(),
		svgCmd(),
		eventsCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		ui.Bad.Fprintf(rootCmd.ErrOrStderr(), "branchline: %v\n", err)
	}
	return err
}

// loadInputs reads the settings and the event list. The --events flag wins
// over the settings file.
func loadInputs() (*config.Config, []branchline.Event, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	path := eventsPath
	if path == "" {
		path = cfg.EventsFile
	}
	events, err := config.LoadEvents(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, events, nil
}
