package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/branchline"
	"github.com/phanxgames/branchline/internal/ui"
)

// background is gray-900.
var background = branchline.Color{R: 0x11 / 255.0, G: 0x18 / 255.0, B: 0x27 / 255.0, A: 1}

func viewCmd() *cobra.Command {
	var (
		scriptPath string
		reveal     bool
	)
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the timeline in a window",
		Long: "Open the timeline in a window. It starts below the fold: scroll down\n" +
			"(mouse wheel) to bring it into view and start the animation.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, events, err := loadInputs()
			if err != nil {
				return err
			}
			w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)

			scene := branchline.NewScene()
			scene.ClearColor = background
			scene.ScreenshotDir = cfg.ScreenshotDir
			scene.SetDebugMode(cfg.Debug)

			tl, err := branchline.New(events,
				branchline.WithVisibilityThreshold(cfg.Threshold),
				branchline.WithVisibleHandler(func() {
					ui.Subtle.Fprintln(cmd.OutOrStdout(), "  timeline in view")
				}),
			)
			if err != nil {
				return err
			}

			// Place the timeline one screen below the top, centered when it is
			// narrower than the window.
			b := tl.Bounds()
			offsetX := 0.0
			if b.Width < w {
				offsetX = (w - b.Width) / 2
			}
			tl.Root().SetPosition(offsetX, h)

			cam := scene.NewCamera(branchline.Rect{Width: w, Height: h})
			cam.SetBounds(branchline.Rect{
				Width:  max(w, b.X+b.Width+offsetX),
				Height: h + b.Y + b.Height,
			})
			if reveal {
				cam.ScrollTo(cam.X, h+b.Y+b.Height/2, 1.2, ease.InOutQuad)
			}

			if err := tl.Mount(scene); err != nil {
				return err
			}
			defer tl.Unmount()

			if scriptPath != "" {
				data, err := os.ReadFile(scriptPath)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				runner, err := branchline.LoadTestScript(data)
				if err != nil {
					return err
				}
				scene.SetTestRunner(runner)
				scene.SetUpdateFunc(func() error {
					if runner.Done() {
						return ebiten.Termination
					}
					return nil
				})
			}

			ui.Info.Fprintf(cmd.OutOrStdout(), "  %d events, %.0fx%.0f canvas\n", len(events), b.Width, b.Height)
			err = branchline.Run(scene, branchline.RunConfig{
				Title:     cfg.Window.Title,
				Width:     cfg.Window.Width,
				Height:    cfg.Window.Height,
				ShowFPS:   cfg.Window.ShowFPS,
				Resizable: true,
			})
			if err != nil {
				return fmt.Errorf("run: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "JSON test script to play, then exit")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Scroll the timeline into view on start")
	return cmd
}
