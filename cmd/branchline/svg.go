package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/branchline"
	"github.com/phanxgames/branchline/internal/ui"
)

func svgCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Write the timeline as an animated SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, events, err := loadInputs()
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return branchline.WriteSVG(cmd.OutOrStdout(), events, branchline.DefaultLayout())
			}
			if err := writeSVGFile(output, events); err != nil {
				return err
			}
			ui.Good.Fprintf(cmd.ErrOrStderr(), "  wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func writeSVGFile(path string, events []branchline.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := branchline.WriteSVG(w, events, branchline.DefaultLayout()); err != nil {
		f.Close()
		return err
	}
	if err := flush(w, f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func flush(w *bufio.Writer, c io.Closer) error {
	if err := w.Flush(); err != nil {
		c.Close()
		return err
	}
	return c.Close()
}
