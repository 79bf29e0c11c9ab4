package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phanxgames/branchline"
	"github.com/phanxgames/branchline/internal/ui"
)

func eventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List events with their computed layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, events, err := loadInputs()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(events) == 0 {
				ui.Warn.Fprintln(out, "  no events")
				return nil
			}
			l := branchline.DefaultLayout()
			ui.Table(out, []string{"ID", "TITLE", "DATE", "BRANCH", "X", "Y", "DELAY"}, eventRows(l, events))
			b := l.CanvasBounds(events)
			ui.Subtle.Fprintf(out, "\n  canvas %gx%g\n", b.Width, b.Height)
			return nil
		},
	}
}

func eventRows(l branchline.Layout, events []branchline.Event) [][]string {
	rows := make([][]string, 0, len(events))
	for _, p := range l.Place(events) {
		rows = append(rows, []string{
			strconv.Itoa(p.Event.ID),
			p.Event.Title,
			p.Event.Date,
			ui.BranchLabel(p.Event.Branch),
			strconv.FormatFloat(p.Endpoint.X, 'f', -1, 64),
			strconv.FormatFloat(p.Endpoint.Y, 'f', -1, 64),
			strconv.FormatFloat(p.Delay, 'f', 2, 64) + "s",
		})
	}
	return rows
}
