package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBreachCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "breach",
		Short: "Report the fewest walls to clear so the end becomes reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := root.loadBoard()
			if err != nil {
				return err
			}
			g, err := b.Grid()
			if err != nil {
				return fmt.Errorf("failed to build board: %w", err)
			}
			walls, cost, err := g.MinBreach()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if cost == 0 {
				_, err = fmt.Fprintln(out, "start and end are already connected")
				return err
			}
			fmt.Fprintf(out, "clear %d wall(s):\n", cost)
			for _, w := range walls {
				fmt.Fprintf(out, "  %d,%d\n", w.Row, w.Col)
			}

			return nil
		},
	}
}
