package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/board"
	"github.com/katalvlaran/gridsearch/engine"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/render"
	"github.com/katalvlaran/gridsearch/search"
)

type runFlags struct {
	algorithm engine.Algorithm
	walls     []string
	clear     []string
	trace     bool
	timeout   time.Duration
	save      string
}

func newRunCmd(root *rootFlags) *cobra.Command {
	f := &runFlags{algorithm: engine.BFS}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search a board and draw the visited cells and path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, root, f)
		},
	}
	cmd.Flags().VarP(&f.algorithm, "algorithm", "a", "Search algorithm: bfs or astar (overrides the board setting)")
	cmd.Flags().StringArrayVar(&f.walls, "wall", nil, "Paint a wall at row,col (repeatable)")
	cmd.Flags().StringArrayVar(&f.clear, "clear", nil, "Erase a wall at row,col (repeatable)")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "Print every visited cell as it is expanded")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "Abort the search after this long (0 = no limit)")
	cmd.Flags().StringVar(&f.save, "save", "", "Write the painted board to this YAML file")

	return cmd
}

func runSearch(cmd *cobra.Command, root *rootFlags, f *runFlags) error {
	b, err := root.loadBoard()
	if err != nil {
		return err
	}
	alg := f.algorithm
	if !cmd.Flags().Changed("algorithm") && b.Algorithm != "" {
		if alg, err = engine.ParseAlgorithm(b.Algorithm); err != nil {
			return err
		}
	}

	g, err := b.Grid()
	if err != nil {
		return fmt.Errorf("failed to build board: %w", err)
	}
	if err := paint(g, f.walls, gridgraph.Wall); err != nil {
		return err
	}
	if err := paint(g, f.clear, gridgraph.Empty); err != nil {
		return err
	}
	if f.save != "" {
		if err := board.FromGrid(g, alg.String()).Save(f.save); err != nil {
			return err
		}
		slog.Info("board saved", "file", f.save)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	out := cmd.OutOrStdout()
	var viewOpts []render.ViewOption
	if f.trace {
		viewOpts = append(viewOpts, render.WithTrace(out))
	}
	view := render.NewView(g, viewOpts...)

	slog.Info("Starting search",
		"algorithm", alg,
		"rows", g.Rows(),
		"cols", g.Cols(),
		"start", g.Start(),
		"end", g.End())

	res, err := engine.Run(g, g.Start(), g.End(), alg,
		search.WithContext(ctx),
		search.WithVisitor(view),
		search.WithLogger(slog.Default()),
	)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	view.SetResult(res)

	if err := view.Draw(out); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, summary(alg, res))

	return err
}

// paint applies state to every "row,col" in cells.
func paint(g *gridgraph.Grid, cells []string, state gridgraph.CellState) error {
	for _, s := range cells {
		c, err := parseCoord(s)
		if err != nil {
			return err
		}
		if err := g.SetCellState(c, state); err != nil {
			return fmt.Errorf("cannot paint %v: %w", c, err)
		}
	}

	return nil
}

// summary describes res in one line.
func summary(alg engine.Algorithm, res search.Result) string {
	switch res.Outcome {
	case search.Found:
		return fmt.Sprintf("%s: path of %d steps, %d cells visited", alg, len(res.Path), res.Expanded)
	case search.Unreachable:
		return fmt.Sprintf("%s: no path, %d cells visited", alg, res.Expanded)
	default:
		return fmt.Sprintf("%s: cancelled after %d cells", alg, res.Expanded)
	}
}
