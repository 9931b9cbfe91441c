package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/board"
	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Default board size when no board file is given.
const (
	defaultRows = 20
	defaultCols = 30
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	debug     bool
	boardFile string
	rows      int
	cols      int
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "gridsearch",
		Short: "Run breadth-first and A* searches over painted grids",
		Long: `gridsearch loads a grid board (YAML or text layout), runs breadth-first
search or A* from its start cell to its end cell, and shows which cells
were visited and the path that was found.

Text boards use '.' for empty cells, '#' for walls, 'S' for the start and
'E' for the end.

Examples:
  # Run A* over a text board
  gridsearch run --board maze.txt --algorithm astar

  # Run BFS on an empty 20x30 board with two painted walls
  gridsearch run --wall 3,4 --wall 3,5

  # Serve searches to a browser over a websocket
  gridsearch serve --addr :8080 --delay 20ms`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(f.debug)
		},
	}
	cmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&f.boardFile, "board", "b", "", "Board file (.yaml or .txt)")
	cmd.PersistentFlags().IntVar(&f.rows, "rows", defaultRows, "Rows of the generated board when --board is not set")
	cmd.PersistentFlags().IntVar(&f.cols, "cols", defaultCols, "Columns of the generated board when --board is not set")

	cmd.AddCommand(newRunCmd(f), newBreachCmd(f), newServeCmd())

	return cmd
}

// setupLogging installs a text slog handler on stderr.
func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadBoard reads --board, or describes an empty --rows×--cols board.
func (f *rootFlags) loadBoard() (board.Board, error) {
	if f.boardFile == "" {
		return board.Board{Rows: f.rows, Cols: f.cols}, nil
	}
	b, err := board.Load(f.boardFile)
	if err != nil {
		return board.Board{}, err
	}
	slog.Debug("board loaded", "file", f.boardFile)

	return b, nil
}

// parseCoord parses "row,col".
func parseCoord(s string) (gridgraph.Coord, error) {
	var c gridgraph.Coord
	if _, err := fmt.Sscanf(s, "%d,%d", &c.Row, &c.Col); err != nil {
		return c, fmt.Errorf("invalid cell %q (want row,col): %w", s, err)
	}

	return c, nil
}
