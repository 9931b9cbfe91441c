package board

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Board is the on-disk description of a grid.
// Layout, when set, wins over Rows, Cols, Start, End and Walls.
type Board struct {
	Rows      int               `yaml:"rows,omitempty" json:"rows,omitempty"`
	Cols      int               `yaml:"cols,omitempty" json:"cols,omitempty"`
	Start     *gridgraph.Coord  `yaml:"start,omitempty" json:"start,omitempty"`
	End       *gridgraph.Coord  `yaml:"end,omitempty" json:"end,omitempty"`
	Algorithm string            `yaml:"algorithm,omitempty" json:"algorithm,omitempty"`
	Walls     []gridgraph.Coord `yaml:"walls,omitempty" json:"walls,omitempty"`
	Layout    string            `yaml:"layout,omitempty" json:"layout,omitempty"`
}

// DefaultEndpoints places start at (R/7, C/7) and end at (⌊R/1.5⌋, ⌊C/1.5⌋).
func DefaultEndpoints(rows, cols int) (start, end gridgraph.Coord) {
	start = gridgraph.Coord{Row: rows / 7, Col: cols / 7}
	end = gridgraph.Coord{Row: rows * 2 / 3, Col: cols * 2 / 3}

	return start, end
}

// Grid builds the Grid described by b.
func (b Board) Grid() (*gridgraph.Grid, error) {
	if strings.TrimSpace(b.Layout) != "" {
		return ParseText(strings.NewReader(b.Layout))
	}

	start, end := DefaultEndpoints(b.Rows, b.Cols)
	if b.Start != nil {
		start = *b.Start
	}
	if b.End != nil {
		end = *b.End
	}
	g, err := gridgraph.NewGrid(b.Rows, b.Cols, start, end)
	if err != nil {
		return nil, err
	}
	for _, w := range b.Walls {
		if err := g.SetCellState(w, gridgraph.Wall); err != nil {
			return nil, fmt.Errorf("%w %v: %w", ErrBadWall, w, err)
		}
	}

	return g, nil
}

// FromGrid describes g as a Board with an explicit wall list.
func FromGrid(g *gridgraph.Grid, algorithm string) Board {
	start, end := g.Start(), g.End()

	return Board{
		Rows:      g.Rows(),
		Cols:      g.Cols(),
		Start:     &start,
		End:       &end,
		Algorithm: algorithm,
		Walls:     g.Walls(),
	}
}

// Decode reads a YAML Board from r. Unknown fields are rejected.
func Decode(r io.Reader) (Board, error) {
	var b Board
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return Board{}, fmt.Errorf("board: empty document")
		}
		return Board{}, fmt.Errorf("board: yaml decode: %w", err)
	}

	return b, nil
}

// Encode writes b to w as YAML.
func (b Board) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("board: yaml encode: %w", err)
	}

	return enc.Close()
}

// Load reads a Board from a YAML file, or from a text layout when the file
// name ends in ".txt".
func Load(filename string) (Board, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Board{}, fmt.Errorf("board: open %q: %w", filename, err)
	}
	defer f.Close()

	if strings.HasSuffix(filename, ".txt") {
		raw, err := io.ReadAll(f)
		if err != nil {
			return Board{}, fmt.Errorf("board: read %q: %w", filename, err)
		}
		return Board{Layout: string(raw)}, nil
	}

	return Decode(f)
}

// Save writes b to filename as YAML.
func (b Board) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("board: create %q: %w", filename, err)
	}
	if err := b.Encode(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
