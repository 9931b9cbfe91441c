package gridgraph

import (
	"fmt"
	"sync"
)

// CellState is the paintable status of a single cell.
type CellState int

const (
	// Empty cells are traversable.
	Empty CellState = iota
	// Wall cells block movement.
	Wall
)

// String returns "empty" or "wall".
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// Coord addresses a cell by row and column. Identity is by value.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Coord) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// Adjacent reports whether a and b are 4-neighbors.
func Adjacent(a, b Coord) bool {
	return Manhattan(a, b) == 1
}

// neighborOffsets is the fixed enumeration order: up, down, left, right.
var neighborOffsets = [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a rectangular board of Empty/Wall cells with a fixed Start and End.
// Start and End are set by NewGrid and never change; they are always Empty.
//
// Cells are stored row-major. All methods are safe for concurrent use;
// writes are additionally refused while a search holds the grid.
type Grid struct {
	mu        sync.RWMutex
	rows      int
	cols      int
	cells     []CellState
	start     Coord
	end       Coord
	searching bool
}
