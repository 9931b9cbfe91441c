package gridgraph

import "fmt"

// MaxCells bounds rows×cols for any Grid.
const MaxCells = 1 << 24

// CellCount returns rows×cols without overflowing.
// Returns ErrEmptyGrid if either dimension is not positive and a wrapped
// ErrGridTooLarge if the product exceeds MaxCells.
func CellCount(rows, cols int) (int, error) {
	if rows <= 0 || cols <= 0 {
		return 0, ErrEmptyGrid
	}
	if rows > MaxCells/cols {
		return 0, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrGridTooLarge, rows, cols, MaxCells)
	}

	return rows * cols, nil
}

// NewGrid constructs an all-Empty rows×cols grid with the given endpoints.
// Returns ErrEmptyGrid if either dimension is not positive, ErrGridTooLarge
// past MaxCells, ErrOutOfBounds if an endpoint lies outside the grid and
// ErrSameEndpoints if they coincide.
// Complexity: O(R×C) time and memory.
func NewGrid(rows, cols int, start, end Coord) (*Grid, error) {
	n, err := CellCount(rows, cols)
	if err != nil {
		return nil, err
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellState, n),
		start: start,
		end:   end,
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, rows, cols)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v in %dx%d grid", ErrOutOfBounds, end, rows, cols)
	}
	if start == end {
		return nil, ErrSameEndpoints
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the fixed start cell.
func (g *Grid) Start() Coord { return g.start }

// End returns the fixed end cell.
func (g *Grid) End() Coord { return g.end }

// InBounds reports whether c lies within [0,R)×[0,C).
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Neighbors returns the in-bounds 4-neighbors of c in the order
// up, down, left, right. Walls are included; filter with IsTraversable.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// State returns the state of c, or ErrOutOfBounds.
func (g *Grid) State(c Coord) (CellState, error) {
	if !g.InBounds(c) {
		return Empty, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells[g.index(c)], nil
}

// IsTraversable reports whether c is in bounds and not a Wall.
// Complexity: O(1).
func (g *Grid) IsTraversable(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells[g.index(c)] != Wall
}

// SetCellState paints c with state.
// Returns ErrOutOfBounds, ErrImmutableEndpoint for Start/End,
// or ErrSearchInProgress while a search holds the grid.
func (g *Grid) SetCellState(c Coord, state CellState) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if c == g.start || c == g.end {
		return fmt.Errorf("%w: %v", ErrImmutableEndpoint, c)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.searching {
		return ErrSearchInProgress
	}
	g.cells[g.index(c)] = state

	return nil
}

// Reset clears every wall. Refused with ErrSearchInProgress during a search.
func (g *Grid) Reset() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.searching {
		return ErrSearchInProgress
	}
	for i := range g.cells {
		g.cells[i] = Empty
	}

	return nil
}

// Walls returns every Wall cell in row-major order.
func (g *Grid) Walls() []Coord {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []Coord
	for i, s := range g.cells {
		if s == Wall {
			out = append(out, g.coordinate(i))
		}
	}

	return out
}

// Clone returns a deep copy of g. The copy is never marked as searching.
func (g *Grid) Clone() *Grid {
	g.mu.RLock()
	defer g.mu.RUnlock()
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)

	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
		start: g.start,
		end:   g.end,
	}
}

// BeginSearch marks the grid as held by a search. Until EndSearch is called,
// SetCellState and Reset fail with ErrSearchInProgress. A second BeginSearch
// fails the same way.
func (g *Grid) BeginSearch() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.searching {
		return ErrSearchInProgress
	}
	g.searching = true

	return nil
}

// EndSearch releases the grid for painting.
func (g *Grid) EndSearch() {
	g.mu.Lock()
	g.searching = false
	g.mu.Unlock()
}

// Searching reports whether a search currently holds the grid.
func (g *Grid) Searching() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.searching
}

// index maps c to a row-major index: Row*cols + Col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// coordinate converts a row-major index back to a Coord.
func (g *Grid) coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}
