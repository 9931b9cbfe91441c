package gridgraph_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// newGrid builds a rows×cols grid with endpoints at opposite corners.
func newGrid(t *testing.T, rows, cols int) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.NewGrid(rows, cols, gridgraph.Coord{}, gridgraph.Coord{Row: rows - 1, Col: cols - 1})
	require.NoError(t, err)

	return g
}

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty grids and bad endpoints.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		start, end gridgraph.Coord
		err        error
	}{
		{"NoRows", 0, 3, gridgraph.Coord{}, gridgraph.Coord{Col: 1}, gridgraph.ErrEmptyGrid},
		{"NoCols", 3, 0, gridgraph.Coord{}, gridgraph.Coord{Col: 1}, gridgraph.ErrEmptyGrid},
		{"StartOutside", 3, 3, gridgraph.Coord{Row: -1}, gridgraph.Coord{Col: 1}, gridgraph.ErrOutOfBounds},
		{"EndOutside", 3, 3, gridgraph.Coord{}, gridgraph.Coord{Row: 3}, gridgraph.ErrOutOfBounds},
		{"SameEndpoints", 3, 3, gridgraph.Coord{Row: 1, Col: 1}, gridgraph.Coord{Row: 1, Col: 1}, gridgraph.ErrSameEndpoints},
		{"ProductOverflows", math.MaxInt/2 + 1, 4, gridgraph.Coord{}, gridgraph.Coord{Row: 1}, gridgraph.ErrGridTooLarge},
		{"PastMaxCells", gridgraph.MaxCells/2 + 1, 2, gridgraph.Coord{}, gridgraph.Coord{Row: 1}, gridgraph.ErrGridTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.rows, tc.cols, tc.start, tc.end)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestCellCount verifies the overflow-safe size check.
func TestCellCount(t *testing.T) {
	n, err := gridgraph.CellCount(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	n, err = gridgraph.CellCount(gridgraph.MaxCells, 1)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.MaxCells, n)

	_, err = gridgraph.CellCount(gridgraph.MaxCells, 2)
	assert.ErrorIs(t, err, gridgraph.ErrGridTooLarge)

	// overflows int with unchecked multiplication
	_, err = gridgraph.CellCount(math.MaxInt/4+1, 4)
	assert.ErrorIs(t, err, gridgraph.ErrGridTooLarge)

	_, err = gridgraph.CellCount(0, 5)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g := newGrid(t, 2, 3)
	for _, c := range []gridgraph.Coord{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []gridgraph.Coord{{-1, 0}, {2, 0}, {0, 3}, {1, -1}} {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
	}
}

//----------------------------------------------------------------------------//
// Neighbors and traversability
//----------------------------------------------------------------------------//

// TestNeighbors_Order pins the up, down, left, right enumeration order.
func TestNeighbors_Order(t *testing.T) {
	g := newGrid(t, 3, 3)
	assert.Equal(t,
		[]gridgraph.Coord{{0, 1}, {2, 1}, {1, 0}, {1, 2}},
		g.Neighbors(gridgraph.Coord{Row: 1, Col: 1}))
	// corner keeps the relative order of the surviving directions
	assert.Equal(t,
		[]gridgraph.Coord{{1, 0}, {0, 1}},
		g.Neighbors(gridgraph.Coord{}))
	assert.Equal(t,
		[]gridgraph.Coord{{1, 2}, {2, 1}},
		g.Neighbors(gridgraph.Coord{Row: 2, Col: 2}))
}

func TestIsTraversable(t *testing.T) {
	g := newGrid(t, 3, 3)
	mid := gridgraph.Coord{Row: 1, Col: 1}
	assert.True(t, g.IsTraversable(mid))
	require.NoError(t, g.SetCellState(mid, gridgraph.Wall))
	assert.False(t, g.IsTraversable(mid))
	assert.False(t, g.IsTraversable(gridgraph.Coord{Row: 5}))

	st, err := g.State(mid)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Wall, st)

	require.NoError(t, g.SetCellState(mid, gridgraph.Empty))
	assert.True(t, g.IsTraversable(mid))
}

//----------------------------------------------------------------------------//
// Painting rules
//----------------------------------------------------------------------------//

// TestSetCellState_Endpoints ensures start and end can never be painted.
func TestSetCellState_Endpoints(t *testing.T) {
	g := newGrid(t, 3, 3)
	assert.ErrorIs(t, g.SetCellState(g.Start(), gridgraph.Wall), gridgraph.ErrImmutableEndpoint)
	assert.ErrorIs(t, g.SetCellState(g.End(), gridgraph.Wall), gridgraph.ErrImmutableEndpoint)
	assert.ErrorIs(t, g.SetCellState(gridgraph.Coord{Row: 9}, gridgraph.Wall), gridgraph.ErrOutOfBounds)
	assert.True(t, g.IsTraversable(g.Start()))
	assert.True(t, g.IsTraversable(g.End()))
}

// TestSearchGate verifies that painting is rejected while a search holds the grid.
func TestSearchGate(t *testing.T) {
	g := newGrid(t, 3, 3)
	c := gridgraph.Coord{Row: 0, Col: 1}

	require.NoError(t, g.BeginSearch())
	assert.True(t, g.Searching())
	assert.ErrorIs(t, g.BeginSearch(), gridgraph.ErrSearchInProgress)
	assert.ErrorIs(t, g.SetCellState(c, gridgraph.Wall), gridgraph.ErrSearchInProgress)
	assert.ErrorIs(t, g.Reset(), gridgraph.ErrSearchInProgress)
	assert.True(t, g.IsTraversable(c), "rejected paint must not change the grid")

	g.EndSearch()
	assert.False(t, g.Searching())
	require.NoError(t, g.SetCellState(c, gridgraph.Wall))
	assert.False(t, g.IsTraversable(c))
}

func TestResetAndWalls(t *testing.T) {
	g := newGrid(t, 3, 3)
	require.NoError(t, g.SetCellState(gridgraph.Coord{Row: 1, Col: 2}, gridgraph.Wall))
	require.NoError(t, g.SetCellState(gridgraph.Coord{Row: 0, Col: 1}, gridgraph.Wall))
	assert.Equal(t, []gridgraph.Coord{{0, 1}, {1, 2}}, g.Walls())

	require.NoError(t, g.Reset())
	assert.Empty(t, g.Walls())
}

// TestClone ensures the copy is independent of the original.
func TestClone(t *testing.T) {
	g := newGrid(t, 2, 2)
	require.NoError(t, g.BeginSearch())
	cp := g.Clone()
	g.EndSearch()

	assert.False(t, cp.Searching())
	require.NoError(t, cp.SetCellState(gridgraph.Coord{Row: 0, Col: 1}, gridgraph.Wall))
	assert.True(t, g.IsTraversable(gridgraph.Coord{Row: 0, Col: 1}))
	assert.Equal(t, g.Start(), cp.Start())
	assert.Equal(t, g.End(), cp.End())
}

// TestConcurrentPaint paints from many goroutines under the race detector.
func TestConcurrentPaint(t *testing.T) {
	g := newGrid(t, 20, 20)
	var wg sync.WaitGroup
	for r := 1; r < 19; r++ {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			for c := 0; c < 20; c++ {
				_ = g.SetCellState(gridgraph.Coord{Row: row, Col: c}, gridgraph.Wall)
				_ = g.IsTraversable(gridgraph.Coord{Row: row, Col: c})
			}
		}(r)
	}
	wg.Wait()
	assert.Len(t, g.Walls(), 18*20)
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 8, gridgraph.Manhattan(gridgraph.Coord{}, gridgraph.Coord{Row: 4, Col: 4}))
	assert.Equal(t, 3, gridgraph.Manhattan(gridgraph.Coord{Row: 2, Col: 0}, gridgraph.Coord{Row: 0, Col: 1}))
	assert.True(t, gridgraph.Adjacent(gridgraph.Coord{Row: 1, Col: 1}, gridgraph.Coord{Row: 1, Col: 2}))
	assert.False(t, gridgraph.Adjacent(gridgraph.Coord{Row: 1, Col: 1}, gridgraph.Coord{Row: 2, Col: 2}))
	assert.Equal(t, "(1,2)", gridgraph.Coord{Row: 1, Col: 2}.String())
	assert.Equal(t, "wall", gridgraph.Wall.String())
}
