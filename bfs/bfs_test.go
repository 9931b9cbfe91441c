package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/internal/gridtest"
	"github.com/katalvlaran/gridsearch/search"
)

// TestSearch_Errors verifies that invalid inputs are rejected before any visit.
func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search(nil, gridgraph.Coord{}, gridgraph.Coord{Col: 1})
	assert.ErrorIs(t, err, search.ErrNilGrid)

	g := gridtest.Grid(t,
		"S.#",
		"..E",
	)
	visits := 0
	onVisit := search.WithOnVisit(func(gridgraph.Coord) { visits++ })

	_, err = bfs.Search(g, g.Start(), gridgraph.Coord{Row: 5}, onVisit)
	assert.ErrorIs(t, err, search.ErrInvalidEndpoint)
	_, err = bfs.Search(g, g.Start(), g.Start(), onVisit)
	assert.ErrorIs(t, err, search.ErrInvalidEndpoint)
	_, err = bfs.Search(g, g.Start(), gridgraph.Coord{Row: 0, Col: 2}, onVisit)
	assert.ErrorIs(t, err, search.ErrInvalidEndpoint)
	assert.Zero(t, visits)
}

// TestSearch_OpenGrid covers the 5×5 corner-to-corner scenario.
func TestSearch_OpenGrid(t *testing.T) {
	start, end := gridgraph.Coord{}, gridgraph.Coord{Row: 4, Col: 4}
	g := gridtest.Open(t, 5, 5, start, end)

	res, err := bfs.Search(g, start, end)
	require.NoError(t, err)
	assert.Equal(t, search.Found, res.Outcome)
	assert.Len(t, res.Path, 8)
	gridtest.RequirePath(t, g, start, end, res.Path)
	// "down" is enumerated before "right", so the first column is exhausted first.
	assert.Equal(t, []gridgraph.Coord{
		{Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 3, Col: 0}, {Row: 4, Col: 0}, {Row: 4, Col: 1}, {Row: 4, Col: 2}, {Row: 4, Col: 3}, {Row: 4, Col: 4},
	}, res.Path)
}

// TestSearch_ShortestOnOpenGrids checks path length equals Manhattan distance.
func TestSearch_ShortestOnOpenGrids(t *testing.T) {
	cases := []struct {
		rows, cols int
		start, end gridgraph.Coord
	}{
		{1, 2, gridgraph.Coord{}, gridgraph.Coord{Col: 1}},
		{3, 7, gridgraph.Coord{Row: 2, Col: 6}, gridgraph.Coord{Row: 0, Col: 1}},
		{10, 10, gridgraph.Coord{Row: 1, Col: 1}, gridgraph.Coord{Row: 6, Col: 6}},
		{8, 3, gridgraph.Coord{Row: 7, Col: 0}, gridgraph.Coord{Row: 0, Col: 2}},
	}
	for _, tc := range cases {
		g := gridtest.Open(t, tc.rows, tc.cols, tc.start, tc.end)
		res, err := bfs.Search(g, tc.start, tc.end)
		require.NoError(t, err)
		require.Equal(t, search.Found, res.Outcome)
		assert.Len(t, res.Path, gridgraph.Manhattan(tc.start, tc.end))
		gridtest.RequirePath(t, g, tc.start, tc.end, res.Path)
	}
}

// TestSearch_Maze routes around walls and still finds the fewest steps.
func TestSearch_Maze(t *testing.T) {
	g := gridtest.Grid(t,
		"S.#....",
		".##.##.",
		"....#..",
		"##.##.#",
		"E......",
	)
	res, err := bfs.Search(g, g.Start(), g.End())
	require.NoError(t, err)
	require.Equal(t, search.Found, res.Outcome)
	gridtest.RequirePath(t, g, g.Start(), g.End(), res.Path)
	// S(0,0)→(1,0)→(2,0)→(2,1)→(2,2)→(3,2)→(4,2)→(4,1)→E(4,0)
	assert.Len(t, res.Path, 8)
}

// TestSearch_Barrier checks Unreachable and that exactly the start's region is visited.
func TestSearch_Barrier(t *testing.T) {
	g := gridtest.Grid(t,
		"S...",
		".#..",
		"####",
		"...E",
	)
	rec := &gridtest.Recorder{}
	res, err := bfs.Search(g, g.Start(), g.End(), search.WithVisitor(rec))
	require.NoError(t, err)
	assert.Equal(t, search.Unreachable, res.Outcome)
	assert.Nil(t, res.Path)
	assert.ElementsMatch(t, g.ReachableFrom(g.Start()), rec.Visits)
	assert.Equal(t, len(rec.Visits), res.Expanded)
}

// TestSearch_VisitOrder pins the layered visit order on a small open grid.
func TestSearch_VisitOrder(t *testing.T) {
	g := gridtest.Grid(t,
		"S..",
		"...",
		"..E",
	)
	rec := &gridtest.Recorder{}
	_, err := bfs.Search(g, g.Start(), g.End(), search.WithVisitor(rec))
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coord{
		{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}, {Row: 2, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2},
	}, rec.Visits)
}

// TestSearch_Deterministic runs twice and compares visits and path.
func TestSearch_Deterministic(t *testing.T) {
	g := gridtest.Grid(t,
		"S....#....",
		".##..#.##.",
		"..#.....#.",
		"#.####.#..",
		"......#..E",
	)
	a, b := &gridtest.Recorder{}, &gridtest.Recorder{}
	ra, err := bfs.Search(g, g.Start(), g.End(), search.WithVisitor(a))
	require.NoError(t, err)
	rb, err := bfs.Search(g, g.Start(), g.End(), search.WithVisitor(b))
	require.NoError(t, err)
	assert.Equal(t, a.Visits, b.Visits)
	assert.Equal(t, ra, rb)
}

// TestSearch_CancelAfterN stops after N visits and never exceeds N+1.
func TestSearch_CancelAfterN(t *testing.T) {
	g := gridtest.Open(t, 20, 20, gridgraph.Coord{}, gridgraph.Coord{Row: 19, Col: 19})
	for _, n := range []int{1, 5, 37} {
		rec := &gridtest.Recorder{StopAfter: n}
		res, err := bfs.Search(g, g.Start(), g.End(), search.WithVisitor(rec))
		require.NoError(t, err)
		assert.Equal(t, search.Cancelled, res.Outcome)
		assert.Nil(t, res.Path)
		assert.LessOrEqual(t, len(rec.Visits), n+1)
		assert.Equal(t, len(rec.Visits), res.Expanded)
	}
}

// TestSearch_ContextCancelled halts before the first visit.
func TestSearch_ContextCancelled(t *testing.T) {
	g := gridtest.Open(t, 4, 4, gridgraph.Coord{}, gridgraph.Coord{Row: 3, Col: 3})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := bfs.Search(g, g.Start(), g.End(), search.WithContext(ctx))
	require.NoError(t, err)
	assert.Equal(t, search.Cancelled, res.Outcome)
	assert.Zero(t, res.Expanded)
}
