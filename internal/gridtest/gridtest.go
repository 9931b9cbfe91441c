// Package gridtest holds fixtures and assertions shared by the search tests.
package gridtest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/board"
	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Grid parses a text layout ('.', '#', 'S', 'E') and fails the test on error.
func Grid(t testing.TB, lines ...string) *gridgraph.Grid {
	t.Helper()
	g, err := board.ParseText(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)

	return g
}

// Open builds a wall-free rows×cols grid.
func Open(t testing.TB, rows, cols int, start, end gridgraph.Coord) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.NewGrid(rows, cols, start, end)
	require.NoError(t, err)

	return g
}

// Recorder collects visits in order and, when StopAfter > 0, asks the search
// to cancel once that many visits have been seen.
type Recorder struct {
	Visits    []gridgraph.Coord
	StopAfter int
}

// OnVisit appends c.
func (r *Recorder) OnVisit(c gridgraph.Coord) {
	r.Visits = append(r.Visits, c)
}

// Cancelled reports whether StopAfter visits have been recorded.
func (r *Recorder) Cancelled() bool {
	return r.StopAfter > 0 && len(r.Visits) >= r.StopAfter
}

// RequirePath asserts that path is a valid start-exclusive, goal-inclusive
// route on g: contiguous, cycle-free, wall-free and ending at end.
func RequirePath(t testing.TB, g *gridgraph.Grid, start, end gridgraph.Coord, path []gridgraph.Coord) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, end, path[len(path)-1], "path must end at the goal")

	seen := map[gridgraph.Coord]bool{}
	prev := start
	for i, c := range path {
		require.NotEqual(t, start, c, "path must not contain the start (step %d)", i)
		require.True(t, g.IsTraversable(c), "path crosses wall %v", c)
		require.True(t, gridgraph.Adjacent(prev, c), "step %d: %v→%v not adjacent", i, prev, c)
		require.False(t, seen[c], "path revisits %v", c)
		seen[c] = true
		prev = c
	}
}
