package astar

import (
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// Search runs A* on g from start to end.
// Returns search.ErrNilGrid or a wrapped search.ErrInvalidEndpoint for invalid
// input; Unreachable and Cancelled are reported through Result.Outcome.
func Search(g *gridgraph.Grid, start, end gridgraph.Coord, opts ...search.Option) (search.Result, error) {
	if err := search.ValidateEndpoints(g, start, end); err != nil {
		return search.Result{}, err
	}
	o := search.NewOptions(opts...)

	r := &runner{
		grid:   g,
		opts:   o,
		start:  start,
		goal:   search.NewNode(end, nil),
		open:   search.NewOpenList(),
		closed: make(map[gridgraph.Coord]struct{}, g.Rows()*g.Cols()),
	}
	o.Logger.Debug("astar: search started", "start", start, "end", end)

	r.open.Push(r.node(start, nil))
	r.process()

	o.Logger.Debug("astar: search finished",
		"outcome", r.res.Outcome, "expanded", r.res.Expanded, "path", len(r.res.Path))

	return r.res, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	grid   *gridgraph.Grid
	opts   search.Options
	start  gridgraph.Coord
	goal   *search.Node
	open   *search.OpenList
	closed map[gridgraph.Coord]struct{}
	res    search.Result
}

// node creates a scored node for c.
func (r *runner) node(c gridgraph.Coord, parent *search.Node) *search.Node {
	n := search.NewNode(c, parent)
	n.G = gridgraph.Manhattan(c, r.start)
	n.H = gridgraph.Manhattan(c, r.goal.Coord)
	n.F = n.G + n.H

	return n
}

// process is the core loop: pop the lowest-f entry, close and report it,
// then score and admit its neighbors.
func (r *runner) process() {
	for r.open.Len() > 0 {
		if r.opts.Stopped() {
			r.res.Outcome = search.Cancelled
			return
		}

		cur := r.open.Pop()
		// stale duplicate of a cell expanded earlier
		if _, done := r.closed[cur.Coord]; done {
			continue
		}
		r.closed[cur.Coord] = struct{}{}
		r.res.Expanded++
		r.opts.Visitor.OnVisit(cur.Coord)

		if cur.Equal(r.goal) {
			r.res.Outcome = search.Found
			r.res.Path = cur.Path()
			return
		}

		for _, nbr := range r.grid.Neighbors(cur.Coord) {
			if !r.grid.IsTraversable(nbr) {
				continue
			}
			if _, done := r.closed[nbr]; done {
				continue
			}
			cand := r.node(nbr, cur)
			if r.open.Admits(cand) {
				r.open.Push(cand)
			}
		}
	}
	r.res.Outcome = search.Unreachable
}
