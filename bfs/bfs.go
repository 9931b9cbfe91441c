package bfs

import (
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid   *gridgraph.Grid
	opts   search.Options
	goal   *search.Node
	queue  *search.Queue
	closed map[gridgraph.Coord]struct{}
	res    search.Result
}

// Search runs breadth-first search on g from start to end, applying any
// number of functional Options.
// Returns search.ErrNilGrid or a wrapped search.ErrInvalidEndpoint for invalid
// input; Unreachable and Cancelled are reported through Result.Outcome.
func Search(g *gridgraph.Grid, start, end gridgraph.Coord, opts ...search.Option) (search.Result, error) {
	if err := search.ValidateEndpoints(g, start, end); err != nil {
		return search.Result{}, err
	}
	o := search.NewOptions(opts...)

	n := g.Rows() * g.Cols()
	w := &walker{
		grid:   g,
		opts:   o,
		goal:   search.NewNode(end, nil),
		queue:  search.NewQueue(n),
		closed: make(map[gridgraph.Coord]struct{}, n),
	}
	o.Logger.Debug("bfs: search started", "start", start, "end", end)

	// Seed queue with start node (no parent)
	w.queue.Push(search.NewNode(start, nil))
	w.loop()

	o.Logger.Debug("bfs: search finished",
		"outcome", w.res.Outcome, "expanded", w.res.Expanded, "path", len(w.res.Path))

	return w.res, nil
}

// loop processes the queue until the goal is found, the queue empties,
// or cancellation is requested.
func (w *walker) loop() {
	for w.queue.Len() > 0 {
		// cancellation check (once per expansion)
		if w.opts.Stopped() {
			w.res.Outcome = search.Cancelled
			return
		}

		cur := w.queue.Pop()
		w.visit(cur)
		if cur.Equal(w.goal) {
			w.res.Outcome = search.Found
			w.res.Path = cur.Path()
			return
		}
		w.enqueueNeighbors(cur)
	}
	w.res.Outcome = search.Unreachable
}

// visit closes the node and reports it through the Visitor.
func (w *walker) visit(n *search.Node) {
	w.closed[n.Coord] = struct{}{}
	w.res.Expanded++
	w.opts.Visitor.OnVisit(n.Coord)
}

// enqueueNeighbors enqueues each traversable neighbor that is not yet closed
// or queued.
func (w *walker) enqueueNeighbors(cur *search.Node) {
	for _, nbr := range w.grid.Neighbors(cur.Coord) {
		if !w.grid.IsTraversable(nbr) {
			continue
		}
		if _, done := w.closed[nbr]; done {
			continue
		}
		if w.queue.Contains(nbr) {
			continue
		}
		w.queue.Push(search.NewNode(nbr, cur))
	}
}
