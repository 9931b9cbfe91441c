// Package bfs provides breadth-first search between two cells of a
// gridgraph.Grid, returning a path with the fewest possible steps.
//
// What
//
//   - Explore cells in non-decreasing step count from the start.
//   - Each loop iteration: poll for cancellation, dequeue the front node,
//     close it, report it through Visitor.OnVisit, stop if it is the goal,
//     then enqueue every traversable neighbor that is neither closed nor
//     already queued, with the current node as parent.
//   - Returns a search.Result whose Path runs start (exclusive) to goal
//     (inclusive), or Outcome Unreachable / Cancelled.
//
// Why
//
//   - On a 4-connected grid with unit step cost the fewest-edges path is the
//     globally shortest path.
//
// Determinism
//
//	Neighbors are enqueued in gridgraph's fixed order (up, down, left, right),
//	so the visit sequence and the returned path are fully reproducible.
//
// Complexity (V = R×C cells)
//
//   - Time:   O(V)   (each cell enqueued and expanded at most once)
//   - Memory: O(V)   (queue, membership set, closed set)
//
// Usage
//
//	res, err := bfs.Search(g, g.Start(), g.End(),
//	    search.WithContext(ctx),
//	    search.WithOnVisit(func(c gridgraph.Coord) { /* paint c */ }),
//	)
//
// Errors
//
//   - search.ErrNilGrid         if the grid pointer is nil.
//   - search.ErrInvalidEndpoint if start/end are out of bounds, equal or walls.
package bfs
