// Package search holds the pieces shared by the grid search algorithms:
// the SearchNode model, the two frontier structures, path reconstruction,
// the presentation callback interface and the Result/Outcome types.
//
// What
//
//   - Node links a grid coordinate to its parent for path reconstruction and
//     carries the A* cost fields G, H and F = G + H. Two nodes are equal iff
//     their coordinates are equal; parent and costs are ignored.
//   - Queue is the FIFO frontier used by breadth-first search.
//   - OpenList is the min-F frontier used by A*. Among equal F, entries are
//     returned in insertion order.
//   - Visitor is the narrow boundary to the presentation layer: OnVisit is
//     called once per expanded cell, Cancelled is polled before each pop.
//
// Outcomes
//
//	A search ends in exactly one of three outcomes:
//	  - Found:       Result.Path runs start (exclusive) → goal (inclusive).
//	  - Unreachable: the frontier emptied; this is not an error.
//	  - Cancelled:   the Visitor or the Context asked to stop.
//
// Errors
//
//   - ErrInvalidEndpoint if start or end is out of bounds, equal, or a wall.
//   - ErrNilGrid if the grid pointer is nil.
package search
