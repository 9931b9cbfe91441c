// Package astar implements A* search between two cells of a gridgraph.Grid
// using the Manhattan distance heuristic.
//
// The cost model is deliberately simple and must not be "fixed":
//
//   - h(n) = Manhattan distance from n to the goal.
//   - g(n) = Manhattan distance from the START to n, not the accumulated
//     path cost. On an open grid the two agree; around walls g is only an
//     approximation.
//   - f(n) = g(n) + h(n).
//
// Expansion repeatedly pops the open entry with the smallest f (ties go to
// the entry inserted first), closes it, reports it through
// Visitor.OnVisit, and stops successfully when it is the goal.
//
// A neighbor is skipped if it is a wall or already closed. Otherwise it is
// added to the open list unless an open entry for the same cell already has
// f ≤ the candidate's f. Worse duplicates are never removed, and closed cells
// are never reopened even if a cheaper route to them turns up later.
//
// Complexity (V = R×C cells):
//
//   - Time:  O(V log V)
//   - Space: O(V)
//
// Errors:
//
//   - search.ErrNilGrid         if the grid pointer is nil.
//   - search.ErrInvalidEndpoint if start/end are out of bounds, equal or walls.
package astar
