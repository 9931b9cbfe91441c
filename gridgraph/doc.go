// Package gridgraph treats a rectangular board of cells as a 4-connected
// graph, the substrate every search in this module runs over.
//
// What:
//
//   - Grid holds R×C cells, each Empty or Wall, plus a fixed Start and End.
//   - Neighbors enumerates up to 4 orthogonal cells in a fixed order:
//     up (row-1), down (row+1), left (col-1), right (col+1).
//   - SetCellState paints or erases walls; Start and End can never be painted.
//   - ReachableFrom flood-fills the empty region around a cell.
//   - MinBreach computes the fewest walls whose removal joins Start and End.
//
// Why:
//
//   - Searches need deterministic neighbor order to produce identical output
//     across runs; the order above is part of the contract.
//   - Painting and searching share one Grid, so writes are gated while a
//     search holds it (BeginSearch / EndSearch). Painting during a search is
//     rejected with ErrSearchInProgress, never queued.
//
// Complexity:
//
//   - Neighbors, IsTraversable, SetCellState: O(1).
//   - ReachableFrom: O(R×C), Memory: O(R×C).
//   - MinBreach:     O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: rows or cols is not positive.
//   - ErrGridTooLarge: rows×cols overflows or exceeds MaxCells.
//   - ErrOutOfBounds: a coordinate lies outside [0,R)×[0,C).
//   - ErrSameEndpoints: Start equals End.
//   - ErrImmutableEndpoint: painting Start or End.
//   - ErrSearchInProgress: painting, resetting or starting a second search
//     while a search holds the grid.
//   - ErrNoPath: MinBreach found no way to join the endpoints.
package gridgraph
