package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrGridTooLarge indicates rows×cols exceeds MaxCells or overflows int.
	ErrGridTooLarge = errors.New("gridgraph: grid too large")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrSameEndpoints indicates Start and End are the same cell.
	ErrSameEndpoints = errors.New("gridgraph: start and end must differ")
	// ErrImmutableEndpoint indicates an attempt to paint Start or End.
	ErrImmutableEndpoint = errors.New("gridgraph: start and end cells cannot be painted")
	// ErrSearchInProgress indicates the grid is held by a running search.
	ErrSearchInProgress = errors.New("gridgraph: search in progress")
	// ErrNoPath indicates no breach path exists between Start and End.
	ErrNoPath = errors.New("gridgraph: no path between start and end")
)
