package board

import "errors"

var (
	// ErrNonRectangular indicates text rows of differing lengths.
	ErrNonRectangular = errors.New("board: all rows must have the same length")
	// ErrUnknownGlyph indicates a character outside the board alphabet.
	ErrUnknownGlyph = errors.New("board: unknown glyph")
	// ErrMissingEndpoint indicates a layout without exactly one 'S' and one 'E'.
	ErrMissingEndpoint = errors.New("board: layout needs exactly one start and one end")
	// ErrBadWall indicates a wall entry that cannot be painted.
	ErrBadWall = errors.New("board: invalid wall")
)
