package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows was requested or parsed.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrBadExtent indicates a negative display extent.
	ErrBadExtent = errors.New("gridgraph: extent must be non-negative")
	// ErrNonSquare indicates parsed rows whose lengths differ from the row count.
	ErrNonSquare = errors.New("gridgraph: grid must be square")
	// ErrBadGlyph indicates an unknown character in a text grid.
	ErrBadGlyph = errors.New("gridgraph: unknown cell glyph")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrNoPath indicates no route exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
