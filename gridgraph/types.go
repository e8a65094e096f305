// Package gridgraph defines core types for the square, classified grid
// that wallhop searches over.
package gridgraph

import "fmt"

// Kind is the traversal classification of a cell, set by whoever edits
// the grid before a search. Search-only display states (open, closed,
// path) are deliberately not kinds: they never feed back into the grid.
type Kind uint8

const (
	// Default is an ordinary, freely traversable cell.
	Default Kind = iota
	// Wall is an obstacle; a search path may cross at most one of them.
	Wall
	// Start marks the search origin. At most one cell should carry it.
	Start
	// End marks the search goal. At most one cell should carry it.
	End
)

// String returns a lower-case name for k.
func (k Kind) String() string {
	switch k {
	case Default:
		return "default"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Coord identifies a cell by row and column. It is immutable and unique
// within one grid.
type Coord struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// neighborOffsets enumerates the Moore neighbourhood in row-major offset
// order. Searches rely on this order for discovery tie-breaking.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is an R×R arrangement of classified cells. R is fixed at
// construction; classifications are mutable.
//
// kinds is stored row-major: kinds[row*size+col].
// cellSize is the on-screen edge length derived from the extent passed to
// Generate. It carries no meaning for searches.
//
// A Grid is not safe for concurrent mutation; at most one search should
// run against a grid at a time.
type Grid struct {
	size     int
	cellSize int
	kinds    []Kind
}
