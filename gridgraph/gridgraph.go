// Package gridgraph provides the square grid of classified cells that
// searches run over. It supports:
//
//   - Generation of an empty R×R grid with a derived cell size
//   - O(1) classification lookup and update by coordinate
//   - Moore-neighbourhood enumeration in a fixed order
package gridgraph

import (
	"fmt"
	"math"
)

// Generate builds a rows×rows grid of Default cells. The cell size is
// extent / rows, truncated; leftover extent is not distributed.
// Returns ErrEmptyGrid if rows ≤ 0 and ErrBadExtent if extent < 0.
// Complexity: O(R²) time and memory.
func Generate(rows, extent int) (*Grid, error) {
	if rows <= 0 {
		return nil, ErrEmptyGrid
	}
	if extent < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadExtent, extent)
	}

	return &Grid{
		size:     rows,
		cellSize: extent / rows,
		kinds:    make([]Kind, rows*rows),
	}, nil
}

// Size returns R, the number of rows (and columns).
func (g *Grid) Size() int { return g.size }

// CellSize returns the display edge length computed at generation time.
func (g *Grid) CellSize() int { return g.cellSize }

// Len returns the number of cells, R².
func (g *Grid) Len() int { return len(g.kinds) }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// Index maps c to its row-major index: Row*R + Col.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.size + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.size, Col: idx % g.size}
}

// Kind returns the classification of c. Out-of-bounds coordinates report
// Default.
func (g *Grid) Kind(c Coord) Kind {
	if !g.InBounds(c) {
		return Default
	}
	return g.kinds[g.Index(c)]
}

// IsWall reports whether c is classified as Wall.
func (g *Grid) IsWall(c Coord) bool {
	return g.Kind(c) == Wall
}

// SetKind classifies c as k. It does not enforce Start/End uniqueness.
// Returns ErrOutOfBounds if c is outside the grid.
func (g *Grid) SetKind(c Coord, k Kind) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, g.size, g.size)
	}
	g.kinds[g.Index(c)] = k
	return nil
}

// Reset classifies every cell as Default.
func (g *Grid) Reset() {
	for i := range g.kinds {
		g.kinds[i] = Default
	}
}

// Find returns every coordinate classified as k, in row-major order.
func (g *Grid) Find(k Kind) []Coord {
	var out []Coord
	for i, v := range g.kinds {
		if v == k {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Neighbors returns the in-bounds cells at Chebyshev distance 1 from c,
// ordered (-1,-1),(-1,0),(-1,1),(0,-1),(0,1),(1,-1),(1,0),(1,1).
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	kinds := make([]Kind, len(g.kinds))
	copy(kinds, g.kinds)
	return &Grid{size: g.size, cellSize: g.cellSize, kinds: kinds}
}

// Euclidean returns sqrt(Δrow² + Δcol²). Between neighbours this is 1 for
// orthogonal steps and √2 for diagonal steps.
func Euclidean(a, b Coord) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}
