// File: gridgraph/expand_test.go
package gridgraph

import (
	"errors"
	"reflect"
	"testing"
)

// TestMinWallCrossings_Open finds a wall-free route on an empty grid.
func TestMinWallCrossings_Open(t *testing.T) {
	g, _ := Generate(3, 3)
	walls, route, err := g.MinWallCrossings(Coord{0, 0}, Coord{2, 2})
	if err != nil {
		t.Fatalf("MinWallCrossings error: %v", err)
	}
	if walls != 0 {
		t.Errorf("walls = %d; want 0", walls)
	}
	if route[0] != (Coord{0, 0}) || route[len(route)-1] != (Coord{2, 2}) {
		t.Errorf("route endpoints = %v; want (0,0)…(2,2)", route)
	}
}

// TestMinWallCrossings_SingleWallColumn requires one conversion.
//
//	S # .
//	. # .
//	. # E
func TestMinWallCrossings_SingleWallColumn(t *testing.T) {
	g, _ := Parse("S#.\n.#.\n.#E")
	walls, route, err := g.MinWallCrossings(Coord{0, 0}, Coord{2, 2})
	if err != nil {
		t.Fatalf("MinWallCrossings error: %v", err)
	}
	if walls != 1 {
		t.Errorf("walls = %d; want 1", walls)
	}
	count := 0
	for _, c := range route {
		if g.IsWall(c) {
			count++
		}
	}
	if count != walls {
		t.Errorf("route %v enters %d walls; reported %d", route, count, walls)
	}
}

// TestMinWallCrossings_DoubleWall needs two conversions.
func TestMinWallCrossings_DoubleWall(t *testing.T) {
	g, _ := Parse(`
S.##.
..##.
..##.
..##.
..##E`)
	walls, _, err := g.MinWallCrossings(Coord{0, 0}, Coord{4, 4})
	if err != nil {
		t.Fatalf("MinWallCrossings error: %v", err)
	}
	if walls != 2 {
		t.Errorf("walls = %d; want 2", walls)
	}
}

// TestMinWallCrossings_SameCell is trivially zero with a one-cell route.
func TestMinWallCrossings_SameCell(t *testing.T) {
	g, _ := Generate(2, 2)
	walls, route, err := g.MinWallCrossings(Coord{1, 1}, Coord{1, 1})
	if err != nil || walls != 0 || !reflect.DeepEqual(route, []Coord{{1, 1}}) {
		t.Errorf("got (%d, %v, %v); want (0, [(1,1)], nil)", walls, route, err)
	}
}

// TestMinWallCrossings_OutOfBounds rejects off-grid coordinates.
func TestMinWallCrossings_OutOfBounds(t *testing.T) {
	g, _ := Generate(2, 2)
	if _, _, err := g.MinWallCrossings(Coord{0, 0}, Coord{2, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("error = %v; want ErrOutOfBounds", err)
	}
}
