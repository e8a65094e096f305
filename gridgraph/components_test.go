// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"

	"github.com/zyedidia/generic/mapset"
)

// TestOpenRegions_SplitByColumn tests OpenRegions on a 4×4 grid cut in two
// by a full wall column.
//
// Grid:
//
//	. # . .
//	. # . .
//	. # . .
//	. # . .
//
// Expected: 2 regions of sizes 4 and 8.
func TestOpenRegions_SplitByColumn(t *testing.T) {
	g, err := Parse(`
.#..
.#..
.#..
.#..`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	regions := g.OpenRegions()
	if len(regions) != 2 {
		t.Fatalf("got %d regions; want 2", len(regions))
	}
	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	if !reflect.DeepEqual(sizes, []int{4, 8}) {
		t.Errorf("region sizes = %v; want [4 8]", sizes)
	}
}

// TestOpenRegions_DiagonalLeak checks that a diagonal gap joins regions
// under 8-connectivity.
//
//	. #
//	# .
func TestOpenRegions_DiagonalLeak(t *testing.T) {
	g, err := Parse(".#\n#.")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	regions := g.OpenRegions()
	if len(regions) != 1 || len(regions[0]) != 2 {
		t.Errorf("regions = %v; want one region of 2 cells", regions)
	}
}

// TestOpenRegions_Partition verifies that regions are disjoint and cover
// every non-wall cell exactly once.
func TestOpenRegions_Partition(t *testing.T) {
	g, err := Parse(`
S.#...
..#.#.
###.#.
....#.
.####.
.....E`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	seen := mapset.New[int]()
	for _, region := range g.OpenRegions() {
		for _, i := range region {
			if seen.Has(i) {
				t.Fatalf("cell %v appears in two regions", g.Coordinate(i))
			}
			if g.kinds[i] == Wall {
				t.Fatalf("wall %v listed in a region", g.Coordinate(i))
			}
			seen.Put(i)
		}
	}
	if want := len(g.kinds) - len(g.Find(Wall)); seen.Size() != want {
		t.Errorf("covered %d cells; want %d", seen.Size(), want)
	}
}

// TestOpenRegions_AllWalls yields nothing.
func TestOpenRegions_AllWalls(t *testing.T) {
	g, _ := Parse("##\n##")
	if regions := g.OpenRegions(); len(regions) != 0 {
		t.Errorf("got %d regions; want 0", len(regions))
	}
}

// TestRegionOf maps cells to their region index.
func TestRegionOf(t *testing.T) {
	g, _ := Parse(`
S#.
.#.
.#E`)
	start := g.RegionOf(Coord{Row: 0, Col: 0})
	end := g.RegionOf(Coord{Row: 2, Col: 2})
	if start < 0 || end < 0 || start == end {
		t.Errorf("RegionOf start=%d end=%d; want distinct non-negative", start, end)
	}
	if got := g.RegionOf(Coord{Row: 1, Col: 1}); got != -1 {
		t.Errorf("RegionOf(wall) = %d; want -1", got)
	}
	if got := g.RegionOf(Coord{Row: 5, Col: 5}); got != -1 {
		t.Errorf("RegionOf(out of bounds) = %d; want -1", got)
	}
}
