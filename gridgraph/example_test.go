// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/wallhop/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Generate and Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGenerate builds the default 50×50 layout over a 1000px extent and
// lists the neighbours of a corner cell.
func ExampleGenerate() {
	g, _ := gridgraph.Generate(50, 1000)
	fmt.Println("size:", g.Size(), "cell size:", g.CellSize())
	fmt.Println("corner neighbours:", g.Neighbors(gridgraph.Coord{Row: 0, Col: 0}))

	// Output:
	// size: 50 cell size: 20
	// corner neighbours: [(0,1) (1,0) (1,1)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: OpenRegions
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_OpenRegions splits a map into wall-separated regions.
func ExampleGrid_OpenRegions() {
	g, _ := gridgraph.Parse(`
S.#.
..#.
###.
...E`)
	for i, region := range g.OpenRegions() {
		fmt.Printf("region %d: %d cells\n", i, len(region))
	}

	// Output:
	// region 0: 4 cells
	// region 1: 7 cells
}

////////////////////////////////////////////////////////////////////////////////
// Example: MinWallCrossings
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_MinWallCrossings reports how many walls separate Start from End.
func ExampleGrid_MinWallCrossings() {
	g, _ := gridgraph.Parse(`
S#.
.#.
.#E`)
	walls, _, _ := g.MinWallCrossings(gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 2, Col: 2})
	fmt.Println("walls to cross:", walls)

	// Output:
	// walls to cross: 1
}
