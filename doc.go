// Package wallhop is a grid pathfinder whose A* search may pass through at
// most one wall.
//
// What is in the box?
//
//	• gridgraph: square grids of classified cells (default, wall, start,
//	  end), 8-neighbour enumeration, a text map format, open-region and
//	  minimum wall-crossing analysis
//	• astar:     the one-wall A* search: incremental, observable through
//	  Open / Closed / Path events, cancellable at every iteration
//	• dijkstra:  exact Euclidean shortest paths over the same grids, used as
//	  a reference for the search
//
// The wallhop command (cmd/wallhop) loads a map, runs the search and prints
// the outcome; it never edits or saves maps.
//
// Quick map example:
//
//	S.#..
//	..#..     S start   E end
//	..#..     # wall    . open
//	..#..
//	....E
//
// Walking around the wall column costs 4+2√2; the search instead crosses
// (2,2) once and returns the diagonal at cost 4√2.
//
//	go install github.com/katalvlaran/wallhop/cmd/wallhop@latest
package wallhop
