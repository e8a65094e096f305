// Package dijkstra provides an exact shortest-path reference solver for
// wallhop grids.
//
// Overview:
//
//   - Dijkstra computes the minimum Euclidean-cost route from one cell to
//     every reachable cell under 8-directional movement.
//   - It relies on a min-heap (priority queue) to always expand the
//     next-closest cell.
//   - It ignores the one-wall rule entirely. Walls are either ordinary cells
//     or, with WithWallsImpassable, obstacles.
//
// When to use:
//
//   - As a baseline for the constrained A* search: on wall-free grids the
//     two must agree on cost; with walls impassable Dijkstra gives the
//     zero-crossing optimum, and with walls free it gives a lower bound.
//   - To answer "how far is everything from here" queries the A* search
//     does not provide.
//
// Performance and complexity:
//
//   - Time:  O(R² log R²) for an R×R grid
//   - Space: O(R²)
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:           nil grid.
//   - ErrNoSource:          no Source option and no Start cell in the grid.
//   - ErrSourceOutOfBounds: Source outside the grid.
//   - ErrBadMaxDistance:    (via panic) negative or NaN MaxDistance.
//
// API reference:
//
//	func Dijkstra(g *gridgraph.Grid, opts ...Option) (*Result, error)
//
//	  - Result.To(c):        distance to c, +Inf if unreachable.
//	  - Result.Reachable(c): whether To(c) is finite.
//	  - Result.PathTo(c):    source … c, requires WithReturnPath().
//
// Thread safety:
//
//   - Dijkstra only reads the grid; do not mutate it concurrently.
package dijkstra
