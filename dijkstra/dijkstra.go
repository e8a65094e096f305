// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// gridgraph.Grid with Euclidean step costs.
//
// Notes on implementation choices:
//
//   - Distances and predecessors are dense slices indexed row-major.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - The step cost is the same Euclidean function the A* search uses, so the
//     two agree exactly on wall-free grids.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/wallhop/gridgraph"
)

// Result holds the distances computed from one source.
type Result struct {
	grid   *gridgraph.Grid
	source gridgraph.Coord
	dist   []float64
	prev   []int // nil unless ReturnPath
}

// Dijkstra computes shortest distances from the source cell to every cell
// of g under 8-directional Euclidean movement.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. A source must be configured or g must contain a Start cell (ErrNoSource).
//  3. The source must be inside g (ErrSourceOutOfBounds).
//
// Complexity:
//
//   - Time:  O(R² log R²)
//   - Space: O(R²)
func Dijkstra(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate grid is non-nil
	if g == nil {
		return nil, ErrNilGrid
	}

	// 3) Resolve the source, falling back to the Start cell
	if !cfg.HasSource {
		starts := g.Find(gridgraph.Start)
		if len(starts) == 0 {
			return nil, ErrNoSource
		}
		cfg.Source = starts[0]
	}
	if !g.InBounds(cfg.Source) {
		return nil, fmt.Errorf("%w: %s", ErrSourceOutOfBounds, cfg.Source)
	}

	// 4) Prepare data structures
	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	// 5) Initialize state and run main loop
	r.init()
	r.process()

	return &Result{grid: g, source: cfg.Source, dist: r.dist, prev: r.prev}, nil
}

// Source returns the cell the distances were measured from.
func (res *Result) Source() gridgraph.Coord { return res.source }

// To returns the shortest distance to c, or +Inf if c is unreachable,
// beyond MaxDistance or out of bounds.
func (res *Result) To(c gridgraph.Coord) float64 {
	if !res.grid.InBounds(c) {
		return math.Inf(1)
	}
	return res.dist[res.grid.Index(c)]
}

// Reachable reports whether c has a finite distance.
func (res *Result) Reachable(c gridgraph.Coord) bool {
	return !math.IsInf(res.To(c), 1)
}

// PathTo rebuilds one shortest route source … c. It returns nil when
// predecessors were not kept (WithReturnPath) or c is unreachable.
func (res *Result) PathTo(c gridgraph.Coord) []gridgraph.Coord {
	if res.prev == nil || !res.Reachable(c) {
		return nil
	}
	var path []gridgraph.Coord
	for at := res.grid.Index(c); at >= 0; at = res.prev[at] {
		path = append(path, res.grid.Coordinate(at))
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.Grid // The input grid; read-only within Dijkstra.
	options Options         // Configuration options.
	dist    []float64       // Cell index → current best distance from Source.
	prev    []int           // Cell index → predecessor index, -1 for none.
	visited []bool          // Tracks if a cell's distance is finalized.
	pq      nodePQ          // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist=+Inf everywhere, 0 at the source, and seeds the heap.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		if r.prev != nil {
			r.prev[i] = -1
		}
	}
	src := r.g.Index(r.options.Source)
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})
}

// process repeatedly extracts the closest unfinished cell and relaxes its
// neighbours until the heap is empty or MaxDistance is exceeded.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		// 2) Skip stale heap entries.
		if r.visited[u] {
			continue
		}

		// 3) Everything left is farther than MaxDistance.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize u and relax its neighbours.
		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines each neighbour of u and improves its distance when a
// strictly shorter route through u exists.
func (r *runner) relax(u int) {
	from := r.g.Coordinate(u)
	for _, to := range r.g.Neighbors(from) {
		if r.options.WallsImpassable && r.g.IsWall(to) {
			continue
		}
		v := r.g.Index(to)
		newDist := r.dist[u] + gridgraph.Euclidean(from, to)
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
	}
}

// nodeItem represents a cell and its current distance from the source.
type nodeItem struct {
	idx  int     // row-major cell index
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
