package gridgraph

// OpenRegions finds all 8-connected regions of non-wall cells.
// Returns a slice of regions; each region is a slice of cell indices
// (row-major) in BFS discovery order. Regions are ordered by their first
// cell in row-major order.
//
// To convert an index back to a Coord, use Coordinate(idx).
//
// Time:   O(R²·8).
// Memory: O(R²) for visited flags and output.
func (g *Grid) OpenRegions() [][]int {
	seen := make([]bool, len(g.kinds))
	var regions [][]int

	for i0, k := range g.kinds {
		if k == Wall || seen[i0] {
			continue
		}
		// BFS to collect region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range g.Neighbors(g.Coordinate(queue[qi])) {
				vi := g.Index(n)
				if seen[vi] || g.kinds[vi] == Wall {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// RegionOf returns the index into OpenRegions() of the region containing c,
// or -1 if c is a wall or out of bounds.
func (g *Grid) RegionOf(c Coord) int {
	if !g.InBounds(c) || g.IsWall(c) {
		return -1
	}
	target := g.Index(c)
	for ri, region := range g.OpenRegions() {
		for _, i := range region {
			if i == target {
				return ri
			}
		}
	}
	return -1
}
