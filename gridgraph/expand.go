package gridgraph

import (
	"container/list"
	"fmt"
)

// MinWallCrossings finds the fewest Wall cells any 8-connected route from
// one cell to another must enter. Entering a wall costs 1, every other
// step costs 0; the walls at from itself are not counted.
// Returns the wall count and the route (from … to, inclusive).
//
// Behavior:
//  1. Validate both coordinates.
//  2. 0-1 BFS from `from`:
//     • Moving into a non-wall cell → cost 0 (push front)
//     • Moving into a wall cell     → cost 1 (push back)
//  3. Stop when `to` is dequeued.
//  4. Reconstruct the route via predecessors.
//
// A one-wall search cannot reach `to` when the result is 2 or more.
//
// Complexity: O(R²·8) time, O(R²) memory.
func (g *Grid) MinWallCrossings(from, to Coord) (walls int, route []Coord, err error) {
	if !g.InBounds(from) || !g.InBounds(to) {
		return 0, nil, fmt.Errorf("%w: %s → %s", ErrOutOfBounds, from, to)
	}

	n := len(g.kinds)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := g.Index(from), g.Index(to)
	dist[src] = 0
	dq := list.New()
	dq.PushFront(src)
	done := make([]bool, n)
	found := false

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			found = true
			break
		}
		for _, c := range g.Neighbors(g.Coordinate(u)) {
			v := g.Index(c)
			step := 0
			if g.kinds[v] == Wall {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !found {
		return 0, nil, ErrNoPath
	}
	for at := dst; at >= 0; at = prev[at] {
		route = append([]Coord{g.Coordinate(at)}, route...)
	}
	return dist[dst], route, nil
}
