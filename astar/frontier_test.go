package astar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wallhop/gridgraph"
)

// TestFrontier_TieBreakByDiscovery pops equal scores in insertion order.
func TestFrontier_TieBreakByDiscovery(t *testing.T) {
	f := newFrontier()
	scores := []float64{3, 2, 2, 1, 2}
	for idx, s := range scores {
		f.insert(idx, s)
	}

	var got []int
	for f.len() > 0 {
		e, ok := f.pop(scores)
		require.True(t, ok)
		got = append(got, e.idx)
	}
	assert.Equal(t, []int{3, 1, 2, 4, 0}, got)

	_, ok := f.pop(scores)
	assert.False(t, ok)
}

// TestFrontier_UpdateKeepsOrder re-keys a member; its discovery order is
// unchanged, so it still loses a tie against an earlier cell.
func TestFrontier_UpdateKeepsOrder(t *testing.T) {
	f := newFrontier()
	scores := []float64{5, 9}
	f.insert(0, scores[0])
	f.insert(1, scores[1])

	scores[1] = 5
	f.update(1, scores[1])

	e, _ := f.pop(scores)
	assert.Equal(t, 0, e.idx)
	assert.Equal(t, 0, e.order)
	e, _ = f.pop(scores)
	assert.Equal(t, 1, e.idx)
	assert.Equal(t, 1, e.order)
	assert.Equal(t, 0, f.len())
}

// TestFrontier_DropsStale ignores records superseded by an update.
func TestFrontier_DropsStale(t *testing.T) {
	f := newFrontier()
	scores := []float64{4, 6}
	f.insert(0, scores[0])
	f.insert(1, scores[1])

	scores[1] = 1
	f.update(1, scores[1])

	e, _ := f.pop(scores)
	assert.Equal(t, 1, e.idx)
	e, _ = f.pop(scores)
	assert.Equal(t, 0, e.idx)
	_, ok := f.pop(scores) // only the stale record for 1 remains
	assert.False(t, ok)
	assert.False(t, f.has(1))
}

// TestSearch_TieKeepsFirstPredecessor documents the strict "<" relaxation.
//
//	. . S . .
//	. # # # .
//	. # # # .
//	. . . . .
//	. . E . .
//
// (1,0) is first reached through the wall (1,1) at cost 1+√2. The later,
// wall-free route through (0,1) costs exactly the same, so the recorded
// predecessor keeps its crossed-wall flag.
func TestSearch_TieKeepsFirstPredecessor(t *testing.T) {
	g, err := gridgraph.Parse(`
..S..
.###.
.###.
.....
..E..`)
	require.NoError(t, err)

	s, err := New(g)
	require.NoError(t, err)
	for {
		done, err := s.Step()
		require.NoError(t, err)
		if done {
			break
		}
	}

	at := g.Index(gridgraph.Coord{Row: 1, Col: 0})
	p := s.pred[at]
	require.True(t, p.ok)
	assert.Equal(t, gridgraph.Coord{Row: 1, Col: 1}, g.Coordinate(p.from))
	assert.True(t, p.crossed, "tied wall-free route must not clear the flag")
	assert.InDelta(t, 1+math.Sqrt2, s.gScore[at], 1e-12)
}
