package astar

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// entry is one heap record. A cell may have several records after its
// fScore improves; only the one matching the current fScore is live.
type entry struct {
	idx   int     // row-major cell index
	f     float64 // fScore when pushed
	order int     // discovery order, fixed when the cell joins the frontier
}

// frontier is the open set: a min-heap on (fScore, discoveryOrder) plus a
// membership set. Improvements push a fresh record with the same order
// (lazy decrease-key); stale records are dropped on pop.
type frontier struct {
	heap    *heap.Heap[entry]
	members mapset.Set[int]
	order   map[int]int
	next    int
}

func less(a, b entry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.order < b.order
}

func newFrontier() *frontier {
	return &frontier{
		heap:    heap.New[entry](less),
		members: mapset.New[int](),
		order:   make(map[int]int),
	}
}

// insert adds a new member with the next discovery order.
func (f *frontier) insert(idx int, score float64) {
	order := f.next
	f.next++
	f.members.Put(idx)
	f.order[idx] = order
	f.heap.Push(entry{idx: idx, f: score, order: order})
}

// update re-keys an existing member, keeping its discovery order.
func (f *frontier) update(idx int, score float64) {
	f.heap.Push(entry{idx: idx, f: score, order: f.order[idx]})
}

func (f *frontier) has(idx int) bool {
	return f.members.Has(idx)
}

func (f *frontier) len() int {
	return f.members.Size()
}

// pop removes and returns the live member with the smallest key. fScore
// is the search's current table, used to recognise stale records.
func (f *frontier) pop(fScore []float64) (entry, bool) {
	for {
		e, ok := f.heap.Pop()
		if !ok {
			return entry{}, false
		}
		if !f.members.Has(e.idx) || e.f != fScore[e.idx] {
			continue
		}
		f.members.Remove(e.idx)
		delete(f.order, e.idx)
		return e, true
	}
}
