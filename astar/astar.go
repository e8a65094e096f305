package astar

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/wallhop/gridgraph"
)

// predecessor is the best known preceding cell of a cell and whether the
// path through it has already crossed a wall.
type predecessor struct {
	from    int
	crossed bool
	ok      bool
}

// Search holds the state of one constrained A* run. It is owned by a
// single goroutine and must not be shared; the grid must not change while
// the search is in progress.
type Search struct {
	g       *gridgraph.Grid
	options Options

	start, end gridgraph.Coord
	startIdx   int
	endIdx     int

	status   Status
	gScore   []float64
	fScore   []float64
	pred     []predecessor
	closed   []bool
	open     *frontier
	iter     int
	expanded int
	result   Result
}

// New validates g and prepares a search from its Start cell to its End
// cell (or the cells given by WithEndpoints). The search starts Idle.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Without WithEndpoints: exactly one Start (ErrNoStart,
//     ErrMultipleStarts) and exactly one End (ErrNoEnd, ErrMultipleEnds).
//  3. With WithEndpoints: both in bounds (ErrOutOfBounds), distinct
//     (ErrStartIsEnd), and not walls (ErrEndpointIsWall).
func New(g *gridgraph.Grid, opts ...Option) (*Search, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Observer == nil {
		cfg.Observer = nopObserver{}
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultOptions().Logger
	}

	if g == nil {
		return nil, ErrNilGrid
	}

	start, end, err := endpoints(g, cfg)
	if err != nil {
		return nil, err
	}

	n := g.Len()
	s := &Search{
		g:        g,
		options:  cfg,
		start:    start,
		end:      end,
		startIdx: g.Index(start),
		endIdx:   g.Index(end),
		gScore:   make([]float64, n),
		fScore:   make([]float64, n),
		pred:     make([]predecessor, n),
		closed:   make([]bool, n),
		open:     newFrontier(),
	}
	for i := range s.gScore {
		s.gScore[i] = math.Inf(1)
		s.fScore[i] = math.Inf(1)
	}
	s.gScore[s.startIdx] = 0
	s.fScore[s.startIdx] = gridgraph.Euclidean(start, end)
	s.open.insert(s.startIdx, s.fScore[s.startIdx])

	return s, nil
}

// endpoints resolves and validates the start and end cells.
func endpoints(g *gridgraph.Grid, cfg Options) (start, end gridgraph.Coord, err error) {
	if cfg.HasEndpoints {
		start, end = cfg.Start, cfg.End
		for _, c := range []gridgraph.Coord{start, end} {
			if !g.InBounds(c) {
				return start, end, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, g.Size(), g.Size())
			}
			if g.IsWall(c) {
				return start, end, fmt.Errorf("%w: %s", ErrEndpointIsWall, c)
			}
		}
		if start == end {
			return start, end, fmt.Errorf("%w: %s", ErrStartIsEnd, start)
		}
		return start, end, nil
	}

	starts := g.Find(gridgraph.Start)
	switch {
	case len(starts) == 0:
		return start, end, ErrNoStart
	case len(starts) > 1:
		return start, end, fmt.Errorf("%w: %v", ErrMultipleStarts, starts)
	}
	ends := g.Find(gridgraph.End)
	switch {
	case len(ends) == 0:
		return start, end, ErrNoEnd
	case len(ends) > 1:
		return start, end, fmt.Errorf("%w: %v", ErrMultipleEnds, ends)
	}
	return starts[0], ends[0], nil
}

// Find is a convenience wrapper: New followed by Run.
func Find(ctx context.Context, g *gridgraph.Grid, opts ...Option) (Result, error) {
	s, err := New(g, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Run(ctx)
}

// Status returns the current lifecycle state.
func (s *Search) Status() Status { return s.status }

// Start returns the search origin.
func (s *Search) Start() gridgraph.Coord { return s.start }

// End returns the search goal.
func (s *Search) End() gridgraph.Coord { return s.end }

// Result returns the outcome so far. Before a terminal status it carries
// the current counters and the non-terminal Status.
func (s *Search) Result() Result {
	if s.status.Terminal() {
		return s.result
	}
	return Result{Status: s.status, Expanded: s.expanded, Iterations: s.iter}
}

// Run drives the search to a terminal status. After every non-terminal
// iteration it notifies the observer's Step and then checks ctx and the
// iteration bound; either one stops the search as Cancelled.
//
// Failed and Cancelled are outcomes, not errors: err is non-nil only for
// ErrFinished.
func (s *Search) Run(ctx context.Context) (Result, error) {
	if s.status.Terminal() {
		return s.result, ErrFinished
	}
	s.options.Logger.Debug("search started",
		"start", s.start, "end", s.end, "size", s.g.Size())

	for {
		done, err := s.Step()
		if err != nil {
			return s.result, err
		}
		if done {
			break
		}
		if ctx.Err() != nil {
			s.finish(Cancelled)
			break
		}
		if limit := s.options.MaxIterations; limit > 0 && s.iter >= limit {
			s.finish(Cancelled)
			break
		}
	}

	s.options.Logger.Debug("search finished",
		"status", s.result.Status,
		"cost", s.result.Cost,
		"walls", s.result.WallsCrossed,
		"expanded", s.result.Expanded,
		"iterations", s.result.Iterations)
	return s.result, nil
}

// Step performs one outer iteration: pop the best frontier cell, finish
// if it is End, otherwise relax its neighbours, report it Closed and
// notify the observer's Step. done is true once the search is terminal.
//
// Step never checks for cancellation; callers driving their own loop
// simply stop calling it.
func (s *Search) Step() (done bool, err error) {
	if s.status.Terminal() {
		return true, ErrFinished
	}
	s.status = Running

	// 1) Frontier exhausted: no path under the one-wall rule.
	cur, ok := s.open.pop(s.fScore)
	if !ok {
		s.finish(Failed)
		return true, nil
	}
	s.expanded++
	u := cur.idx
	s.closed[u] = true

	// 2) Goal reached.
	if u == s.endIdx {
		s.succeed()
		return true, nil
	}

	// 3) Relax neighbours.
	s.relax(u)

	// 4) Report u closed unless it is the start or a wall.
	from := s.g.Coordinate(u)
	if u != s.startIdx && !s.g.IsWall(from) {
		s.emit(from, Closed)
	}

	// 5) Yield.
	s.iter++
	s.options.Observer.Step(s.iter)
	return false, nil
}

// relax examines each neighbour of u in grid order and records strictly
// better routes, honouring the one-wall rule.
func (s *Search) relax(u int) {
	from := s.g.Coordinate(u)
	crossed := s.pred[u].ok && s.pred[u].crossed

	for _, to := range s.g.Neighbors(from) {
		wall := s.g.IsWall(to)
		// A path that already went through a wall cannot enter another.
		if crossed && wall {
			continue
		}

		v := s.g.Index(to)
		if s.closed[v] {
			continue
		}
		tentative := s.gScore[u] + gridgraph.Euclidean(from, to)
		if tentative >= s.gScore[v] {
			continue
		}

		s.pred[v] = predecessor{from: u, crossed: crossed || wall, ok: true}
		s.gScore[v] = tentative
		s.fScore[v] = tentative + gridgraph.Euclidean(to, s.end)

		if s.open.has(v) {
			s.open.update(v, s.fScore[v])
			continue
		}
		s.open.insert(v, s.fScore[v])
		if !wall {
			s.emit(to, Open)
		}
	}
}

// succeed reconstructs End … Start, reports every cell but Start as Path
// and finishes the search.
func (s *Search) succeed() {
	path := []gridgraph.Coord{s.end}
	walls := 0
	s.emit(s.end, Path)
	for at := s.endIdx; s.pred[at].ok; {
		at = s.pred[at].from
		c := s.g.Coordinate(at)
		path = append(path, c)
		if s.g.IsWall(c) {
			walls++
		}
		if at != s.startIdx {
			s.emit(c, Path)
		}
	}

	s.finish(Succeeded)
	s.result.Path = path
	s.result.Cost = s.gScore[s.endIdx]
	s.result.WallsCrossed = walls
}

// finish records a terminal status and the counters.
func (s *Search) finish(st Status) {
	s.status = st
	s.result = Result{
		Status:     st,
		Expanded:   s.expanded,
		Iterations: s.iter,
	}
}

func (s *Search) emit(c gridgraph.Coord, st DisplayState) {
	s.options.Observer.Transition(Event{Cell: c, State: st, Iteration: s.iter})
}
