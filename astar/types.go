// Package astar defines core types, options, and sentinel errors for the
// one-wall A* search over a gridgraph.Grid.
package astar

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/wallhop/gridgraph"
)

// Sentinel errors returned by New, Run and Step.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to New.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNoStart indicates the grid has no Start cell.
	ErrNoStart = errors.New("astar: grid has no start cell")

	// ErrNoEnd indicates the grid has no End cell.
	ErrNoEnd = errors.New("astar: grid has no end cell")

	// ErrMultipleStarts indicates more than one Start cell.
	ErrMultipleStarts = errors.New("astar: grid has more than one start cell")

	// ErrMultipleEnds indicates more than one End cell.
	ErrMultipleEnds = errors.New("astar: grid has more than one end cell")

	// ErrStartIsEnd indicates explicit endpoints that coincide.
	ErrStartIsEnd = errors.New("astar: start and end are the same cell")

	// ErrOutOfBounds indicates an explicit endpoint outside the grid.
	ErrOutOfBounds = errors.New("astar: endpoint out of bounds")

	// ErrEndpointIsWall indicates an explicit endpoint placed on a Wall cell.
	ErrEndpointIsWall = errors.New("astar: endpoint is a wall")

	// ErrFinished indicates Run or Step on a search that already reached a
	// terminal status. Create a new Search to run again.
	ErrFinished = errors.New("astar: search already finished")

	// ErrBadMaxIterations indicates a negative iteration bound.
	ErrBadMaxIterations = errors.New("astar: MaxIterations must be non-negative")
)

// Status is the lifecycle state of a Search:
// Idle → Running → {Succeeded, Failed, Cancelled}.
type Status int

const (
	// Idle: created, not yet stepped.
	Idle Status = iota
	// Running: at least one iteration done, no terminal outcome yet.
	Running
	// Succeeded: End was reached; Result.Path is set.
	Succeeded
	// Failed: the frontier emptied; no path exists under the one-wall rule.
	Failed
	// Cancelled: the caller stopped the search at a yield point.
	Cancelled
)

// String returns a lower-case name for s.
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Terminal reports whether s is Succeeded, Failed or Cancelled.
func (s Status) Terminal() bool {
	return s >= Succeeded
}

// DisplayState is a search-derived, observation-only cell state. It is
// reported through events and never written to the grid.
type DisplayState int

const (
	// Open: the cell entered the frontier.
	Open DisplayState = iota
	// Closed: the cell was expanded.
	Closed
	// Path: the cell lies on the final path.
	Path
)

// String returns a lower-case name for d.
func (d DisplayState) String() string {
	switch d {
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("display(%d)", int(d))
	}
}

// Event reports one display transition.
// Iteration is the number of completed outer iterations before the
// transition happened (0 during the first iteration).
type Event struct {
	Cell      gridgraph.Coord
	State     DisplayState
	Iteration int
}

// Result is the outcome of a search.
//
// Status       – Succeeded, Failed or Cancelled.
// Path         – End … Start, inclusive; nil unless Succeeded.
// Cost         – Euclidean length of Path; 0 unless Succeeded.
// WallsCrossed – Wall cells on Path (0 or 1).
// Expanded     – cells popped from the frontier.
// Iterations   – yield points passed.
type Result struct {
	Status       Status
	Path         []gridgraph.Coord
	Cost         float64
	WallsCrossed int
	Expanded     int
	Iterations   int
}

// Found reports whether the search reached End.
func (r Result) Found() bool { return r.Status == Succeeded }

// Options configures a Search.
//
// Observer      – receives display transitions and one Step per iteration.
// Logger        – structured logger; discards by default.
// Start, End    – explicit endpoints, used only when HasEndpoints is true.
// MaxIterations – cancel after this many iterations; 0 means unbounded.
type Options struct {
	Observer      Observer
	Logger        *log.Logger
	Start, End    gridgraph.Coord
	HasEndpoints  bool
	MaxIterations int
}

// Option represents a functional option for configuring a Search.
type Option func(*Options)

// WithObserver installs o to receive transitions and step notifications.
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		opts.Observer = o
	}
}

// WithLogger routes search logging to l.
func WithLogger(l *log.Logger) Option {
	return func(opts *Options) {
		opts.Logger = l
	}
}

// WithEndpoints overrides the grid's Start and End cells. The grid's own
// Start/End classifications are then ignored for endpoint discovery.
func WithEndpoints(start, end gridgraph.Coord) Option {
	return func(opts *Options) {
		opts.Start, opts.End = start, end
		opts.HasEndpoints = true
	}
}

// WithMaxIterations cancels the search after n outer iterations.
// Panics with ErrBadMaxIterations if n < 0.
func WithMaxIterations(n int) Option {
	return func(opts *Options) {
		if n < 0 {
			panic(ErrBadMaxIterations.Error())
		}
		opts.MaxIterations = n
	}
}

// DefaultOptions returns Options with a no-op observer, a discarding
// logger, endpoints taken from the grid, and no iteration bound.
func DefaultOptions() Options {
	return Options{
		Observer: nopObserver{},
		Logger:   log.New(io.Discard),
	}
}
