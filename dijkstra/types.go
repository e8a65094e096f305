// Package dijkstra defines core types and configuration options
// for the exact shortest-path reference solver over a gridgraph.Grid.
//
// Movement is 8-directional with Euclidean step cost: 1 for orthogonal
// moves and √2 for diagonal moves. Walls are either ordinary cells
// (default) or impassable obstacles (WithWallsImpassable).
//
// Complexity:
//
//	– Time:  O(R² log R²)   for an R×R grid
//	   • Each cell is finalized at most once.
//	   • Each relaxation may push into the priority queue (up to 8·R² pushes).
//	– Space: O(R²)
//
// Options:
//
//	– Source:              starting cell (defaults to the grid's Start cell).
//	– WithReturnPath:      keep predecessors so PathTo can rebuild routes.
//	– WithMaxDistance:     cells farther than this are not explored.
//	– WithWallsImpassable: never enter Wall cells.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the provided grid pointer is nil.
//	– ErrNoSource         if no Source was given and the grid has no Start cell.
//	– ErrSourceOutOfBounds if Source lies outside the grid.
//	– ErrBadMaxDistance   if MaxDistance < 0 or NaN.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/wallhop/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNoSource indicates that no source was configured and the grid has
	// no Start cell to fall back on.
	ErrNoSource = errors.New("dijkstra: no source cell")

	// ErrSourceOutOfBounds indicates that the configured source lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source out of bounds")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source          – starting cell; used only when HasSource is true.
// ReturnPath      – if true, keep predecessors for PathTo.
// MaxDistance     – cap on explored distance. Default +Inf.
// WallsImpassable – treat Wall cells as obstacles.
type Options struct {
	Source          gridgraph.Coord // The source cell
	HasSource       bool            // Whether Source was set explicitly
	ReturnPath      bool            // Whether to keep the predecessor table
	MaxDistance     float64         // Maximum distance to explore
	WallsImpassable bool            // Whether Wall cells block movement
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell. Without it Dijkstra starts from the
// grid's Start cell.
func Source(c gridgraph.Coord) Option {
	return func(o *Options) {
		o.Source = c
		o.HasSource = true
	}
}

// WithReturnPath enables predecessor tracking so Result.PathTo works.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early, as the option
			// constructor has no error return.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithWallsImpassable makes Wall cells obstacles instead of ordinary cells.
func WithWallsImpassable() Option {
	return func(o *Options) {
		o.WallsImpassable = true
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Source:          unset (falls back to the grid's Start cell).
//   - ReturnPath:      false.
//   - MaxDistance:     +Inf.
//   - WallsImpassable: false (walls cost the same as any other cell).
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
	}
}
