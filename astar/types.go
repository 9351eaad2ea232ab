// Package astar defines types and configuration options for
// heuristic-guided shortest-path search on a grid.Grid.
//
// A* shares Dijkstra's frontier discipline but orders the heap by
// f = g + h, where g is the distance from Start and h is the Manhattan
// distance to End. Manhattan distance is admissible and consistent for
// 4-directional unit-cost movement, so A* keeps Dijkstra's shortest-path
// guarantee while typically settling fewer cells.
//
// Errors (sentinel):
//
//   - ErrGridNil              if the provided grid pointer is nil.
//   - grid.ErrMissingStart    (wrapped) if no Start node is placed.
//   - grid.ErrMissingEnd      (wrapped) if no End node is placed.
package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrGridNil indicates that a nil *grid.Grid was passed to Search.
var ErrGridNil = errors.New("astar: grid is nil")

// Option represents a functional option for configuring Search.
type Option func(*Options)

// Options configures the behavior of one A* run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per pop.
	Ctx context.Context

	// OnDequeue is invoked once per settled node, before its neighbors
	// are relaxed, with the grid in its current intermediate state.
	// Stale heap entries do not trigger it.
	OnDequeue func(g *grid.Grid, n *grid.Node)
}

// DefaultOptions returns Options with background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnDequeue: func(*grid.Grid, *grid.Node) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnDequeue registers a callback to run on every settle.
func WithOnDequeue(fn func(g *grid.Grid, n *grid.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of an A* run:
//   - Explored: number of nodes settled (distance finalized).
//   - Found: whether the End node was reached. When true, the grid's
//     predecessor chain from End is a shortest path in edge count.
type Result struct {
	Explored int
	Found    bool
}
