// Package dijkstra defines types and configuration options for
// uniform-cost shortest-path search on a grid.Grid.
//
// Every grid edge has cost 1, so Dijkstra here is uniform-cost search:
// the frontier is ordered by distance from Start and a cell's distance
// is final the first time it is popped. The implementation uses the
// lazy-decrease-key strategy: relaxing a cell pushes a fresh heap entry
// and stale entries are skipped on pop once the cell is settled.
//
// Errors (sentinel):
//
//   - ErrGridNil              if the provided grid pointer is nil.
//   - grid.ErrMissingStart    (wrapped) if no Start node is placed.
//   - grid.ErrMissingEnd      (wrapped) if no End node is placed.
package dijkstra

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrGridNil indicates that a nil *grid.Grid was passed to Search.
var ErrGridNil = errors.New("dijkstra: grid is nil")

// Option represents a functional option for configuring Search.
type Option func(*Options)

// Options configures the behavior of one Dijkstra run.
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

// Result holds the outcome of a Dijkstra run:
//   - Explored: number of nodes settled (distance finalized).
//   - Found: whether the End node was reached. When true, the grid's
//     predecessor chain from End is a shortest path in edge count.
type Result struct {
	Explored int
	Found    bool
}
