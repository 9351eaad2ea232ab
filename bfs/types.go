// Package bfs provides tunable options and error definitions for
// breadth-first search over a grid.Grid.
package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrGridNil is returned if a nil grid pointer is passed.
var ErrGridNil = errors.New("bfs: grid is nil")

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// OnDequeue is called once per dequeued node, before it is examined,
	// with the grid in its current intermediate state. Intended for
	// external rendering; the search behaves identically without it.
	OnDequeue func(g *grid.Grid, n *grid.Node)
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnDequeue hook.
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

// WithOnDequeue registers a callback to run on every dequeue.
func WithOnDequeue(fn func(g *grid.Grid, n *grid.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of a BFS run:
//   - Explored: number of nodes dequeued and examined.
//   - Found: whether the End node was reached. When true, the grid's
//     predecessor chain from End leads back to Start.
type Result struct {
	Explored int
	Found    bool
}
