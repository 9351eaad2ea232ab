// Package dfs defines types and options for depth-first search over a
// grid.Grid, including cancellation and a per-dequeue observation hook.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrGridNil is returned when a nil *grid.Grid is passed to Search.
var ErrGridNil = errors.New("dfs: grid is nil")

// Option configures optional behavior of the DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for one DFS run.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search early.
	Ctx context.Context

	// OnDequeue, if set, is invoked once per popped, not-yet-visited node
	// with the grid in its current intermediate state. Stale stack
	// duplicates do not trigger it.
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

// WithOnDequeue registers a callback to run on every effective pop.
func WithOnDequeue(fn func(g *grid.Grid, n *grid.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of a DFS run:
//   - Explored: number of nodes popped and examined.
//   - Found: whether the End node was reached. The predecessor chain DFS
//     leaves behind is a valid path but not necessarily a shortest one.
type Result struct {
	Explored int
	Found    bool
}
