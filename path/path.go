// Package path reconstructs the route left behind by a successful
// search, walking predecessor links from End back toward Start.
package path

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrGridNil is returned when a nil *grid.Grid is passed to Reconstruct.
var ErrGridNil = errors.New("path: grid is nil")

// Option configures reconstruction behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for one reconstruction walk.
type Options struct {
	// Ctx allows cancellation; checked once per walked link.
	Ctx context.Context

	// OnStep is invoked once per predecessor link followed, with the
	// node the walk arrived at. Intended for animating the path;
	// reconstruction behaves identically without it.
	OnStep func(g *grid.Grid, n *grid.Node)
}

// DefaultOptions returns Options with background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: func(*grid.Grid, *grid.Node) {},
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

// WithOnStep registers a callback to run on every walked link.
func WithOnStep(fn func(g *grid.Grid, n *grid.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Reconstruct walks the predecessor chain from the grid's End node until
// it reaches a node with no predecessor, marking every intermediate node
// OnPath (Start and End keep their own classification). It returns the
// number of edges on the walk, which for a successful search equals the
// path length from Start to End.
//
// When End was never reached by the preceding search — or no search ran,
// or Start equals End — End has no predecessor and the length is 0.
//
// Returns ErrGridNil for a nil grid and a wrapped grid.ErrMissingEnd
// when no End node is placed.
func Reconstruct(g *grid.Grid, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	end, ok := g.End()
	if !ok {
		return 0, fmt.Errorf("path: %w", grid.ErrMissingEnd)
	}

	// Predecessor chains form a tree rooted at Start, so this walk
	// terminates without a cycle guard.
	length := 0
	for n := end; n.Prev != grid.NoPrev; {
		select {
		case <-o.Ctx.Done():
			return length, o.Ctx.Err()
		default:
		}

		n = g.NodeAt(n.Prev)
		length++
		if n.State != grid.Start && n.State != grid.End {
			n.State = grid.OnPath
		}
		o.OnStep(g, n)
	}

	return length, nil
}
