// Package search defines the algorithm selector, run summary, and
// options shared by the gridpath facade.
package search

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrUnknownAlgorithm is returned when Run receives an Algorithm value
// outside the declared set.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Algorithm selects which traversal policy Run dispatches to.
type Algorithm int

const (
	// BFS is uninformed breadth-first search; shortest path guaranteed.
	BFS Algorithm = iota
	// DFS is stack-based depth-first search; finds a path, not the shortest.
	DFS
	// Dijkstra is uniform-cost search; shortest path guaranteed.
	Dijkstra
	// AStar is Manhattan-heuristic search; shortest path guaranteed,
	// usually exploring fewer cells than Dijkstra.
	AStar
)

// String returns the conventional name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case Dijkstra:
		return "Dijkstra"
	case AStar:
		return "A*"
	default:
		return "Unknown"
	}
}

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds the callbacks and context Run forwards to the selected
// algorithm and to path reconstruction.
type Options struct {
	// Ctx allows cancellation of both the search and the reconstruction.
	Ctx context.Context

	// OnDequeue fires once per node the search dequeues and examines.
	OnDequeue func(g *grid.Grid, n *grid.Node)

	// OnPathStep fires once per predecessor link followed during
	// reconstruction.
	OnPathStep func(g *grid.Grid, n *grid.Node)
}

// DefaultOptions returns Options with background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnDequeue:  func(*grid.Grid, *grid.Node) {},
		OnPathStep: func(*grid.Grid, *grid.Node) {},
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

// WithOnDequeue registers a per-dequeue observation callback.
func WithOnDequeue(fn func(g *grid.Grid, n *grid.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnPathStep registers a per-path-step observation callback.
func WithOnPathStep(fn func(g *grid.Grid, n *grid.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPathStep = fn
		}
	}
}

// Summary reports the outcome of one Run: how many cells the search
// examined and the length, in edges, of the reconstructed path.
// PathLength is 0 when End was unreachable or Start equals End.
type Summary struct {
	Explored   int
	PathLength int
}
