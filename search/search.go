// Package search is the facade tying the gridpath pieces together:
// pick an algorithm, run it against a configured grid, and reconstruct
// the resulting path in one call.
package search

import (
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/path"
)

// Run executes the selected algorithm against g and reconstructs the
// path it found, returning the explored-cell count and path length.
//
// The grid must carry exactly one Start and one End; otherwise the
// wrapped grid.ErrMissingStart / grid.ErrMissingEnd from the algorithm
// package is returned and the grid is left untouched. An exhausted
// frontier is not an error: the Summary simply reports PathLength 0
// alongside the true Explored count.
func Run(g *grid.Grid, algo Algorithm, opts ...Option) (Summary, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	explored, err := dispatch(g, algo, o)
	if err != nil {
		return Summary{}, err
	}

	// End without a predecessor reconstructs to length 0, so the walk is
	// unconditional: it is what distinguishes "no path" from a path.
	length, err := path.Reconstruct(g,
		path.WithContext(o.Ctx),
		path.WithOnStep(o.OnPathStep),
	)
	if err != nil {
		return Summary{Explored: explored}, err
	}

	return Summary{Explored: explored, PathLength: length}, nil
}

// dispatch invokes the algorithm package selected by algo and returns
// its explored count.
func dispatch(g *grid.Grid, algo Algorithm, o Options) (int, error) {
	switch algo {
	case BFS:
		res, err := bfs.Search(g, bfs.WithContext(o.Ctx), bfs.WithOnDequeue(o.OnDequeue))
		if err != nil {
			return 0, err
		}

		return res.Explored, nil
	case DFS:
		res, err := dfs.Search(g, dfs.WithContext(o.Ctx), dfs.WithOnDequeue(o.OnDequeue))
		if err != nil {
			return 0, err
		}

		return res.Explored, nil
	case Dijkstra:
		res, err := dijkstra.Search(g, dijkstra.WithContext(o.Ctx), dijkstra.WithOnDequeue(o.OnDequeue))
		if err != nil {
			return 0, err
		}

		return res.Explored, nil
	case AStar:
		res, err := astar.Search(g, astar.WithContext(o.Ctx), astar.WithOnDequeue(o.OnDequeue))
		if err != nil {
			return 0, err
		}

		return res.Explored, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}
