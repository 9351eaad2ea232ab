// Package dfs implements iterative, stack-based depth-first search on a
// grid.Grid.
//
// The traversal is deliberately the classic explicit-stack variant: a
// node's visited status is checked when it is popped, not when it is
// pushed, so a node may sit on the stack several times and its Prev link
// is overwritten by whichever parent pushed it last. The reconstructed
// path is therefore valid but exploration-order-dependent, not minimal.
// That non-optimality is an accepted property of this traversal, not a
// defect; use bfs, dijkstra or astar when a shortest path is required.
//
// Complexity:
//
//   - Time:   O(N) pops with up to O(N) duplicate stack entries, N = rows×cols.
//   - Memory: O(N) for the stack and visited set.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// walker encapsulates mutable DFS state for one run.
type walker struct {
	g       *grid.Grid
	opts    Options
	stack   []int        // LIFO frontier of arena indices
	visited map[int]bool // consulted at pop time only
	end     int
	res     *Result
}

// Search runs depth-first search on g from its Start node toward its
// End node. Returns ErrGridNil for a nil grid, or a wrapped
// grid.ErrMissingStart / grid.ErrMissingEnd when the grid is not fully
// configured; in those cases the grid is not mutated.
func Search(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start, ok := g.Start()
	if !ok {
		return nil, fmt.Errorf("dfs: %w", grid.ErrMissingStart)
	}
	end, ok := g.End()
	if !ok {
		return nil, fmt.Errorf("dfs: %w", grid.ErrMissingEnd)
	}

	g.ClearBookkeeping()

	n := g.Rows * g.Cols
	w := &walker{
		g:       g,
		opts:    o,
		stack:   make([]int, 0, n),
		visited: make(map[int]bool, n),
		end:     g.Index(end.Row, end.Col),
		res:     &Result{},
	}
	w.stack = append(w.stack, g.Index(start.Row, start.Col))

	return w.res, w.loop()
}

// loop pops the stack until empty, success, or cancellation.
func (w *walker) loop() error {
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		idx := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// Duplicates are filtered here, at pop time.
		if w.visited[idx] {
			continue
		}
		n := w.g.NodeAt(idx)
		w.opts.OnDequeue(w.g, n)

		if idx == w.end {
			w.res.Found = true

			return nil
		}

		w.visited[idx] = true
		if n.State != grid.Start {
			n.State = grid.Visited
		}
		w.res.Explored++

		for _, nb := range w.g.Neighbors(n) {
			ni := w.g.Index(nb.Row, nb.Col)
			if w.visited[ni] {
				continue
			}
			// The most recent pusher wins the Prev link, even for nodes
			// already on the stack.
			nb.Prev = idx
			w.stack = append(w.stack, ni)
		}
	}

	return nil
}
