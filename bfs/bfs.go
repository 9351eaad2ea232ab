// Package bfs provides breadth-first search over a grid.Grid,
// reporting the number of explored nodes and marking a predecessor
// chain from End back to Start on success.
//
// BFS explores cells in increasing edge-distance from Start, so on an
// unweighted grid the predecessor chain it leaves behind is a shortest
// path. Neighbors are expanded in the grid's fixed adjacency order,
// which makes tie-breaking reproducible.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// walker encapsulates mutable BFS state for one run.
type walker struct {
	g     *grid.Grid
	opts  Options
	queue []int        // FIFO frontier of arena indices
	seen  map[int]bool // enqueued-once guard, separate from node State
	end   int
	res   *Result
}

// Search runs breadth-first search on g from its Start node toward its
// End node, applying any number of functional Options.
//
// Returns ErrGridNil for a nil grid, or a wrapped grid.ErrMissingStart /
// grid.ErrMissingEnd when the grid is not fully configured; in those
// cases the grid is not mutated. Otherwise all prior search bookkeeping
// is cleared and the run proceeds until the frontier is exhausted
// (Result.Found == false) or End is dequeued (Result.Found == true).
//
// Complexity: O(rows×cols) time and memory.
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
		return nil, fmt.Errorf("bfs: %w", grid.ErrMissingStart)
	}
	end, ok := g.End()
	if !ok {
		return nil, fmt.Errorf("bfs: %w", grid.ErrMissingEnd)
	}

	// Wipe bookkeeping from any prior run before touching the frontier.
	g.ClearBookkeeping()

	n := g.Rows * g.Cols
	w := &walker{
		g:     g,
		opts:  o,
		queue: make([]int, 0, n),
		seen:  make(map[int]bool, n),
		end:   g.Index(end.Row, end.Col),
		res:   &Result{},
	}
	startIdx := g.Index(start.Row, start.Col)
	w.seen[startIdx] = true
	w.queue = append(w.queue, startIdx)

	return w.res, w.loop()
}

// loop processes the queue until empty, success, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		idx := w.queue[0]
		w.queue = w.queue[1:]
		n := w.g.NodeAt(idx)
		w.opts.OnDequeue(w.g, n)

		// End is recognized at dequeue time and never counted as explored,
		// so Start==End yields Explored == 0.
		if idx == w.end {
			w.res.Found = true

			return nil
		}
		if n.State != grid.Start {
			n.State = grid.Visited
		}
		w.res.Explored++

		for _, nb := range w.g.Neighbors(n) {
			ni := w.g.Index(nb.Row, nb.Col)
			if w.seen[ni] {
				continue
			}
			w.seen[ni] = true
			nb.Prev = idx
			w.queue = append(w.queue, ni)
		}
	}

	return nil
}
