// Package astar implements A* search on a grid.Grid with uniform edge
// cost 1 and a Manhattan-distance heuristic.
//
// The implementation mirrors the dijkstra package: a min-heap of
// priority snapshots with lazy decrease-key, stale entries skipped once
// a cell settles, and insertion-order tie-breaking for a reproducible
// pop sequence. The only difference is the ordering key, which adds the
// heuristic estimate of the remaining distance to End.
//
// Complexity (N = rows×cols):
//
//   - Time:  O(N log N) worst case; in practice the heuristic prunes
//     cells whose f-value exceeds the true path cost.
//   - Space: O(N) for the heap and settled set.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Search computes a shortest path from the grid's Start node to its End
// node, applying any number of functional Options.
//
// Returns ErrGridNil for a nil grid, or a wrapped grid.ErrMissingStart /
// grid.ErrMissingEnd when the grid is not fully configured; in those
// cases the grid is not mutated. Otherwise prior bookkeeping is cleared,
// Start is seeded with g=0 and f=h(Start), and the run proceeds until
// End is popped (Result.Found == true) or the heap drains
// (Result.Found == false).
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
		return nil, fmt.Errorf("astar: %w", grid.ErrMissingStart)
	}
	end, ok := g.End()
	if !ok {
		return nil, fmt.Errorf("astar: %w", grid.ErrMissingEnd)
	}

	g.ClearBookkeeping()

	n := g.Rows * g.Cols
	r := &runner{
		g:       g,
		opts:    o,
		settled: make(map[int]bool, n),
		pq:      make(nodePQ, 0, n),
		end:     end,
		endIdx:  g.Index(end.Row, end.Col),
		res:     &Result{},
	}

	start.Dist = 0
	start.Priority = manhattan(start, end)
	heap.Init(&r.pq)
	r.push(g.Index(start.Row, start.Col), start.Priority)

	return r.res, r.process()
}

// manhattan is the heuristic: |Δrow| + |Δcol| between two cells.
// It never overestimates the true remaining cost under 4-directional
// unit-cost movement, which preserves shortest-path optimality.
func manhattan(a, b *grid.Node) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *grid.Grid
	opts    Options
	settled map[int]bool
	pq      nodePQ
	seq     int
	end     *grid.Node
	endIdx  int
	res     *Result
}

// push adds a heap entry for idx with the given f-value snapshot.
func (r *runner) push(idx, priority int) {
	heap.Push(&r.pq, &nodeItem{idx: idx, priority: priority, seq: r.seq})
	r.seq++
}

// process repeatedly extracts the minimum-f cell, settles it, and
// relaxes its neighbors.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		if r.settled[item.idx] {
			continue
		}
		n := r.g.NodeAt(item.idx)
		r.opts.OnDequeue(r.g, n)

		if item.idx == r.endIdx {
			r.res.Found = true

			return nil
		}

		r.settled[item.idx] = true
		if n.State != grid.Start {
			n.State = grid.Visited
		}
		r.res.Explored++

		r.relax(item.idx, n)
	}

	return nil
}

// relax performs the same strict-improvement relaxation as Dijkstra,
// but pushes f = g + h as the frontier ordering key.
func (r *runner) relax(idx int, n *grid.Node) {
	for _, nb := range r.g.Neighbors(n) {
		alt := n.Dist + 1
		if alt >= nb.Dist {
			continue
		}
		nb.Dist = alt
		nb.Priority = alt + manhattan(nb, r.end)
		nb.Prev = idx
		r.push(r.g.Index(nb.Row, nb.Col), nb.Priority)
	}
}

// nodeItem is a frontier entry: a cell index with the f-value snapshot
// taken when it was pushed, plus an insertion sequence number.
type nodeItem struct {
	idx      int
	priority int
	seq      int
}

// nodePQ is a min-heap of *nodeItem ordered by priority, then insertion.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
