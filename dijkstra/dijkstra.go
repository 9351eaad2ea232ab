// Package dijkstra implements Dijkstra's algorithm on a grid.Grid with
// uniform edge cost 1.
//
// The frontier is a min-heap of (cell, distance) entries ordered by the
// distance snapshot taken at push time; ties fall back to insertion
// order so the pop sequence is a total, reproducible order. Instead of
// a decrease-key operation, relaxation pushes duplicate entries and the
// pop loop discards entries whose cell is already settled.
//
// Complexity (N = rows×cols):
//
//   - Time:  O(N log N) — each cell settles once, each relaxation may push.
//   - Space: O(N) for the heap and settled set.
package dijkstra

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
// Start's distance is set to 0, and the run proceeds until End is popped
// (Result.Found == true) or the heap drains (Result.Found == false).
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
		return nil, fmt.Errorf("dijkstra: %w", grid.ErrMissingStart)
	}
	end, ok := g.End()
	if !ok {
		return nil, fmt.Errorf("dijkstra: %w", grid.ErrMissingEnd)
	}

	g.ClearBookkeeping()

	n := g.Rows * g.Cols
	r := &runner{
		g:       g,
		opts:    o,
		settled: make(map[int]bool, n),
		pq:      make(nodePQ, 0, n),
		end:     g.Index(end.Row, end.Col),
		res:     &Result{},
	}

	start.Dist = 0
	start.Priority = 0
	heap.Init(&r.pq)
	r.push(g.Index(start.Row, start.Col), 0)

	return r.res, r.process()
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *grid.Grid
	opts    Options
	settled map[int]bool // distance finalized; stale heap entries skipped
	pq      nodePQ
	seq     int // insertion counter for deterministic tie-breaking
	end     int
	res     *Result
}

// push adds a heap entry for idx with the given priority snapshot.
func (r *runner) push(idx, priority int) {
	heap.Push(&r.pq, &nodeItem{idx: idx, priority: priority, seq: r.seq})
	r.seq++
}

// process is the core loop: repeatedly extract the minimum-distance
// cell, settle it, and relax its neighbors.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		// Skip stale entries from the lazy-decrease-key strategy.
		if r.settled[item.idx] {
			continue
		}
		n := r.g.NodeAt(item.idx)
		r.opts.OnDequeue(r.g, n)

		// End is recognized before settling, so it never increments
		// Explored and Start==End yields Explored == 0.
		if item.idx == r.end {
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

// relax attempts to improve the distance of each neighbor of n.
// A strictly shorter distance updates the neighbor's bookkeeping and
// pushes a fresh heap entry; equal-cost rediscoveries are ignored.
func (r *runner) relax(idx int, n *grid.Node) {
	for _, nb := range r.g.Neighbors(n) {
		alt := n.Dist + 1
		if alt >= nb.Dist {
			continue
		}
		nb.Dist = alt
		nb.Priority = alt
		nb.Prev = idx
		r.push(r.g.Index(nb.Row, nb.Col), nb.Priority)
	}
}

// nodeItem is a frontier entry: a cell index with the priority snapshot
// taken when it was pushed, plus an insertion sequence number.
type nodeItem struct {
	idx      int
	priority int
	seq      int
}

// nodePQ is a min-heap of *nodeItem ordered by priority, then insertion.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

// Less orders by priority snapshot; equal priorities fall back to
// insertion order so the heap imposes a deterministic total order.
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
