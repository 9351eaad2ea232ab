// Package bfs provides a production-grade breadth-first search over a
// grid.Grid, reporting explored-node counts and leaving a shortest
// predecessor chain on the grid.
//
// What
//
//   - Explore cells in non-decreasing distance (edge count) from the
//     grid's Start node toward its End node.
//   - Returns a Result containing:
//   - Explored: number of cells dequeued and examined
//   - Found: whether End was reached
//   - Mutates grid bookkeeping: each reached cell's Prev links back to
//     the cell that discovered it, forming a tree rooted at Start.
//   - Supports an OnDequeue hook for external rendering and a Context
//     for cancellation, both no-ops by default.
//
// Why
//
//   - On a uniform-cost grid BFS guarantees a shortest path in edge
//     count, making it the baseline the weighted searches are compared
//     against.
//   - Explored counts expose how much of the grid an uninformed search
//     touches, which the A* comparison tests build on.
//
// Determinism
//
//	Because grid.Neighbors returns adjacent cells in the fixed order
//	right, down, left, up, and BFS enqueues neighbors in that order,
//	the visit sequence is fully reproducible.
//
// Frontier discipline
//
//	A cell is enqueued at most once, guarded by a seen-set keyed by
//	arena index. The seen-set is deliberately separate from the cell
//	State: State also drives external rendering and must not double as
//	traversal bookkeeping.
//
// Complexity (N = rows×cols)
//
//   - Time:   O(N)   (each cell enqueued and dequeued at most once)
//   - Memory: O(N)   (queue and seen-set)
//
// Usage
//
//	res, err := bfs.Search(g)
//	if err != nil {
//	    // handle ErrGridNil, grid.ErrMissingStart or grid.ErrMissingEnd
//	}
//	if res.Found {
//	    length, _ := path.Reconstruct(g)
//	    fmt.Println(res.Explored, length)
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op OnDequeue hook.
//   - WithContext(ctx):   set a custom context for cancellation.
//   - WithOnDequeue(fn):  hook invoked once per dequeued cell.
//
// Errors
//
//   - ErrGridNil              if the grid pointer is nil.
//   - grid.ErrMissingStart    (wrapped) if no Start node is placed.
//   - grid.ErrMissingEnd      (wrapped) if no End node is placed.
package bfs
