// Package dfs implements explicit-stack depth-first search on a
// grid.Grid.
//
// What
//
//   - Pop cells from a LIFO stack seeded with Start until End is popped
//     or the stack drains.
//   - Returns a Result with the explored-cell count and whether End was
//     reached; the grid's Prev links trace the discovered path.
//   - Supports an OnDequeue hook and context cancellation.
//
// Why
//
//   - DFS reaches End fast on corridor-like grids and demonstrates the
//     contrast with the shortest-path searches: its path is valid but
//     order-dependent and usually longer.
//
// Visited discipline
//
//	The visited set is consulted when a cell is popped, not when it is
//	pushed. A cell may therefore be pushed multiple times, and its Prev
//	link reflects the most recent pusher at the moment it is finally
//	visited. This matches the textbook explicit-stack formulation and is
//	preserved intentionally; "fixing" it would silently change which
//	path gets reported.
//
// Complexity (N = rows×cols)
//
//   - Time:   O(N) effective pops, duplicates skipped in O(1).
//   - Memory: O(N) for stack and visited set.
//
// Errors
//
//   - ErrGridNil              if the grid pointer is nil.
//   - grid.ErrMissingStart    (wrapped) if no Start node is placed.
//   - grid.ErrMissingEnd      (wrapped) if no End node is placed.
package dfs
