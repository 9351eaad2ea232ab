// Package dijkstra provides uniform-cost search over a grid with unit
// edge weights, settling cells in nondecreasing distance from Start.
//
// What:
//
//   - Search(g, opts...) runs Dijkstra's algorithm from the grid's Start
//     cell toward its End cell, writing Dist and Prev bookkeeping into
//     the grid's nodes as it goes.
//   - Result reports how many cells were settled and whether End was
//     reached; pair it with path.Reconstruct to materialize the route.
//
// Why:
//
//	On a unit-cost grid Dijkstra and BFS agree on path lengths, but the
//	priority-queue frontier is the baseline every weighted extension
//	builds on, and it is the natural sibling of the astar package, which
//	reuses the same runner shape with a heuristic added to the ordering.
//
// How:
//
//	The frontier is a binary heap with lazy decrease-key: relaxing a cell
//	pushes a fresh entry instead of repositioning the old one, and stale
//	entries are skipped at pop time via a settled set. Ties on priority
//	break by push sequence, so the settle order is deterministic.
//
// Complexity:
//
//	O(V log V) time on a grid (E = O(V)), O(V) memory.
//
// Errors:
//
//   - ErrGridNil when the grid is nil.
//   - grid.ErrMissingStart / grid.ErrMissingEnd (wrapped) when the grid
//     has no Start or End placed. The grid is left untouched.
//   - ctx.Err() when the context supplied via WithContext is done.
//
// Determinism:
//
//	Identical grids settle in identical order across runs.
package dijkstra
