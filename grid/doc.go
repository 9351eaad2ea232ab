// Package grid models a rectangular field of cells as a node arena for
// pathfinding.
//
// What:
//
//   - Grid owns a rows×cols arena of Node values, stored row-major.
//   - Nodes carry a mutually exclusive State (Empty, Start, End, Blocked,
//     OnPath, Visited) plus the per-search bookkeeping fields Dist,
//     Priority and Prev.
//   - Place / PlaceAuto designate Start, End and Blocked cells; invalid
//     placements are silent no-ops so the grid never enters a broken state.
//   - Neighbors serves 4-directional adjacency in the fixed order
//     right, down, left, up, filtering Blocked cells.
//   - ClearBookkeeping wipes search state but keeps placements;
//     Reset wipes everything.
//
// Why:
//
//   - A single flat arena with index-based predecessor links keeps the
//     grid the sole owner of every node and makes predecessor chains
//     trivially acyclic to reason about.
//   - Deterministic adjacency order makes every search's tie-breaking
//     reproducible, which the test suite relies on.
//
// Complexity:
//
//   - New, ClearBookkeeping, Reset: O(rows×cols).
//   - Place, Neighbors, index math: O(1).
//
// Errors:
//
//   - ErrBadDimensions: grid requested with no rows or no columns.
//   - ErrMissingStart, ErrMissingEnd: surfaced (wrapped) by the search
//     packages when invoked on an incompletely configured grid.
package grid
