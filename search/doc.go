// Package search dispatches one of the four gridpath algorithms against
// a configured grid and reconstructs the result.
//
// What
//
//   - Algorithm enumerates BFS, DFS, Dijkstra and AStar.
//   - Run(g, algo) performs validation, search, and path reconstruction,
//     returning a Summary{Explored, PathLength}.
//   - Observation hooks (OnDequeue, OnPathStep) and a Context forward to
//     the underlying packages, so a renderer can animate a run without
//     knowing which algorithm is active.
//
// Why
//
//   - Callers that let a user pick an algorithm at runtime need a single
//     uniform entry point; the per-algorithm packages stay importable on
//     their own for callers that want one specific search.
//
// Errors
//
//   - ErrUnknownAlgorithm for an out-of-range Algorithm value.
//   - The dispatched package's ErrGridNil, or its wrapped
//     grid.ErrMissingStart / grid.ErrMissingEnd, pass through unchanged.
//   - An unreachable End is not an error: Summary.PathLength is 0 and
//     Summary.Explored still reports the cells examined.
package search
