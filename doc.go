// Package gridpath is your in-memory playground for pathfinding on
// rectangular grids: place a start, an end, and walls, then watch four
// classic searches race across the board.
//
// 🚀 What is gridpath?
//
//	A small, focused library that brings together:
//		• Grid model: a flat node arena with placement rules and two reset modes
//		• Uninformed search: BFS (shortest) and DFS (a path, fast and greedy)
//		• Weighted search: Dijkstra and A* with a Manhattan heuristic
//		• Path reconstruction: predecessor walking with on-path marking
//		• Hooks: OnDequeue / OnPathStep callbacks for step-by-step rendering
//
// ✨ Why choose gridpath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed adjacency order, reproducible tie-breaking
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – inject hooks and contexts without touching the core
//
// Under the hood, everything is organized per concern:
//
//	grid/     — Node & Grid arena, placement, adjacency, resets
//	bfs/      — FIFO frontier, shortest path in edge count
//	dfs/      — LIFO frontier, order-dependent (non-minimal) path
//	dijkstra/ — lazy-decrease-key min-heap, uniform cost
//	astar/    — same discipline, f = g + Manhattan(h)
//	path/     — predecessor-chain reconstruction & length
//	search/   — Algorithm enum + one-call Run facade
//
// Quick ASCII example:
//
//	    S . . # E
//	    . # . # .
//	    . # . . .
//
//	a 3×5 board where S is the start, E the end, and # are walls;
//	BFS, Dijkstra and A* all report the same length, DFS may not.
//
// Dive into the per-package docs for the full contracts, determinism
// notes, and the reasoning behind the DFS predecessor discipline.
package gridpath
