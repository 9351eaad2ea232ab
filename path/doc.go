// Package path walks the predecessor chain a search left on a grid.Grid
// and reports the resulting path length.
//
// What
//
//   - Reconstruct follows Prev links from End until a node with no
//     predecessor, marking intermediates OnPath.
//   - The return value counts edges, so an unreached End (or Start==End)
//     reports 0 — "no path" is a normal outcome here, not an error.
//   - An OnStep hook fires once per walked link for path animation.
//
// Why
//
//   - Every search package only marks predecessors; turning that tree
//     into a user-visible route and a length is one shared concern,
//     factored out so all four algorithms report lengths identically.
//
// Complexity
//
//   - O(L) where L is the path length; memory O(1).
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - grid.ErrMissingEnd   (wrapped) if no End node is placed.
package path
