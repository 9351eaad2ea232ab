// Package grid provides the fixed-size 2D node arena used by all
// gridpath search algorithms. It owns start/end designation and serves
// 4-directional adjacency queries filtered by blocked cells.
package grid

// neighborOffsets lists the orthogonal directions in the fixed
// traversal order: right, down, left, up. The order is part of the
// adjacency contract so that algorithm tie-breaking is reproducible.
var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Grid is a rows×cols collection of Nodes stored row-major.
// It is the exclusive owner of its nodes; searches mutate node
// bookkeeping in place and predecessor links are arena indices.
type Grid struct {
	Rows, Cols int
	nodes      []Node
	start, end int // arena indices, NoPrev when unset
}

// New constructs an all-Empty Grid of the given dimensions.
// Returns ErrBadDimensions if rows or cols is below 1.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadDimensions
	}
	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		nodes: make([]Node, rows*cols),
		start: NoPrev,
		end:   NoPrev,
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.nodes[r*cols+c] = Node{Row: r, Col: c, Dist: Unreached, Prev: NoPrev}
		}
	}

	return g, nil
}

// InBounds reports whether (row,col) lies within the grid boundaries.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Index maps (row,col) to the row-major arena index.
func (g *Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// Coordinate converts a row-major arena index back to (row,col).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.Cols, idx % g.Cols
}

// At returns the node at (row,col), or nil if out of bounds.
func (g *Grid) At(row, col int) *Node {
	if !g.InBounds(row, col) {
		return nil
	}

	return &g.nodes[g.Index(row, col)]
}

// NodeAt returns the node stored at the given arena index.
// The index must be valid; use At for checked coordinate access.
func (g *Grid) NodeAt(idx int) *Node {
	return &g.nodes[idx]
}

// Start returns the Start node, or (nil,false) if none is placed.
func (g *Grid) Start() (*Node, bool) {
	if g.start == NoPrev {
		return nil, false
	}

	return &g.nodes[g.start], true
}

// End returns the End node, or (nil,false) if none is placed.
func (g *Grid) End() (*Node, bool) {
	if g.end == NoPrev {
		return nil, false
	}

	return &g.nodes[g.end], true
}

// Place sets the classification of the node at (row,col).
// It is a silent no-op when the coordinates are out of bounds, the
// target node is not currently Empty, kind is not one of
// Start/End/Blocked, or kind is Start/End and one already exists
// elsewhere on the grid. This enforces at most one Start and one End
// without surfacing placement as an error.
func (g *Grid) Place(row, col int, kind State) {
	if !g.InBounds(row, col) {
		return
	}
	idx := g.Index(row, col)
	if g.nodes[idx].State != Empty {
		return
	}
	switch kind {
	case Start:
		if g.start != NoPrev {
			return
		}
		g.start = idx
	case End:
		if g.end != NoPrev {
			return
		}
		g.end = idx
	case Blocked:
		// always allowed on an Empty cell
	default:
		return
	}
	g.nodes[idx].State = kind
}

// PlaceAuto places with sequential assignment semantics: the first
// placement on an Empty cell becomes Start, the second End, and every
// subsequent one Blocked. Mirrors click-based placement.
func (g *Grid) PlaceAuto(row, col int) {
	switch {
	case g.start == NoPrev:
		g.Place(row, col, Start)
	case g.end == NoPrev:
		g.Place(row, col, End)
	default:
		g.Place(row, col, Blocked)
	}
}

// Neighbors returns the up-to-4 orthogonally adjacent in-bounds nodes
// of n that are not Blocked, in the fixed order right, down, left, up.
func (g *Grid) Neighbors(n *Node) []*Node {
	out := make([]*Node, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		r, c := n.Row+d[0], n.Col+d[1]
		if !g.InBounds(r, c) {
			continue
		}
		nb := &g.nodes[g.Index(r, c)]
		if nb.State == Blocked {
			continue
		}
		out = append(out, nb)
	}

	return out
}

// ClearBookkeeping resets every node's Dist, Priority and Prev, and
// erases transient Visited/OnPath markings back to Empty, while
// preserving the Blocked/Start/End classification. Every search calls
// this before exploring, so re-running an algorithm on the same grid
// reproduces its first result.
func (g *Grid) ClearBookkeeping() {
	for i := range g.nodes {
		n := &g.nodes[i]
		n.Dist = Unreached
		n.Priority = 0
		n.Prev = NoPrev
		if n.State == Visited || n.State == OnPath {
			n.State = Empty
		}
	}
}

// Reset clears everything: all nodes become Empty with fresh
// bookkeeping, and the Start/End designation is removed.
func (g *Grid) Reset() {
	for i := range g.nodes {
		n := &g.nodes[i]
		n.State = Empty
		n.Dist = Unreached
		n.Priority = 0
		n.Prev = NoPrev
	}
	g.start = NoPrev
	g.end = NoPrev
}
