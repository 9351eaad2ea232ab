// Package grid defines core types and sentinel errors for the
// gridpath cell/node data model.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction and search preconditions.
var (
	// ErrBadDimensions indicates the grid was requested with fewer than
	// one row or one column.
	ErrBadDimensions = errors.New("grid: rows and cols must be at least 1")

	// ErrMissingStart indicates a search was invoked on a grid without
	// a Start node.
	ErrMissingStart = errors.New("grid: no start node placed")

	// ErrMissingEnd indicates a search was invoked on a grid without
	// an End node.
	ErrMissingEnd = errors.New("grid: no end node placed")
)

// State classifies a single grid cell. States are mutually exclusive;
// at most one Start and one End exist per Grid at a time.
type State int

const (
	// Empty marks a free cell, traversable and available for placement.
	Empty State = iota
	// Start marks the search origin.
	Start
	// End marks the search target.
	End
	// Blocked marks an impassable cell; never returned by Neighbors.
	Blocked
	// OnPath marks an intermediate cell of a reconstructed path.
	OnPath
	// Visited marks a cell dequeued by a search; purely observational.
	Visited
)

// String returns a short human-readable name for the state.
func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Start:
		return "Start"
	case End:
		return "End"
	case Blocked:
		return "Blocked"
	case OnPath:
		return "OnPath"
	case Visited:
		return "Visited"
	default:
		return "Unknown"
	}
}

// Unreached is the distance sentinel for nodes not yet relaxed.
const Unreached = math.MaxInt

// NoPrev marks a node with no predecessor in the current search tree.
const NoPrev = -1

// Node represents one grid cell together with its search bookkeeping.
// Row and Col are immutable after creation and unique per Grid.
// Prev is a row-major arena index into the owning Grid, never a pointer:
// the Grid remains sole owner of all nodes.
type Node struct {
	Row, Col int   // coordinates within the grid
	State    State // current classification
	Dist     int   // cost from Start; Unreached until relaxed
	Priority int   // frontier ordering key; Dist for Dijkstra, Dist+heuristic for A*
	Prev     int   // arena index of the discovering node, or NoPrev
}
