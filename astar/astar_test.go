package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/path"
)

// buildGrid creates a rows×cols grid with the given start, end and walls.
func buildGrid(t *testing.T, rows, cols int, start, end [2]int, walls [][2]int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	g.Place(start[0], start[1], grid.Start)
	g.Place(end[0], end[1], grid.End)
	for _, w := range walls {
		g.Place(w[0], w[1], grid.Blocked)
	}

	return g
}

func TestSearch_NilGrid(t *testing.T) {
	_, err := astar.Search(nil)
	assert.ErrorIs(t, err, astar.ErrGridNil)
}

func TestSearch_MissingStart(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	g.Place(2, 2, grid.End)
	_, err = astar.Search(g)
	assert.ErrorIs(t, err, grid.ErrMissingStart)
}

func TestSearch_MissingEnd(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	g.Place(0, 0, grid.Start)
	_, err = astar.Search(g)
	assert.ErrorIs(t, err, grid.ErrMissingEnd)
}

// TestSearch_OpenDiagonal pins the exhaustive case: when End is the
// farthest cell the heuristic cannot prune anything, so A* settles the
// same 24 cells a blind uniform-cost search would.
func TestSearch_OpenDiagonal(t *testing.T) {
	g := buildGrid(t, 5, 5, [2]int{0, 0}, [2]int{4, 4}, nil)

	res, err := astar.Search(g)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 24, res.Explored)

	length, err := path.Reconstruct(g)
	require.NoError(t, err)
	assert.Equal(t, 8, length)
}

// TestSearch_HeuristicPrunes compares A* against plain Dijkstra on a
// board where the goal lies straight along one row: the heuristic keeps
// the frontier on that row while Dijkstra floods both directions.
func TestSearch_HeuristicPrunes(t *testing.T) {
	target := [2]int{0, 4}

	ag := buildGrid(t, 5, 5, [2]int{0, 0}, target, nil)
	ares, err := astar.Search(ag)
	require.NoError(t, err)
	require.True(t, ares.Found)
	assert.Equal(t, 4, ares.Explored)

	dg := buildGrid(t, 5, 5, [2]int{0, 0}, target, nil)
	dres, err := dijkstra.Search(dg)
	require.NoError(t, err)
	require.True(t, dres.Found)
	assert.Equal(t, 10, dres.Explored)

	// Pruning never costs optimality: both routes span 4 edges.
	alen, err := path.Reconstruct(ag)
	require.NoError(t, err)
	dlen, err := path.Reconstruct(dg)
	require.NoError(t, err)
	assert.Equal(t, dlen, alen)
	assert.Equal(t, 4, alen)
}

// TestSearch_MatchesDijkstraLengths checks length agreement on a board
// with walls, where the optimal route is forced through a detour.
func TestSearch_MatchesDijkstraLengths(t *testing.T) {
	walls := [][2]int{{0, 2}, {1, 2}, {2, 2}, {3, 2}}

	ag := buildGrid(t, 5, 5, [2]int{2, 0}, [2]int{2, 4}, walls)
	_, err := astar.Search(ag)
	require.NoError(t, err)
	alen, err := path.Reconstruct(ag)
	require.NoError(t, err)

	dg := buildGrid(t, 5, 5, [2]int{2, 0}, [2]int{2, 4}, walls)
	_, err = dijkstra.Search(dg)
	require.NoError(t, err)
	dlen, err := path.Reconstruct(dg)
	require.NoError(t, err)

	assert.Equal(t, 8, alen)
	assert.Equal(t, dlen, alen)
}

func TestSearch_WalledOffEnd(t *testing.T) {
	g := buildGrid(t, 3, 3, [2]int{0, 0}, [2]int{2, 2},
		[][2]int{{1, 0}, {1, 1}, {1, 2}})

	res, err := astar.Search(g)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 3, res.Explored)

	length, err := path.Reconstruct(g)
	require.NoError(t, err)
	assert.Equal(t, 0, length)
}

func TestSearch_OnDequeueHook(t *testing.T) {
	g := buildGrid(t, 3, 3, [2]int{0, 0}, [2]int{2, 2}, nil)

	var popped [][2]int
	res, err := astar.Search(g, astar.WithOnDequeue(func(_ *grid.Grid, n *grid.Node) {
		popped = append(popped, [2]int{n.Row, n.Col})
	}))
	require.NoError(t, err)

	// The hook observes every settled cell plus the terminating End pop.
	assert.Len(t, popped, res.Explored+1)
	assert.Equal(t, [2]int{0, 0}, popped[0])
	assert.Equal(t, [2]int{2, 2}, popped[len(popped)-1])
}

func TestSearch_Cancellation(t *testing.T) {
	g := buildGrid(t, 50, 50, [2]int{0, 0}, [2]int{49, 49}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := astar.Search(g, astar.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_RerunIdempotent(t *testing.T) {
	g := buildGrid(t, 5, 5, [2]int{0, 0}, [2]int{4, 4},
		[][2]int{{0, 3}, {1, 3}, {2, 3}, {3, 1}})

	first, err := astar.Search(g)
	require.NoError(t, err)
	l1, err := path.Reconstruct(g)
	require.NoError(t, err)

	g.ClearBookkeeping()

	second, err := astar.Search(g)
	require.NoError(t, err)
	l2, err := path.Reconstruct(g)
	require.NoError(t, err)

	assert.Equal(t, first.Explored, second.Explored)
	assert.Equal(t, l1, l2)
}
