// Package dijkstra_test contains unit tests for the uniform-cost search,
// covering input validation, shortest-path results, frontier determinism,
// component counting on walled-off grids, and reset idempotency.
package dijkstra_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/path"
)

// buildGrid creates a rows×cols grid with the given start, end and walls.
func buildGrid(t *testing.T, rows, cols int, start, end [2]int, walls [][2]int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	g.Place(start[0], start[1], grid.Start)
	g.Place(end[0], end[1], grid.End)
	for _, w := range walls {
		g.Place(w[0], w[1], grid.Blocked)
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation: errors are returned for invalid inputs, grid untouched.
// ------------------------------------------------------------------------

func TestSearch_NilGrid(t *testing.T) {
	if _, err := dijkstra.Search(nil); !errors.Is(err, dijkstra.ErrGridNil) {
		t.Fatalf("Expected ErrGridNil, got %v", err)
	}
}

func TestSearch_MissingStart(t *testing.T) {
	g, _ := grid.New(3, 3)
	g.Place(2, 2, grid.End)
	if _, err := dijkstra.Search(g); !errors.Is(err, grid.ErrMissingStart) {
		t.Fatalf("Expected wrapped ErrMissingStart, got %v", err)
	}
}

func TestSearch_MissingEnd(t *testing.T) {
	g, _ := grid.New(3, 3)
	g.Place(0, 0, grid.Start)
	if _, err := dijkstra.Search(g); !errors.Is(err, grid.ErrMissingEnd) {
		t.Fatalf("Expected wrapped ErrMissingEnd, got %v", err)
	}
}

func TestSearch_NoMutationOnInvalid(t *testing.T) {
	// A failed precondition must not clear prior bookkeeping.
	g, _ := grid.New(3, 3)
	g.Place(0, 0, grid.Start)
	n := g.At(1, 1)
	n.Dist = 7
	if _, err := dijkstra.Search(g); err == nil {
		t.Fatal("expected error for missing End")
	}
	if n.Dist != 7 {
		t.Fatalf("grid mutated on invalid configuration: Dist=%d", n.Dist)
	}
}

// ------------------------------------------------------------------------
// 2. Shortest paths and exploration counts on fixed boards.
// ------------------------------------------------------------------------

func TestSearch_OpenDiagonal(t *testing.T) {
	// End is the unique farthest cell, so every other cell settles first.
	g := buildGrid(t, 5, 5, [2]int{0, 0}, [2]int{4, 4}, nil)
	res, err := dijkstra.Search(g)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found {
		t.Fatal("expected End to be reached")
	}
	if res.Explored != 24 {
		t.Errorf("Explored = %d; want 24", res.Explored)
	}
	length, err := path.Reconstruct(g)
	if err != nil {
		t.Fatal(err)
	}
	if length != 8 {
		t.Errorf("path length = %d; want 8", length)
	}
}

func TestSearch_DetourAroundWall(t *testing.T) {
	// A wall splits the direct route; the detour costs 4 extra edges.
	g := buildGrid(t, 5, 5, [2]int{2, 0}, [2]int{2, 4},
		[][2]int{{0, 2}, {1, 2}, {2, 2}, {3, 2}})
	res, err := dijkstra.Search(g)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found {
		t.Fatal("expected End to be reached")
	}
	length, err := path.Reconstruct(g)
	if err != nil {
		t.Fatal(err)
	}
	if length != 8 {
		t.Errorf("path length = %d; want 8 (4 direct + 4 detour)", length)
	}
}

func TestSearch_WalledOffEnd(t *testing.T) {
	// Start's component is exactly row 0: three settled cells, no path.
	g := buildGrid(t, 3, 3, [2]int{0, 0}, [2]int{2, 2},
		[][2]int{{1, 0}, {1, 1}, {1, 2}})
	res, err := dijkstra.Search(g)
	if err != nil {
		t.Fatal(err)
	}
	if res.Found {
		t.Error("expected frontier exhaustion")
	}
	if res.Explored != 3 {
		t.Errorf("Explored = %d; want 3", res.Explored)
	}
	length, err := path.Reconstruct(g)
	if err != nil {
		t.Fatal(err)
	}
	if length != 0 {
		t.Errorf("path length = %d; want 0", length)
	}
}

// ------------------------------------------------------------------------
// 3. Frontier determinism and bookkeeping invariants.
// ------------------------------------------------------------------------

func TestSearch_DeterministicSettleOrder(t *testing.T) {
	// Equal distances break ties by insertion order, so the settle
	// sequence is identical across runs.
	g := buildGrid(t, 4, 4, [2]int{0, 0}, [2]int{3, 3}, [][2]int{{1, 1}})

	record := func() [][2]int {
		var order [][2]int
		if _, err := dijkstra.Search(g, dijkstra.WithOnDequeue(
			func(_ *grid.Grid, n *grid.Node) {
				order = append(order, [2]int{n.Row, n.Col})
			})); err != nil {
			t.Fatal(err)
		}

		return order
	}
	first := record()
	second := record()
	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("settle orders differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("settle order diverges at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestSearch_DistancesAreMinimal(t *testing.T) {
	// After a run, every settled cell's Dist equals its Manhattan
	// distance on an open board (no wall can shorten anything).
	g := buildGrid(t, 4, 4, [2]int{0, 0}, [2]int{3, 3}, nil)
	if _, err := dijkstra.Search(g); err != nil {
		t.Fatal(err)
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			n := g.At(r, c)
			if n.Dist != r+c {
				t.Errorf("Dist(%d,%d) = %d; want %d", r, c, n.Dist, r+c)
			}
		}
	}
}

func TestSearch_Cancellation(t *testing.T) {
	g := buildGrid(t, 50, 50, [2]int{0, 0}, [2]int{49, 49}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := dijkstra.Search(g, dijkstra.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 4. Reset semantics.
// ------------------------------------------------------------------------

func TestSearch_RerunIdempotent(t *testing.T) {
	g := buildGrid(t, 5, 5, [2]int{0, 0}, [2]int{4, 4},
		[][2]int{{0, 3}, {1, 3}, {2, 3}, {3, 1}})

	run := func() (int, int) {
		res, err := dijkstra.Search(g)
		if err != nil {
			t.Fatal(err)
		}
		length, err := path.Reconstruct(g)
		if err != nil {
			t.Fatal(err)
		}

		return res.Explored, length
	}
	e1, l1 := run()
	g.ClearBookkeeping()
	e2, l2 := run()
	if e1 != e2 || l1 != l2 {
		t.Errorf("rerun diverged: (%d,%d) vs (%d,%d)", e1, l1, e2, l2)
	}
}

func TestSearch_AfterFullReset(t *testing.T) {
	g := buildGrid(t, 3, 3, [2]int{0, 0}, [2]int{2, 2}, nil)
	g.Reset()
	if _, err := dijkstra.Search(g); !errors.Is(err, grid.ErrMissingStart) {
		t.Fatalf("Expected wrapped ErrMissingStart after Reset, got %v", err)
	}
}
