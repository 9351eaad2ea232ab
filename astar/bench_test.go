package astar_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

func benchGrid(b *testing.B, rows, cols int, comb bool) *grid.Grid {
	b.Helper()
	g, err := grid.New(rows, cols)
	if err != nil {
		b.Fatal(err)
	}
	g.Place(0, 0, grid.Start)
	g.Place(rows-1, cols-1, grid.End)
	if comb {
		// Alternating wall columns with a single gap force long detours.
		for c := 1; c < cols-1; c += 2 {
			gap := 0
			if c%4 == 1 {
				gap = rows - 1
			}
			for r := 0; r < rows; r++ {
				if r != gap {
					g.Place(r, c, grid.Blocked)
				}
			}
		}
	}

	return g
}

func BenchmarkSearch_Open64(b *testing.B) {
	g := benchGrid(b, 64, 64, false)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ClearBookkeeping()
		if _, err := astar.Search(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_Comb64(b *testing.B) {
	g := benchGrid(b, 64, 64, true)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ClearBookkeeping()
		if _, err := astar.Search(g); err != nil {
			b.Fatal(err)
		}
	}
}
