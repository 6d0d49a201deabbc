package generate

import (
	"testing"

	"calcudoku/internal/core"
)

func isLatinSquare(t *testing.T, grid *core.Grid, n int) {
	t.Helper()
	for y := 0; y < n; y++ {
		var seen core.ValueSet
		for x := 0; x < n; x++ {
			v := grid.Get(x, y)
			if v < 1 || v > n {
				t.Fatalf("row %d: value %d out of range 1..%d", y, v, n)
			}
			if seen.Has(v) {
				t.Fatalf("row %d has a repeated value %d", y, v)
			}
			seen = seen.With(v)
		}
	}
	for x := 0; x < n; x++ {
		var seen core.ValueSet
		for y := 0; y < n; y++ {
			v := grid.Get(x, y)
			if seen.Has(v) {
				t.Fatalf("column %d has a repeated value %d", x, v)
			}
			seen = seen.With(v)
		}
	}
}

func TestGenerateGridIsLatinSquare(t *testing.T) {
	for _, n := range []int{1, 2, 3, 6, 9, 16} {
		rng := NewRNG(int64(n) * 31)
		grid := GenerateGrid(n, rng)
		isLatinSquare(t, &grid, n)
	}
}

func TestGenerateGridZeroDimension(t *testing.T) {
	rng := NewRNG(1)
	grid := GenerateGrid(0, rng)
	for _, c := range grid.Cells {
		if c != 0 {
			t.Fatalf("GenerateGrid(0,...) should leave the grid all zero")
		}
	}
}

func TestGenerateGridDeterministic(t *testing.T) {
	a := GenerateGrid(6, NewRNG(123))
	b := GenerateGrid(6, NewRNG(123))
	if a != b {
		t.Fatalf("GenerateGrid with the same seed produced different grids")
	}
}
