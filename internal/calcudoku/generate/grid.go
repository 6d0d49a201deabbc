// Package generate implements the randomized Latin-square grid generator,
// the cage primitives, the invariant-preserving mutators and the
// hardening loop that together turn a solution grid into a
// uniquely-solvable puzzle.
//
// The grid fill is a row-major backtracking search generalized from a
// fixed dimension to a caller-supplied N, threading an injected RNG
// rather than a package-level one so runs stay replayable.
package generate

import "calcudoku/internal/core"

// GenerateGrid produces a random valid Latin square of side n.
func GenerateGrid(n int, rng *RNG) core.Grid {
	var grid core.Grid
	if n <= 0 {
		return grid
	}

	row0 := rng.Permutation(n)
	for x, v := range row0 {
		grid.Set(x, 0, v)
	}
	if n == 1 {
		return grid
	}

	rowUsed := make([]core.ValueSet, n)
	colUsed := make([]core.ValueSet, n)
	for x := 0; x < n; x++ {
		v := grid.Get(x, 0)
		rowUsed[0] = rowUsed[0].With(v)
		colUsed[x] = colUsed[x].With(v)
	}

	if !fillFrom(&grid, n, 0, 1, rowUsed, colUsed, rng) {
		// Unreachable for n <= 16 given a valid first row; a failure here
		// is a programmer error, not a puzzle shape the caller can react to.
		panic("calcudoku: grid generator root fill failed")
	}
	return grid
}

// fillFrom recursively fills cells in row-major order starting at (x, y),
// sampling a random permutation of {1..n} at each cell to decide trial
// order.
func fillFrom(grid *core.Grid, n, x, y int, rowUsed, colUsed []core.ValueSet, rng *RNG) bool {
	if y >= n {
		return true
	}
	nx, ny := x+1, y
	if nx >= n {
		nx, ny = 0, y+1
	}

	for _, v := range rng.Permutation(n) {
		if rowUsed[y].Has(v) || colUsed[x].Has(v) {
			continue
		}
		grid.Set(x, y, v)
		rowUsed[y] = rowUsed[y].With(v)
		colUsed[x] = colUsed[x].With(v)

		if fillFrom(grid, n, nx, ny, rowUsed, colUsed, rng) {
			return true
		}

		rowUsed[y] = rowUsed[y].Without(v)
		colUsed[x] = colUsed[x].Without(v)
		grid.Set(x, y, 0)
	}
	return false
}
