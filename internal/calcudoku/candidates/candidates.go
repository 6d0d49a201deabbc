// Package candidates computes, for a cage of any of the four arithmetic
// types, the set of values admissible in its empty cells given its
// current partial fill, and the Latin-square row/column pruning
// that every empty cell also needs.
package candidates

import "calcudoku/internal/core"

// RowColumnEligible computes, for every cell of an n x n grid, the set of
// values not already present in its row or its column. Filled cells'
// entries are not meaningful to callers; only empty cells' entries are
// used downstream.
func RowColumnEligible(grid *core.Grid, n int) [256]core.ValueSet {
	var rowUsed, colUsed [16]core.ValueSet
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if v := grid.Get(x, y); v != 0 {
				rowUsed[y] = rowUsed[y].With(v)
				colUsed[x] = colUsed[x].With(v)
			}
		}
	}

	var eligible [256]core.ValueSet
	all := core.AllValues(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			eligible[core.Pos(x, y)] = all.Intersect(rowUsed[y].Complement(n)).Intersect(colUsed[x].Complement(n))
		}
	}
	return eligible
}

// ForCage computes the set of values that could legally fill any one of
// cage's empty cells, given the values currently occupying its other
// cells. Dispatch over the four cage types is a closed switch rather
// than a virtual interface: the compiler sees every case and can inline
// freely.
func ForCage(grid *core.Grid, cage *core.Cage, n int) core.ValueSet {
	known := make([]int, 0, len(cage.Members))
	missing := 0
	for _, pos := range cage.Members {
		if v := grid.GetPos(pos); v == 0 {
			missing++
		} else {
			known = append(known, v)
		}
	}
	if missing == 0 {
		return 0
	}

	switch cage.Type {
	case core.Sum:
		return Sum(n, cage.Target, known, missing)
	case core.Product:
		return Product(n, cage.Target, known, missing)
	case core.Difference:
		return Difference(n, cage.Target, known, missing)
	case core.Ratio:
		return Ratio(n, cage.Target, known, missing)
	default:
		return 0
	}
}
