package generate

import "calcudoku/internal/core"

// neighbors4 returns the orthogonal neighbors of pos within an n x n
// grid.
func neighbors4(pos, n int) []int {
	x, y := core.XY(pos)
	var out []int
	if x > 0 {
		out = append(out, core.Pos(x-1, y))
	}
	if x < n-1 {
		out = append(out, core.Pos(x+1, y))
	}
	if y > 0 {
		out = append(out, core.Pos(x, y-1))
	}
	if y < n-1 {
		out = append(out, core.Pos(x, y+1))
	}
	return out
}

// CutIslands flood-fills a cage's cell-to-cage footprint from its first
// member, over a scratch copy of the map. Any member not reached by that
// flood fill is disconnected from the anchor: it is removed from the
// cage and its given value restored. If the cage drops below the minimum
// live size, it is destroyed outright.
func CutIslands(puzzle *core.Puzzle, solution *core.Grid, idx int) {
	cage := &puzzle.Cages[idx]
	if len(cage.Members) == 0 {
		return
	}

	scratch := puzzle.CellCage
	anchor := cage.Members[0]
	reachable := map[int]bool{anchor: true}
	queue := []int{anchor}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range neighbors4(cur, puzzle.N) {
			if scratch[nb] == idx && !reachable[nb] {
				reachable[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	for _, c := range append([]int(nil), cage.Members...) {
		if !reachable[c] {
			RemoveCellFromCage(puzzle, solution, idx, c)
		}
	}

	if len(cage.Members) < core.MinCageSize {
		DestroyCage(puzzle, solution, idx)
	}
}

// UpdateTarget recomputes a cage's target from the solution values of its
// members. It reports failure when the two-cell flag restricts
// Difference/Ratio cages to size 2 and this cage is larger, or when the
// derived target would be non-integer or negative.
func UpdateTarget(cage *core.Cage, solution *core.Grid, twoCell bool) bool {
	sum, product, max := 0, 1, 0
	for _, c := range cage.Members {
		v := solution.GetPos(c)
		sum += v
		product *= v
		if v > max {
			max = v
		}
	}

	switch cage.Type {
	case core.Sum:
		cage.Target = sum
		return true

	case core.Product:
		cage.Target = product
		return true

	case core.Difference:
		if twoCell && len(cage.Members) > 2 {
			return false
		}
		t := 2*max - sum
		if t < 0 {
			return false
		}
		cage.Target = t
		return true

	case core.Ratio:
		if twoCell && len(cage.Members) > 2 {
			return false
		}
		num := max * max
		if product == 0 || num%product != 0 {
			return false
		}
		cage.Target = num / product
		return true

	default:
		return false
	}
}

// AlterType tries the four cage types in a random order and adopts the
// first for which UpdateTarget succeeds. Sum is always feasible, so this
// always terminates.
func AlterType(cage *core.Cage, solution *core.Grid, rng *RNG, twoCell bool) {
	types := [4]core.CageType{core.Sum, core.Difference, core.Product, core.Ratio}
	order := []int{0, 1, 2, 3}
	rng.Shuffle(order)

	for _, i := range order {
		cage.Type = types[i]
		if UpdateTarget(cage, solution, twoCell) {
			return
		}
	}

	cage.Type = core.Sum
	UpdateTarget(cage, solution, twoCell)
}

// RemoveCell detaches cell from whatever cage it belongs to, preserving
// every other cage's invariants. A no-op if cell is not in a
// cage.
func RemoveCell(puzzle *core.Puzzle, solution *core.Grid, cell int, rng *RNG, twoCell bool) {
	idx := puzzle.CellCage[cell]
	if idx == core.NoCage {
		return
	}

	cage := &puzzle.Cages[idx]
	if len(cage.Members) <= core.MinCageSize {
		DestroyCage(puzzle, solution, idx)
		return
	}

	RemoveCellFromCage(puzzle, solution, idx, cell)
	CutIslands(puzzle, solution, idx)
	if len(cage.Members) == 0 {
		return
	}

	if !UpdateTarget(cage, solution, twoCell) {
		AlterType(cage, solution, rng, twoCell)
	}
}

// JoinCells attempts to make cell share a cage with its neighbor nb:
// cell leaves its own cage and joins nb's, or a new two-cell cage is
// allocated when nb is uncaged. Cages are never merged. The allocation
// step silently no-ops if the cage table is exhausted.
func JoinCells(puzzle *core.Puzzle, solution *core.Grid, cell, nb int, rng *RNG, twoCell bool) {
	cIdx := puzzle.CellCage[cell]
	if cIdx != core.NoCage && cIdx == puzzle.CellCage[nb] {
		return
	}

	if cIdx != core.NoCage {
		RemoveCell(puzzle, solution, cell, rng, twoCell)
	}

	if nIdx := puzzle.CellCage[nb]; nIdx != core.NoCage {
		AddCellToCage(puzzle, nIdx, cell)
		cage := &puzzle.Cages[nIdx]
		if !UpdateTarget(cage, solution, twoCell) {
			AlterType(cage, solution, rng, twoCell)
		}
		return
	}

	idx, ok := AllocateCage(puzzle)
	if !ok {
		return // cage table exhausted: the mutation becomes a no-op
	}
	AddCellToCage(puzzle, idx, nb)
	AddCellToCage(puzzle, idx, cell)
	AlterType(&puzzle.Cages[idx], solution, rng, twoCell)
}
