// Package solve implements the constraint-propagating backtracking search
// that classifies a puzzle's solvability and, for uniquely solvable
// puzzles, scores its difficulty.
//
// Cell selection always picks the most-constrained empty cell, where
// the candidate set comes from internal/calcudoku/candidates's
// cage-aware engine rather than a fixed per-cell rule.
package solve

import (
	"calcudoku/internal/calcudoku/candidates"
	"calcudoku/internal/core"
	"calcudoku/pkg/constants"
)

// Solve classifies puzzle's solvability and, when a solution exists,
// reports the first one found along with its difficulty score (see
// core.SolveResult).
func Solve(puzzle *core.Puzzle) core.SolveResult {
	grid := puzzle.Givens
	res := &searchResult{}
	step(&grid, puzzle, 0, res)

	if res.count == 0 {
		return core.SolveResult{Classification: core.Unsolvable}
	}

	classification := core.Unique
	if res.count >= constants.SolutionCountLimit {
		classification = core.NotUnique
	}

	sol := res.solution
	e := puzzle.EmptyCellCount()
	m := powerOf10AtLeast(puzzle.N * puzzle.N)

	return core.SolveResult{
		Classification: classification,
		Solution:       &sol,
		Difficulty:     res.difficulty*m + e,
	}
}

// searchResult accumulates the outcome across the recursive search: a
// solution counter capped by the caller's abort threshold, and the first
// solution's grid and branch-difficulty.
type searchResult struct {
	count      int
	solution   core.Grid
	difficulty int
}

// step performs one level of the recursive search: pick the
// most-constrained empty cell, and try each of its candidates in
// ascending order.
func step(grid *core.Grid, puzzle *core.Puzzle, branchDifficulty int, res *searchResult) {
	if res.count >= constants.SolutionCountLimit {
		return
	}

	n := puzzle.N
	rowcol := candidates.RowColumnEligible(grid, n)

	bestPos := -1
	bestCount := -1
	var bestSet core.ValueSet

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			pos := core.Pos(x, y)
			if grid.GetPos(pos) != 0 {
				continue
			}
			set := eligibleFor(grid, puzzle, rowcol, pos)
			cnt := set.Count()
			if bestPos == -1 || cnt < bestCount {
				bestPos, bestSet, bestCount = pos, set, cnt
			}
		}
	}

	if bestPos == -1 {
		// No empty cells: the current assignment is a complete solution.
		res.count++
		if res.count == 1 {
			res.solution = *grid
			res.difficulty = branchDifficulty
		}
		return
	}

	if bestCount == 0 {
		return // dead end
	}

	stepCost := (bestCount - 1) * (bestCount - 1)
	for _, v := range bestSet.Values() {
		grid.SetPos(bestPos, v)
		step(grid, puzzle, branchDifficulty+stepCost, res)
		grid.SetPos(bestPos, 0)
		if res.count >= constants.SolutionCountLimit {
			return
		}
	}
}

// eligibleFor intersects a cell's row/column-pruned set with its cage's
// candidate set. Cells outside any cage (never expected for
// a well-formed puzzle, since every cage has at least two members and
// leftover cells are simply additional givens) fall back to the
// row/column set alone.
func eligibleFor(grid *core.Grid, puzzle *core.Puzzle, rowcol [256]core.ValueSet, pos int) core.ValueSet {
	cage := puzzle.CageAt(pos)
	if cage == nil {
		return rowcol[pos]
	}
	return rowcol[pos].Intersect(candidates.ForCage(grid, cage, puzzle.N))
}

// powerOf10AtLeast returns the smallest power of 10 that is >= v.
func powerOf10AtLeast(v int) int {
	m := 1
	for m < v {
		m *= 10
	}
	return m
}
