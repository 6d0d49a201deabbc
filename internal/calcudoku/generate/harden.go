package generate

import (
	"calcudoku/internal/calcudoku/solve"
	"calcudoku/internal/core"
	"calcudoku/pkg/constants"
)

// HardenPass runs one bounded random-mutation climb: it mutates a
// local copy of puzzle ten times, probing each mutation with the solver,
// and commits the copy back to puzzle whenever it is uniquely solvable,
// scores higher than bestScore, and (when limit > 0) stays within limit.
// Returns the resulting best score.
func HardenPass(puzzle *core.Puzzle, solution *core.Grid, bestScore, limit int, twoCell bool, rng *RNG) int {
	n := puzzle.N
	if n <= 1 {
		return bestScore
	}

	working := *puzzle
	// Cage.Members is heap-backed, so the struct copy above still aliases
	// puzzle's backing arrays: deep-copy each one now, before any mutation,
	// so a later commit (*puzzle = working) can never leave puzzle's
	// CellCage map pointing at a layout some in-place Members edit has
	// since rewritten out from under it.
	for i := range working.Cages {
		if m := working.Cages[i].Members; len(m) > 0 {
			working.Cages[i].Members = append([]int(nil), m...)
		}
	}
	for i := 0; i < constants.MutationsPerPass; i++ {
		x := rng.Intn(n)
		y := rng.Intn(n)
		cell := core.Pos(x, y)
		nb := pickNeighbor(x, y, n, rng)

		JoinCells(&working, solution, cell, nb, rng, twoCell)

		result := solve.Solve(&working)
		if result.Classification == core.Unique &&
			result.Difficulty > bestScore &&
			(limit <= 0 || result.Difficulty <= limit) {
			*puzzle = working
			// The commit shares working's Members arrays with puzzle again;
			// give puzzle its own copies so later uncommitted mutations of
			// working cannot leak into it.
			for j := range puzzle.Cages {
				if m := puzzle.Cages[j].Members; len(m) > 0 {
					puzzle.Cages[j].Members = append([]int(nil), m...)
				}
			}
			bestScore = result.Difficulty
		}
	}
	return bestScore
}

// pickNeighbor chooses one of (x, y)'s orthogonal neighbors, biased so
// that out-of-bounds directions are never chosen.
func pickNeighbor(x, y, n int, rng *RNG) int {
	nx := x + 1
	if nx >= n || (nx < n && x-1 >= 0 && rng.Bit()) {
		nx = x - 1
	}
	ny := y + 1
	if ny >= n || (ny < n && y-1 >= 0 && rng.Bit()) {
		ny = y - 1
	}
	if rng.Bit() {
		return core.Pos(nx, y)
	}
	return core.Pos(x, ny)
}

// Generate produces a puzzle from solution: it seeds an empty puzzle with
// the solution as givens, then repeatedly hardens it (up to
// maxIterations passes, stopping early once target is reached) before
// normalizing cage labels.
func Generate(solution *core.Grid, n int, twoCell bool, maxIterations, limit, target int, rng *RNG) (*core.Puzzle, int) {
	puzzle := core.InitPuzzle(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			puzzle.Givens.Set(x, y, solution.Get(x, y))
		}
	}

	bestScore := 0
	for i := 0; i < maxIterations; i++ {
		if target > 0 && bestScore >= target {
			break
		}
		bestScore = HardenPass(puzzle, solution, bestScore, limit, twoCell, rng)
	}

	NormalizeLabels(puzzle)
	return puzzle, bestScore
}

// NormalizeLabels rotates every cage's member list so that its smallest
// cell position is listed first, so the puzzle text codec's
// first-member-carries-the-clue convention round-trips stably.
func NormalizeLabels(puzzle *core.Puzzle) {
	for i := range puzzle.Cages {
		cage := &puzzle.Cages[i]
		if len(cage.Members) == 0 {
			continue
		}
		minIdx := 0
		for j, m := range cage.Members {
			if m < cage.Members[minIdx] {
				minIdx = j
			}
		}
		if minIdx == 0 {
			continue
		}
		rotated := make([]int, len(cage.Members))
		copy(rotated, cage.Members[minIdx:])
		copy(rotated[len(cage.Members)-minIdx:], cage.Members[:minIdx])
		cage.Members = rotated
	}
}
