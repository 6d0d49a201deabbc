package generate

import "calcudoku/internal/core"

// AllocateCage scans the cage table for the first unused slot (size 0)
// and returns its index. ok is false if the table is full;
// capacity exhaustion is never a failure, the caller's mutation simply
// becomes a no-op.
func AllocateCage(puzzle *core.Puzzle) (idx int, ok bool) {
	for i := range puzzle.Cages {
		if puzzle.Cages[i].Size() == 0 {
			return i, true
		}
	}
	return 0, false
}

// DestroyCage tears down a cage entirely: every member's given value is
// restored from solution and its cell-to-cage entry cleared, then the
// cage's member list is emptied.
func DestroyCage(puzzle *core.Puzzle, solution *core.Grid, idx int) {
	cage := &puzzle.Cages[idx]
	for _, c := range cage.Members {
		puzzle.Givens.SetPos(c, solution.GetPos(c))
		puzzle.CellCage[c] = core.NoCage
	}
	cage.Members = nil
}

// RemoveCellFromCage swap-removes cell from the cage's member list,
// restores its given value from solution, and clears its cell-to-cage
// entry. A no-op if cell is not actually a member of idx.
func RemoveCellFromCage(puzzle *core.Puzzle, solution *core.Grid, idx, cell int) {
	cage := &puzzle.Cages[idx]
	for i, c := range cage.Members {
		if c != cell {
			continue
		}
		last := len(cage.Members) - 1
		cage.Members[i] = cage.Members[last]
		cage.Members = cage.Members[:last]
		puzzle.Givens.SetPos(cell, solution.GetPos(cell))
		puzzle.CellCage[cell] = core.NoCage
		return
	}
}

// AddCellToCage appends cell to the cage's member list and zeroes its
// given value. A no-op if cell already belongs to a cage or idx is
// already at capacity.
func AddCellToCage(puzzle *core.Puzzle, idx, cell int) {
	if puzzle.CellCage[cell] != core.NoCage {
		return
	}
	cage := &puzzle.Cages[idx]
	if len(cage.Members) >= core.MaxCageSize {
		return
	}
	cage.Members = append(cage.Members, cell)
	puzzle.Givens.SetPos(cell, 0)
	puzzle.CellCage[cell] = idx
}
