package generate

import (
	"testing"

	"calcudoku/internal/core"
)

func TestAllocateCage(t *testing.T) {
	puzzle := core.InitPuzzle(4)
	idx, ok := AllocateCage(puzzle)
	if !ok || idx != 0 {
		t.Fatalf("AllocateCage on a fresh puzzle = (%d,%v), want (0,true)", idx, ok)
	}

	puzzle.Cages[0].Members = []int{core.Pos(0, 0)}
	idx, ok = AllocateCage(puzzle)
	if !ok || idx != 1 {
		t.Fatalf("AllocateCage after filling slot 0 = (%d,%v), want (1,true)", idx, ok)
	}
}

func TestAllocateCageExhausted(t *testing.T) {
	puzzle := core.InitPuzzle(4)
	for i := range puzzle.Cages {
		puzzle.Cages[i].Members = []int{core.Pos(0, 0)}
	}
	if _, ok := AllocateCage(puzzle); ok {
		t.Fatalf("AllocateCage should fail once the cage table is full")
	}
}

func TestAddAndRemoveCellFromCage(t *testing.T) {
	puzzle := core.InitPuzzle(4)
	var solution core.Grid
	solution.Set(0, 0, 3)
	solution.Set(1, 0, 2)

	cell0, cell1 := core.Pos(0, 0), core.Pos(1, 0)
	AddCellToCage(puzzle, 0, cell0)
	AddCellToCage(puzzle, 0, cell1)

	cage := &puzzle.Cages[0]
	if cage.Size() != 2 || !cage.Contains(cell0) || !cage.Contains(cell1) {
		t.Fatalf("cage after two adds = %+v", cage)
	}
	if puzzle.CellCage[cell0] != 0 || puzzle.CellCage[cell1] != 0 {
		t.Fatalf("cell-to-cage map not updated")
	}
	if puzzle.Givens.GetPos(cell0) != 0 {
		t.Fatalf("AddCellToCage should zero the given value")
	}

	RemoveCellFromCage(puzzle, &solution, 0, cell0)
	if cage.Size() != 1 || cage.Contains(cell0) {
		t.Fatalf("cage after removing cell0 = %+v", cage)
	}
	if puzzle.CellCage[cell0] != core.NoCage {
		t.Fatalf("cell0's cell-to-cage entry should be cleared")
	}
	if got := puzzle.Givens.GetPos(cell0); got != 3 {
		t.Fatalf("Givens(cell0) = %d, want 3 (restored from solution)", got)
	}
}

func TestAddCellToCageAlreadyCaged(t *testing.T) {
	puzzle := core.InitPuzzle(4)
	cell := core.Pos(0, 0)
	AddCellToCage(puzzle, 0, cell)
	AddCellToCage(puzzle, 1, cell)
	if puzzle.CellCage[cell] != 0 {
		t.Fatalf("AddCellToCage should no-op when the cell already belongs to a cage")
	}
	if puzzle.Cages[1].Size() != 0 {
		t.Fatalf("cage 1 should remain empty")
	}
}

func TestAddCellToCageAtCapacity(t *testing.T) {
	puzzle := core.InitPuzzle(4)
	for i := 0; i < core.MaxCageSize; i++ {
		AddCellToCage(puzzle, 0, core.Pos(i, 0))
	}
	if puzzle.Cages[0].Size() != core.MaxCageSize {
		t.Fatalf("cage 0 should have filled to capacity")
	}
	AddCellToCage(puzzle, 0, core.Pos(0, 1))
	if puzzle.Cages[0].Size() != core.MaxCageSize {
		t.Fatalf("AddCellToCage should no-op once the cage is at capacity")
	}
}

func TestDestroyCage(t *testing.T) {
	puzzle := core.InitPuzzle(4)
	var solution core.Grid
	solution.Set(0, 0, 5)
	solution.Set(1, 0, 6)

	cell0, cell1 := core.Pos(0, 0), core.Pos(1, 0)
	AddCellToCage(puzzle, 0, cell0)
	AddCellToCage(puzzle, 0, cell1)

	DestroyCage(puzzle, &solution, 0)

	if puzzle.Cages[0].Size() != 0 {
		t.Fatalf("cage 0 should be empty after DestroyCage")
	}
	if puzzle.CellCage[cell0] != core.NoCage || puzzle.CellCage[cell1] != core.NoCage {
		t.Fatalf("both cells should be uncaged after DestroyCage")
	}
	if puzzle.Givens.GetPos(cell0) != 5 || puzzle.Givens.GetPos(cell1) != 6 {
		t.Fatalf("both cells' given values should be restored from solution")
	}
}
