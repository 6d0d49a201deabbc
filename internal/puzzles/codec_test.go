package puzzles

import (
	"strings"
	"testing"

	"calcudoku/internal/core"
)

func TestParsePrintRoundTrip(t *testing.T) {
	text := "A+3 A\n1 2\n"
	puzzle, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if puzzle.N != 2 {
		t.Fatalf("N = %d, want 2", puzzle.N)
	}
	cage := puzzle.CageAt(core.Pos(0, 0))
	if cage == nil || cage.Type != core.Sum || cage.Target != 3 || cage.Size() != 2 {
		t.Fatalf("cage = %+v, want Sum/3/size 2", cage)
	}
	if puzzle.Givens.Get(0, 1) != 1 || puzzle.Givens.Get(1, 1) != 2 {
		t.Fatalf("givens row = (%d,%d), want (1,2)", puzzle.Givens.Get(0, 1), puzzle.Givens.Get(1, 1))
	}

	if got := Print(puzzle); got != text {
		t.Fatalf("Print(Parse(text)) = %q, want %q", got, text)
	}
}

func TestParseEmptyGrid(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Fatalf("Parse(\"\") should fail on an empty grid")
	}
}

func TestParseNonSquareRow(t *testing.T) {
	text := "A+3 A\n1\n"
	if _, err := Parse(text); err == nil {
		t.Fatalf("Parse should reject a short row")
	}
}

func TestParseCageMissingClue(t *testing.T) {
	text := "A A\n1 2\n"
	if _, err := Parse(text); err == nil {
		t.Fatalf("Parse should reject a cage with no clue-bearing cell")
	}
}

func TestParseCageNotContiguous(t *testing.T) {
	text := "A+3 1 A\n2 3 4\n5 6 7\n"
	_, err := Parse(text)
	if err == nil {
		t.Fatalf("Parse should reject a cage whose members are not 4-connected")
	}
	if !strings.Contains(err.Error(), "4-connected") {
		t.Errorf("error = %v, want a 4-connected complaint", err)
	}
}

func TestParseProductZeroTarget(t *testing.T) {
	text := "A*0 A\n1 2\n"
	_, err := Parse(text)
	if err == nil {
		t.Fatalf("Parse should reject a Product cage with a non-positive target")
	}
}

func TestParseUnknownOperator(t *testing.T) {
	text := "A%3 A\n1 2\n"
	if _, err := Parse(text); err == nil {
		t.Fatalf("Parse should reject an unrecognized clue operator")
	}
}

func TestParseConflictingClues(t *testing.T) {
	text := "A+3 A+4\n1 2\n"
	_, err := Parse(text)
	if err == nil {
		t.Fatalf("Parse should reject a cage with two conflicting clues")
	}
	if !strings.Contains(err.Error(), "conflicting") {
		t.Errorf("error = %v, want a conflicting-clues complaint", err)
	}
}

func TestParseOversizedGrid(t *testing.T) {
	row := strings.Repeat("1 ", 17)
	var rows []string
	for i := 0; i < 17; i++ {
		rows = append(rows, strings.TrimSpace(row))
	}
	text := strings.Join(rows, "\n") + "\n"
	if _, err := Parse(text); err == nil {
		t.Fatalf("Parse should reject a grid larger than MaxN")
	}
}

func TestConnected(t *testing.T) {
	if !connected(3, []int{core.Pos(0, 0), core.Pos(1, 0)}) {
		t.Errorf("adjacent cells should be reported connected")
	}
	if connected(3, []int{core.Pos(0, 0), core.Pos(2, 0)}) {
		t.Errorf("non-adjacent cells should not be reported connected")
	}
	if !connected(3, nil) {
		t.Errorf("an empty member list is vacuously connected")
	}
}

func TestPrintUnicodeSmoke(t *testing.T) {
	puzzle, err := Parse("A+3 A\n1 2\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out := PrintUnicode(puzzle)
	if !strings.Contains(out, "─") || !strings.Contains(out, "│") {
		t.Errorf("PrintUnicode output missing box-drawing characters: %q", out)
	}
	if !strings.Contains(out, " 1") || !strings.Contains(out, " 2") {
		t.Errorf("PrintUnicode output missing given values: %q", out)
	}
}

func TestCageLabelRoundTrip(t *testing.T) {
	for idx := 0; idx < core.MaxCages; idx++ {
		label := cageLabel(idx)
		got, ok := cageIndexForLabel(label)
		if !ok || got != idx {
			t.Errorf("cageIndexForLabel(cageLabel(%d)) = (%d,%v), want (%d,true)", idx, got, ok, idx)
		}
	}
}
