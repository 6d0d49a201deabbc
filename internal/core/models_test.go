package core

import "testing"

func TestCageTypeRoundTrip(t *testing.T) {
	for _, ct := range []CageType{Sum, Difference, Product, Ratio} {
		op := ct.Op()
		got, ok := CageTypeFromOp(op)
		if !ok || got != ct {
			t.Errorf("CageTypeFromOp(%q) = (%v,%v), want (%v,true)", op, got, ok, ct)
		}
	}
	if _, ok := CageTypeFromOp('?'); ok {
		t.Errorf("CageTypeFromOp('?') should fail")
	}
}

func TestCageTypeString(t *testing.T) {
	cases := map[CageType]string{
		Sum:        "sum",
		Difference: "difference",
		Product:    "product",
		Ratio:      "ratio",
	}
	for ct, want := range cases {
		if got := ct.String(); got != want {
			t.Errorf("CageType(%d).String() = %q, want %q", ct, got, want)
		}
	}
}

func TestPosXYRoundTrip(t *testing.T) {
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			pos := Pos(x, y)
			gx, gy := XY(pos)
			if gx != x || gy != y {
				t.Fatalf("XY(Pos(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
		}
	}
}

func TestCageSizeAndContains(t *testing.T) {
	c := Cage{Type: Sum, Target: 10, Members: []int{Pos(0, 0), Pos(1, 0)}}
	if c.Size() != 2 {
		t.Errorf("Size() = %d, want 2", c.Size())
	}
	if !c.Contains(Pos(0, 0)) || c.Contains(Pos(2, 2)) {
		t.Errorf("Contains behaved unexpectedly")
	}
}

func TestGridGetSet(t *testing.T) {
	var g Grid
	g.Set(3, 4, 7)
	if g.Get(3, 4) != 7 {
		t.Errorf("Get(3,4) = %d, want 7", g.Get(3, 4))
	}
	pos := Pos(3, 4)
	if g.GetPos(pos) != 7 {
		t.Errorf("GetPos round-trip mismatch")
	}
	g.SetPos(pos, 9)
	if g.Get(3, 4) != 9 {
		t.Errorf("SetPos did not update Get")
	}
}

func TestInitPuzzle(t *testing.T) {
	p := InitPuzzle(6)
	if p.N != 6 {
		t.Errorf("N = %d, want 6", p.N)
	}
	for _, c := range p.CellCage {
		if c != NoCage {
			t.Fatalf("CellCage entries should all start as NoCage")
		}
	}
	if p.EmptyCellCount() != 36 {
		t.Errorf("EmptyCellCount() = %d, want 36", p.EmptyCellCount())
	}
	if p.CageAt(Pos(0, 0)) != nil {
		t.Errorf("CageAt on an uncaged cell should be nil")
	}
}

func TestCageAt(t *testing.T) {
	p := InitPuzzle(4)
	p.Cages[0] = Cage{Type: Sum, Target: 3, Members: []int{Pos(0, 0), Pos(1, 0)}}
	p.CellCage[Pos(0, 0)] = 0
	p.CellCage[Pos(1, 0)] = 0

	cage := p.CageAt(Pos(0, 0))
	if cage == nil || cage.Target != 3 {
		t.Fatalf("CageAt returned %v, want the cage at index 0", cage)
	}
}

func TestEmptyCellCountWithGivens(t *testing.T) {
	p := InitPuzzle(3)
	p.Givens.Set(0, 0, 1)
	p.Givens.Set(1, 1, 2)
	if got := p.EmptyCellCount(); got != 7 {
		t.Errorf("EmptyCellCount() = %d, want 7", got)
	}
}

func TestClassificationString(t *testing.T) {
	cases := map[Classification]string{
		Unsolvable: "unsolvable",
		Unique:     "unique",
		NotUnique:  "not unique",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("Classification(%d).String() = %q, want %q", c, got, want)
		}
	}
}
