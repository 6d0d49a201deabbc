package candidates

import (
	"reflect"
	"testing"

	"calcudoku/internal/core"
)

func TestRowColumnEligible(t *testing.T) {
	var grid core.Grid
	grid.Set(0, 0, 1)
	grid.Set(1, 0, 2)
	grid.Set(0, 1, 3)

	eligible := RowColumnEligible(&grid, 4)

	// (1,1) shares a row with (0,1)=3 and a column with (1,0)=2.
	got := eligible[core.Pos(1, 1)].Values()
	want := []int{1, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("eligible(1,1) = %v, want %v", got, want)
	}

	// (2,2) shares nothing already filled.
	got = eligible[core.Pos(2, 2)].Values()
	want = []int{1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("eligible(2,2) = %v, want %v", got, want)
	}
}

func TestForCageSum(t *testing.T) {
	var grid core.Grid
	grid.Set(0, 0, 2)
	cage := core.Cage{
		Type:    core.Sum,
		Target:  7,
		Members: []int{core.Pos(0, 0), core.Pos(1, 0)},
	}

	got := ForCage(&grid, &cage, 5).Values()
	want := []int{5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ForCage(sum) = %v, want %v", got, want)
	}
}

func TestForCageAllFilled(t *testing.T) {
	var grid core.Grid
	grid.Set(0, 0, 3)
	grid.Set(1, 0, 4)
	cage := core.Cage{
		Type:    core.Sum,
		Target:  7,
		Members: []int{core.Pos(0, 0), core.Pos(1, 0)},
	}

	if got := ForCage(&grid, &cage, 5); !got.IsEmpty() {
		t.Errorf("ForCage on a fully-filled cage should be empty, got %v", got.Values())
	}
}

func TestForCageProductAndRatio(t *testing.T) {
	var grid core.Grid
	cage := core.Cage{
		Type:    core.Product,
		Target:  12,
		Members: []int{core.Pos(0, 0), core.Pos(1, 0)},
	}
	got := ForCage(&grid, &cage, 6).Values()
	want := ProductFactors(6, 12, 2).Values()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ForCage(product) = %v, want %v", got, want)
	}

	cage.Type = core.Ratio
	cage.Target = 2
	got = ForCage(&grid, &cage, 6).Values()
	want = Ratio(6, 2, nil, 2).Values()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ForCage(ratio) = %v, want %v", got, want)
	}
}
