package candidates

import "calcudoku/internal/core"

// SumRange is the "choose k addends from {1..n} summing to target"
// reduction. It is shared by Sum cages directly and by the addend
// half of Difference cages, which reduce to exactly this problem once the
// maximum member is pinned down.
func SumRange(n, target, k int) core.ValueSet {
	if k <= 0 {
		return 0
	}
	if k == 1 {
		if target >= 1 && target <= n {
			return core.Singleton(target)
		}
		return 0
	}
	lo := target - n*(k-1)
	if lo < 1 {
		lo = 1
	}
	hi := target - (k - 1)
	if hi > n {
		hi = n
	}
	if lo > hi {
		return 0
	}
	return core.ValueRange(lo, hi)
}

// Sum returns the candidate set for a Sum cage's empty cells, given the
// values already known and the count of cells still empty.
func Sum(n, target int, known []int, missing int) core.ValueSet {
	t := target
	for _, v := range known {
		t -= v
	}
	return SumRange(n, t, missing)
}
