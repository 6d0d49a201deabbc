package candidates

import "calcudoku/internal/core"

// ProductFactors is the "choose k factors from {1..n} whose product is
// target" reduction. Shared by Product cages and the multiplier
// half of Ratio cages. The k==1 special case mirrors SumRange's: a single
// remaining cell must equal target exactly, not merely divide it (see
// DESIGN.md for the conjunction-vs-disjunction note on this branch).
//
// Unlike SumRange, there's no closed-form range for "factors of target",
// so k > 1 is handled by recursing on one candidate factor at a time:
// i is admissible only if target/i itself factors into the remaining
// k-1 values, not merely if i divides target.
func ProductFactors(n, target, k int) core.ValueSet {
	if k <= 0 || target <= 0 {
		return 0
	}
	if k == 1 {
		if target >= 1 && target <= n {
			return core.Singleton(target)
		}
		return 0
	}
	var s core.ValueSet
	for i := 1; i <= n; i++ {
		if target%i != 0 {
			continue
		}
		if !ProductFactors(n, target/i, k-1).IsEmpty() {
			s = s.With(i)
		}
	}
	return s
}

// Product returns the candidate set for a Product cage's empty cells.
func Product(n, target int, known []int, missing int) core.ValueSet {
	p := 1
	for _, v := range known {
		p *= v
	}
	if p == 0 || target%p != 0 {
		return 0
	}
	return ProductFactors(n, target/p, missing)
}
