package candidates

import "calcudoku/internal/core"

// Ratio returns the candidate set for a Ratio cage's empty cells,
// the multiplicative analog of Difference: which member holds the maximum
// is unknown, so the result unions the "max known" and "max missing"
// scenarios.
func Ratio(n, target int, known []int, missing int) core.ValueSet {
	if missing <= 0 {
		return 0
	}

	var result core.ValueSet
	product, maxKnown := 1, 0
	for _, v := range known {
		product *= v
		if v > maxKnown {
			maxKnown = v
		}
	}

	// Max is known: the missing cells are factors of m^2 / (P*target).
	if len(known) > 0 {
		den := product * target
		num := maxKnown * maxKnown
		if den != 0 && num%den == 0 {
			result = result.Union(ProductFactors(n, num/den, missing))
		}
	}

	// Max is missing: enumerate multiplier i with i*P*target <= n; the max
	// candidate is i*P*target and the remaining missing-1 cells are
	// factors of i.
	factorCount := missing - 1
	for i := 1; i*product*target <= n; i++ {
		m := i * product * target
		if factorCount == 0 {
			if i == 1 {
				result = result.With(m)
			}
			continue
		}
		factors := ProductFactors(n, i, factorCount)
		if !factors.IsEmpty() {
			result = result.With(m)
			result = result.Union(factors)
		}
	}

	return result
}
