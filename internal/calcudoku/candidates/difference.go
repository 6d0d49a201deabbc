package candidates

import "calcudoku/internal/core"

// Difference returns the candidate set for a Difference cage's empty
// cells. Which member holds the maximum value is unknown, so the
// result unions two scenarios: the maximum is already among the known
// values, or it still lies among the empty cells.
func Difference(n, target int, known []int, missing int) core.ValueSet {
	if missing <= 0 {
		return 0
	}

	var result core.ValueSet
	sumKnown, maxKnown := 0, 0
	for _, v := range known {
		sumKnown += v
		if v > maxKnown {
			maxKnown = v
		}
	}

	// Max is known: the missing cells are addends summing to 2m - P - target.
	if len(known) > 0 {
		result = result.Union(SumRange(n, 2*maxKnown-sumKnown-target, missing))
	}

	// Max is missing: enumerate every feasible maximum m, unioning in m
	// itself together with the addends (over the remaining missing-1
	// cells) that would make it consistent.
	addendCount := missing - 1
	lo := target + sumKnown + addendCount
	for m := lo; m <= n; m++ {
		addendSum := m - target - sumKnown
		if addendCount == 0 {
			if addendSum == 0 {
				result = result.With(m)
			}
			continue
		}
		addends := SumRange(n, addendSum, addendCount)
		if !addends.IsEmpty() {
			result = result.With(m)
			result = result.Union(addends)
		}
	}

	return result
}
