package service

import (
	"math"
	"slices"

	"roam/internal/domains/search/model"
)

const (
	// resultFloor is the result count under which the same-state fallback is
	// worth running, provided a state hint exists to run it with.
	resultFloor = 10

	defaultLimit = 20
)

// FilterByBudget drops candidates whose calculated total falls outside the
// requested budget band. A missing bound is open on that side.
func FilterByBudget(scored []model.ScoredCandidate, budgetMin, budgetMax *float64) []model.ScoredCandidate {
	low := 0.0
	if budgetMin != nil {
		low = *budgetMin
	}

	high := math.Inf(1)
	if budgetMax != nil {
		high = *budgetMax
	}

	filtered := make([]model.ScoredCandidate, 0, len(scored))

	for _, candidate := range scored {
		if candidate.CalculatedTotal >= low && candidate.CalculatedTotal <= high {
			filtered = append(filtered, candidate)
		}
	}

	return filtered
}

// SortAndTruncate orders the final list and cuts it to the requested limit.
// Sorting is stable so that equal keys keep their planner-stage order.
func SortAndTruncate(scored []model.ScoredCandidate, sortBy string, limit int) []model.ScoredCandidate {
	switch sortBy {
	case model.SortPriceLowToHigh:
		slices.SortStableFunc(scored, func(a, b model.ScoredCandidate) int {
			return compareFloat(a.CalculatedTotal, b.CalculatedTotal)
		})
	case model.SortPriceHighToLow:
		slices.SortStableFunc(scored, func(a, b model.ScoredCandidate) int {
			return compareFloat(b.CalculatedTotal, a.CalculatedTotal)
		})
	default:
		slices.SortStableFunc(scored, func(a, b model.ScoredCandidate) int {
			return compareFloat(b.FinalScore, a.FinalScore)
		})
	}

	if limit <= 0 {
		limit = defaultLimit
	}

	if len(scored) > limit {
		scored = scored[:limit]
	}

	return scored
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
