package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roam/internal/domains/search/model"
	"roam/internal/domains/search/service"
	storyModel "roam/internal/domains/story/model"
)

func scoredCandidate(id string, total, score float64) model.ScoredCandidate {
	return model.ScoredCandidate{
		Story:           storyModel.Story{ID: id},
		CalculatedTotal: total,
		FinalScore:      score,
	}
}

func TestFilterByBudget(t *testing.T) {
	scored := []model.ScoredCandidate{
		scoredCandidate("cheap", 100, 0),
		scoredCandidate("mid", 500, 0),
		scoredCandidate("dear", 900, 0),
	}

	low := 200.0
	high := 600.0

	tests := []struct {
		name    string
		min     *float64
		max     *float64
		wantIDs []string
	}{
		{name: "no bounds keeps everything", wantIDs: []string{"cheap", "mid", "dear"}},
		{name: "lower bound only", min: &low, wantIDs: []string{"mid", "dear"}},
		{name: "upper bound only", max: &high, wantIDs: []string{"cheap", "mid"}},
		{name: "both bounds", min: &low, max: &high, wantIDs: []string{"mid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := service.FilterByBudget(scored, tt.min, tt.max)

			ids := make([]string, len(filtered))
			for i, candidate := range filtered {
				ids[i] = candidate.Story.ID
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterByBudget_BoundsAreInclusive(t *testing.T) {
	scored := []model.ScoredCandidate{scoredCandidate("exact", 500, 0)}

	bound := 500.0

	assert.Len(t, service.FilterByBudget(scored, &bound, nil), 1)
	assert.Len(t, service.FilterByBudget(scored, nil, &bound), 1)
}

func TestSortAndTruncate(t *testing.T) {
	build := func() []model.ScoredCandidate {
		return []model.ScoredCandidate{
			scoredCandidate("a", 500, 80),
			scoredCandidate("b", 100, 120),
			scoredCandidate("c", 900, 40),
		}
	}

	tests := []struct {
		name    string
		sortBy  string
		wantIDs []string
	}{
		{name: "price low to high", sortBy: model.SortPriceLowToHigh, wantIDs: []string{"b", "a", "c"}},
		{name: "price high to low", sortBy: model.SortPriceHighToLow, wantIDs: []string{"c", "a", "b"}},
		{name: "relevance by default", sortBy: "", wantIDs: []string{"b", "a", "c"}},
		{name: "explicit relevance", sortBy: model.SortRelevance, wantIDs: []string{"b", "a", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted := service.SortAndTruncate(build(), tt.sortBy, 10)

			ids := make([]string, len(sorted))
			for i, candidate := range sorted {
				ids[i] = candidate.Story.ID
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSortAndTruncate_TiesKeepPlannerOrder(t *testing.T) {
	scored := []model.ScoredCandidate{
		scoredCandidate("first", 500, 80),
		scoredCandidate("second", 500, 80),
		scoredCandidate("third", 500, 80),
	}

	sorted := service.SortAndTruncate(scored, model.SortPriceLowToHigh, 10)

	assert.Equal(t, "first", sorted[0].Story.ID)
	assert.Equal(t, "second", sorted[1].Story.ID)
	assert.Equal(t, "third", sorted[2].Story.ID)
}

func TestSortAndTruncate_Limit(t *testing.T) {
	scored := make([]model.ScoredCandidate, 30)
	for i := range scored {
		scored[i] = scoredCandidate("story", 100, float64(i))
	}

	assert.Len(t, service.SortAndTruncate(scored, model.SortRelevance, 5), 5)

	// A missing limit falls back to the default page size.
	assert.Len(t, service.SortAndTruncate(scored, model.SortRelevance, 0), 20)
}
