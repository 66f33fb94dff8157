package model

import (
	storyModel "roam/internal/domains/story/model"
)

// Planner stages, in execution order. The stage a candidate came from breaks
// score ties and decides whether it gets full or flat scoring.
const (
	StageProximity = iota + 1
	StageAdminFallback
	StageSameState
)

const (
	SortPriceLowToHigh = "price_low_to_high"
	SortPriceHighToLow = "price_high_to_low"
	SortRelevance      = "relevance"
)

// Candidate is a story the planner produced, before scoring and capacity
// filtering. DistanceKm is nil when either side lacks coordinates.
type Candidate struct {
	Story      storyModel.Story
	DistanceKm *float64
	Stage      int
}

// ScoredCandidate is a candidate that passed eligibility, with its relevance
// score and pricing attached.
type ScoredCandidate struct {
	Story           storyModel.Story
	Stage           int
	FinalScore      float64
	DisplayPrice    float64
	CalculatedTotal float64
	PriceNote       string
}
