package service

import (
	"context"
	"fmt"

	"roam/internal/domains/search/model"
	"roam/internal/domains/search/model/dto"
	storyModel "roam/internal/domains/story/model"
	storyRepository "roam/internal/domains/story/repository"
)

const (
	// proximityRadiusKm bounds the first planner stage; anything farther is
	// only reachable through the administrative fallbacks.
	proximityRadiusKm = 500.0

	proximityBudgetFactor = 3
	adminBudgetFactor     = 2
	sameStateCap          = 20
)

// Planner produces candidate stories for a search, staged from the most
// precise signal (coordinates) down to the loosest (same state). A stage that
// yields nothing is empty input to the next stage, not a failure.
type Planner interface {
	Plan(ctx context.Context, origin dto.Origin, availabilityType string, budget int) ([]model.Candidate, error)
	PlanSameState(ctx context.Context, state, availabilityType string, excludeIDs []string) ([]model.Candidate, error)
}

type plannerImpl struct {
	storyRepo storyRepository.Story
}

func NewPlanner(storyRepo storyRepository.Story) Planner {
	return &plannerImpl{storyRepo: storyRepo}
}

func (p *plannerImpl) Plan(ctx context.Context, origin dto.Origin, availabilityType string, budget int) ([]model.Candidate, error) {
	candidates := []model.Candidate{}

	if origin.HasCoordinates() {
		stories, err := p.storyRepo.FindNearby(ctx, *origin.Lat, *origin.Lon, proximityRadiusKm, availabilityType, budget*proximityBudgetFactor)
		if err != nil {
			return nil, fmt.Errorf("proximity stage failed: %w", err)
		}

		for _, story := range stories {
			candidates = append(candidates, toCandidate(story, origin, model.StageProximity))
		}
	}

	if len(candidates) >= budget {
		return candidates, nil
	}

	hints := origin.Hints()
	if len(hints) == 0 {
		return candidates, nil
	}

	stories, err := p.storyRepo.FindByAdminHints(ctx, hints, availabilityType, candidateIDs(candidates), budget*adminBudgetFactor)
	if err != nil {
		return nil, fmt.Errorf("administrative fallback stage failed: %w", err)
	}

	for _, story := range stories {
		candidates = append(candidates, toCandidate(story, origin, model.StageAdminFallback))
	}

	return candidates, nil
}

// PlanSameState is the last-resort stage, run only after scoring and
// filtering left the result set below the floor.
func (p *plannerImpl) PlanSameState(ctx context.Context, state, availabilityType string, excludeIDs []string) ([]model.Candidate, error) {
	stories, err := p.storyRepo.FindByState(ctx, state, availabilityType, excludeIDs, sameStateCap)
	if err != nil {
		return nil, fmt.Errorf("same-state fallback stage failed: %w", err)
	}

	candidates := make([]model.Candidate, len(stories))
	for i, story := range stories {
		candidates[i] = model.Candidate{Story: story, Stage: model.StageSameState}
	}

	return candidates, nil
}

func toCandidate(story storyModel.Story, origin dto.Origin, stage int) model.Candidate {
	candidate := model.Candidate{Story: story, Stage: stage}

	if origin.HasCoordinates() && story.HasCoordinates() {
		distance := HaversineKm(*origin.Lat, *origin.Lon, story.Latitude.Float64, story.Longitude.Float64)
		candidate.DistanceKm = &distance
	}

	return candidate
}

func candidateIDs(candidates []model.Candidate) []string {
	ids := make([]string, len(candidates))
	for i, candidate := range candidates {
		ids[i] = candidate.Story.ID
	}

	return ids
}
