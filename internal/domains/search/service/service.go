package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"roam/infras/otel"
	bookingModel "roam/internal/domains/booking/model"
	bookingRepository "roam/internal/domains/booking/repository"
	"roam/internal/domains/search/model"
	"roam/internal/domains/search/model/dto"
	storyModel "roam/internal/domains/story/model"
	"roam/shared/constant"
	"roam/shared/failure"
)

type Search interface {
	SearchStories(ctx context.Context, req dto.SearchStoriesRequest) (dto.SearchStoriesResponse, error)
}

type serviceImpl struct {
	planner     Planner
	bookingRepo bookingRepository.Booking
	otel        otel.Otel
}

func New(planner Planner, bookingRepo bookingRepository.Booking, otel otel.Otel) Search {
	return &serviceImpl{
		planner:     planner,
		bookingRepo: bookingRepo,
		otel:        otel,
	}
}

// SearchStories plans candidates, scores and filters them, and assembles the
// final ranked page. Occupancy is always read fresh from the booking store;
// it is never cached, so a search right after a booking sees the new state.
func (s *serviceImpl) SearchStories(ctx context.Context, req dto.SearchStoriesRequest) (res dto.SearchStoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".search.SearchStories")
	defer scope.End()
	defer scope.TraceIfError(err)

	searchDate, err := validate(req)
	if err != nil {
		return res, err
	}

	budget := req.Limit
	if budget <= 0 {
		budget = defaultLimit
	}

	candidates, err := s.planner.Plan(ctx, req.Origin, req.Filters.AvailabilityType, budget)
	if err != nil {
		log.Error().Err(err).Msg("failed to plan search candidates")

		return res, fmt.Errorf("failed to plan search candidates: %w", err)
	}

	scored, err := s.scoreAll(ctx, candidates, req, searchDate)
	if err != nil {
		return res, err
	}

	filtered := FilterByBudget(scored, req.Filters.BudgetMin, req.Filters.BudgetMax)

	// Thin results with a state hint available mean the loosest stage is
	// still worth running.
	if len(filtered) < resultFloor && req.Origin.StateHint != "" {
		fallback, fallbackErr := s.planner.PlanSameState(ctx, req.Origin.StateHint, req.Filters.AvailabilityType, candidateIDs(candidates))
		if fallbackErr != nil {
			log.Error().Err(fallbackErr).Msg("failed to plan same-state fallback")

			return res, fmt.Errorf("failed to plan same-state fallback: %w", fallbackErr)
		}

		for _, candidate := range fallback {
			if scoredCandidate, ok := Score(candidate, req, searchDate, 0); ok {
				filtered = append(filtered, scoredCandidate)
			}
		}

		filtered = FilterByBudget(filtered, req.Filters.BudgetMin, req.Filters.BudgetMax)
	}

	res.FromScored(SortAndTruncate(filtered, req.SortBy, req.Limit))

	return res, nil
}

func (s *serviceImpl) scoreAll(ctx context.Context, candidates []model.Candidate, req dto.SearchStoriesRequest, searchDate time.Time) ([]model.ScoredCandidate, error) {
	scored := make([]model.ScoredCandidate, 0, len(candidates))

	for _, candidate := range candidates {
		availability, err := candidate.Story.Availability()
		if err != nil {
			log.Warn().Str("storyID", candidate.Story.ID).Msg("skipping story with malformed availability")

			continue
		}

		if !eligible(availability, searchDate, req.PartySize) {
			continue
		}

		occupancy, err := s.occupancy(ctx, candidate.Story.ID, availability, searchDate)
		if err != nil {
			log.Error().Err(err).Str("storyID", candidate.Story.ID).Msg("failed to read occupancy")

			return nil, fmt.Errorf("failed to read occupancy: %w", err)
		}

		if scoredCandidate, ok := Score(candidate, req, searchDate, occupancy); ok {
			scored = append(scored, scoredCandidate)
		}
	}

	return scored, nil
}

// occupancy reads how many travellers already hold capacity: on the search
// date for year-round stories, pooled across the window for scheduled ones.
// Search uses the broad counting policy; a pending payment still holds the
// slot from a searcher's point of view.
func (s *serviceImpl) occupancy(ctx context.Context, storyID string, availability storyModel.Availability, searchDate time.Time) (int, error) {
	switch shape := availability.(type) {
	case storyModel.Scheduled:
		spans, err := s.bookingRepo.OverlappingSpans(ctx, nil, storyID, shape.WindowStart, shape.WindowEnd, bookingModel.CountConfirmed)
		if err != nil {
			return 0, err //nolint:wrapcheck
		}

		return bookingModel.RangeOccupancy(spans), nil
	default:
		spans, err := s.bookingRepo.OverlappingSpans(ctx, nil, storyID, searchDate, searchDate, bookingModel.CountConfirmed)
		if err != nil {
			return 0, err //nolint:wrapcheck
		}

		return bookingModel.Occupancy(spans, searchDate), nil
	}
}

func validate(req dto.SearchStoriesRequest) (time.Time, error) {
	if (req.Origin.Lat == nil) != (req.Origin.Lon == nil) {
		return time.Time{}, failure.BadRequestFromString("invalid coordinates") // nolint:wrapcheck
	}

	if req.Origin.HasCoordinates() {
		if *req.Origin.Lat < -90 || *req.Origin.Lat > 90 || *req.Origin.Lon < -180 || *req.Origin.Lon > 180 {
			return time.Time{}, failure.BadRequestFromString("invalid coordinates") // nolint:wrapcheck
		}
	}

	searchDate, err := time.Parse(constant.DateOnlyFormat, req.SearchDate)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	if req.PartySize < 1 {
		return time.Time{}, failure.BadRequestFromString("invalid party size") // nolint:wrapcheck
	}

	return searchDate, nil
}
