package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roam/infras/otel/mocks"
	bookingMocks "roam/internal/domains/booking/mocks"
	bookingModel "roam/internal/domains/booking/model"
	"roam/internal/domains/search/model/dto"
	"roam/internal/domains/search/service"
	storyMocks "roam/internal/domains/story/mocks"
	storyModel "roam/internal/domains/story/model"
)

type searchServiceFixture struct {
	storyRepo   *storyMocks.MockStory
	bookingRepo *bookingMocks.MockBooking
	svc         service.Search
}

func newSearchServiceFixture(ctrl *gomock.Controller) searchServiceFixture {
	mockStoryRepo := storyMocks.NewMockStory(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	planner := service.NewPlanner(mockStoryRepo)

	return searchServiceFixture{
		storyRepo:   mockStoryRepo,
		bookingRepo: mockBookingRepo,
		svc:         service.New(planner, mockBookingRepo, mockOtel),
	}
}

func TestSearchService_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newSearchServiceFixture(ctrl)

	lat := -33.87
	lon := 151.21
	badLat := 95.0

	tests := []struct {
		name string
		req  dto.SearchStoriesRequest
	}{
		{
			name: "latitude without longitude",
			req:  dto.SearchStoriesRequest{Origin: dto.Origin{Lat: &lat}, SearchDate: "2026-01-10", PartySize: 2},
		},
		{
			name: "latitude out of range",
			req:  dto.SearchStoriesRequest{Origin: dto.Origin{Lat: &badLat, Lon: &lon}, SearchDate: "2026-01-10", PartySize: 2},
		},
		{
			name: "unparseable search date",
			req:  dto.SearchStoriesRequest{SearchDate: "10th of Jan", PartySize: 2},
		},
		{
			name: "party size below one",
			req:  dto.SearchStoriesRequest{SearchDate: "2026-01-10", PartySize: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixture.svc.SearchStories(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestSearchService_ProximitySearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newSearchServiceFixture(ctrl)

	lat := -33.87
	lon := 151.21

	story := storyModel.Story{
		ID:               "story-1",
		Title:            "Harbour Kayak Story",
		Status:           storyModel.StatusApproved,
		AvailabilityType: storyModel.AvailabilityYearRound,
		LengthDays:       sql.NullInt64{Int64: 3, Valid: true},
		DailyCapacity:    sql.NullInt64{Int64: 10, Valid: true},
		Latitude:         sql.NullFloat64{Float64: -33.88, Valid: true},
		Longitude:        sql.NullFloat64{Float64: 151.20, Valid: true},
		PricingMode:      storyModel.PricingPerPerson,
		UnitAmount:       100,
	}

	fixture.storyRepo.EXPECT().
		FindNearby(gomock.Any(), lat, lon, 500.0, "", gomock.Any()).
		Return([]storyModel.Story{story}, nil)

	fixture.bookingRepo.EXPECT().
		OverlappingSpans(gomock.Any(), nil, "story-1", gomock.Any(), gomock.Any(), bookingModel.CountConfirmed).
		Return(nil, nil)

	req := dto.SearchStoriesRequest{
		Origin:     dto.Origin{Lat: &lat, Lon: &lon},
		SearchDate: "2026-01-10",
		PartySize:  2,
		Limit:      10,
	}

	res, err := fixture.svc.SearchStories(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "story-1", res.Results[0].StoryID)
	assert.Equal(t, 200.0, res.Results[0].CalculatedTotal)
	assert.Greater(t, res.Results[0].FinalScore, 0.0)
}

func TestSearchService_BudgetFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newSearchServiceFixture(ctrl)

	lat := -33.87
	lon := 151.21

	cheap := storyModel.Story{
		ID:               "cheap",
		Status:           storyModel.StatusApproved,
		AvailabilityType: storyModel.AvailabilityYearRound,
		LengthDays:       sql.NullInt64{Int64: 3, Valid: true},
		DailyCapacity:    sql.NullInt64{Int64: 10, Valid: true},
		PricingMode:      storyModel.PricingPerPerson,
		UnitAmount:       50,
	}

	dear := cheap
	dear.ID = "dear"
	dear.UnitAmount = 500

	fixture.storyRepo.EXPECT().
		FindNearby(gomock.Any(), lat, lon, 500.0, "", gomock.Any()).
		Return([]storyModel.Story{cheap, dear}, nil)

	fixture.bookingRepo.EXPECT().
		OverlappingSpans(gomock.Any(), nil, gomock.Any(), gomock.Any(), gomock.Any(), bookingModel.CountConfirmed).
		Return(nil, nil).
		Times(2)

	budgetMax := 300.0
	req := dto.SearchStoriesRequest{
		Origin:     dto.Origin{Lat: &lat, Lon: &lon},
		SearchDate: "2026-01-10",
		PartySize:  2,
		Filters:    dto.Filters{BudgetMax: &budgetMax},
		Limit:      10,
	}

	res, err := fixture.svc.SearchStories(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "cheap", res.Results[0].StoryID)
}

func TestSearchService_SameStateFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newSearchServiceFixture(ctrl)

	fallbackStory := storyModel.Story{
		ID:               "fallback",
		Title:            "Outback Homestead Stay",
		Status:           storyModel.StatusApproved,
		State:            "NSW",
		AvailabilityType: storyModel.AvailabilityYearRound,
		LengthDays:       sql.NullInt64{Int64: 3, Valid: true},
		DailyCapacity:    sql.NullInt64{Int64: 10, Valid: true},
		PricingMode:      storyModel.PricingPerPerson,
		UnitAmount:       100,
	}

	// The hint stage finds nothing, leaving the result set under the floor.
	fixture.storyRepo.EXPECT().
		FindByAdminHints(gomock.Any(), []string{"NSW"}, "", []string{}, gomock.Any()).
		Return(nil, nil)

	fixture.storyRepo.EXPECT().
		FindByState(gomock.Any(), "NSW", "", []string{}, 20).
		Return([]storyModel.Story{fallbackStory}, nil)

	req := dto.SearchStoriesRequest{
		Origin:     dto.Origin{StateHint: "NSW"},
		SearchDate: "2026-01-10",
		PartySize:  2,
		Limit:      10,
	}

	res, err := fixture.svc.SearchStories(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "fallback", res.Results[0].StoryID)

	// Fallback candidates carry the flat score of the loosest stage.
	assert.InDelta(t, 45, res.Results[0].FinalScore, 0.001)
}

func TestSearchService_OccupancyAffectsHeadroom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newSearchServiceFixture(ctrl)

	lat := -33.87
	lon := 151.21

	story := storyModel.Story{
		ID:               "story-1",
		Status:           storyModel.StatusApproved,
		AvailabilityType: storyModel.AvailabilityYearRound,
		LengthDays:       sql.NullInt64{Int64: 3, Valid: true},
		DailyCapacity:    sql.NullInt64{Int64: 10, Valid: true},
		Latitude:         sql.NullFloat64{Float64: -33.88, Valid: true},
		Longitude:        sql.NullFloat64{Float64: 151.20, Valid: true},
		PricingMode:      storyModel.PricingPerPerson,
		UnitAmount:       100,
	}

	searchDay := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	spans := []bookingModel.CapacitySpan{
		{StartDate: searchDay, EndDate: searchDay, PartySize: 9},
	}

	fixture.storyRepo.EXPECT().
		FindNearby(gomock.Any(), lat, lon, 500.0, "", gomock.Any()).
		Return([]storyModel.Story{story}, nil).
		Times(2)

	req := dto.SearchStoriesRequest{
		Origin:     dto.Origin{Lat: &lat, Lon: &lon},
		SearchDate: "2026-01-10",
		PartySize:  2,
		Limit:      10,
	}

	fixture.bookingRepo.EXPECT().
		OverlappingSpans(gomock.Any(), nil, "story-1", gomock.Any(), gomock.Any(), bookingModel.CountConfirmed).
		Return(nil, nil)

	empty, err := fixture.svc.SearchStories(context.Background(), req)
	assert.NoError(t, err)

	fixture.bookingRepo.EXPECT().
		OverlappingSpans(gomock.Any(), nil, "story-1", gomock.Any(), gomock.Any(), bookingModel.CountConfirmed).
		Return(spans, nil)

	crowded, err := fixture.svc.SearchStories(context.Background(), req)
	assert.NoError(t, err)

	// A nearly full date costs the headroom bonus but not eligibility.
	assert.Equal(t, 1, crowded.Total)
	assert.InDelta(t, 15, empty.Results[0].FinalScore-crowded.Results[0].FinalScore, 0.001)
}
