package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roam/internal/domains/search/model"
	"roam/internal/domains/search/model/dto"
	"roam/internal/domains/search/service"
	storyMocks "roam/internal/domains/story/mocks"
	storyModel "roam/internal/domains/story/model"
)

func storyWithCoords(id string, lat, lon float64) storyModel.Story {
	return storyModel.Story{
		ID:        id,
		Status:    storyModel.StatusApproved,
		Latitude:  sql.NullFloat64{Float64: lat, Valid: true},
		Longitude: sql.NullFloat64{Float64: lon, Valid: true},
	}
}

func TestPlanner_Plan_ProximityOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storyMocks.NewMockStory(ctrl)
	planner := service.NewPlanner(mockRepo)

	lat := -33.87
	lon := 151.21
	origin := dto.Origin{Lat: &lat, Lon: &lon}

	mockRepo.EXPECT().
		FindNearby(gomock.Any(), lat, lon, 500.0, "", 6).
		Return([]storyModel.Story{
			storyWithCoords("near", -33.88, 151.20),
			storyWithCoords("far", -34.5, 150.8),
		}, nil)

	candidates, err := planner.Plan(context.Background(), origin, "", 2)

	assert.NoError(t, err)
	assert.Len(t, candidates, 2)

	for _, candidate := range candidates {
		assert.Equal(t, model.StageProximity, candidate.Stage)
		assert.NotNil(t, candidate.DistanceKm)
	}

	assert.Less(t, *candidates[0].DistanceKm, *candidates[1].DistanceKm)
}

func TestPlanner_Plan_FallbackExcludesFoundIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storyMocks.NewMockStory(ctrl)
	planner := service.NewPlanner(mockRepo)

	lat := -33.87
	lon := 151.21
	origin := dto.Origin{Lat: &lat, Lon: &lon, DistrictHint: "Blue Mountains"}

	mockRepo.EXPECT().
		FindNearby(gomock.Any(), lat, lon, 500.0, "", 9).
		Return([]storyModel.Story{storyWithCoords("near", -33.88, 151.20)}, nil)

	mockRepo.EXPECT().
		FindByAdminHints(gomock.Any(), []string{"Blue Mountains"}, "", []string{"near"}, 6).
		Return([]storyModel.Story{{ID: "hinted", Status: storyModel.StatusApproved}}, nil)

	candidates, err := planner.Plan(context.Background(), origin, "", 3)

	assert.NoError(t, err)
	assert.Len(t, candidates, 2)
	assert.Equal(t, model.StageProximity, candidates[0].Stage)
	assert.Equal(t, model.StageAdminFallback, candidates[1].Stage)

	// Hinted stories without coordinates carry no distance.
	assert.Nil(t, candidates[1].DistanceKm)
}

func TestPlanner_Plan_ProximityFillsBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storyMocks.NewMockStory(ctrl)
	planner := service.NewPlanner(mockRepo)

	lat := -33.87
	lon := 151.21
	origin := dto.Origin{Lat: &lat, Lon: &lon, DistrictHint: "Blue Mountains"}

	mockRepo.EXPECT().
		FindNearby(gomock.Any(), lat, lon, 500.0, "", 6).
		Return([]storyModel.Story{
			storyWithCoords("one", -33.88, 151.20),
			storyWithCoords("two", -33.89, 151.22),
		}, nil)

	// Budget met, so the hint stage never runs despite an available hint.
	candidates, err := planner.Plan(context.Background(), origin, "", 2)

	assert.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestPlanner_Plan_NoCoordinatesNoHints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storyMocks.NewMockStory(ctrl)
	planner := service.NewPlanner(mockRepo)

	candidates, err := planner.Plan(context.Background(), dto.Origin{}, "", 20)

	assert.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestPlanner_Plan_ProximityError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storyMocks.NewMockStory(ctrl)
	planner := service.NewPlanner(mockRepo)

	lat := -33.87
	lon := 151.21

	mockRepo.EXPECT().
		FindNearby(gomock.Any(), lat, lon, 500.0, "", 60).
		Return(nil, errors.New("database error"))

	_, err := planner.Plan(context.Background(), dto.Origin{Lat: &lat, Lon: &lon}, "", 20)
	assert.Error(t, err)
}

func TestPlanner_PlanSameState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storyMocks.NewMockStory(ctrl)
	planner := service.NewPlanner(mockRepo)

	mockRepo.EXPECT().
		FindByState(gomock.Any(), "NSW", "year_round", []string{"seen"}, 20).
		Return([]storyModel.Story{{ID: "fallback", Status: storyModel.StatusApproved}}, nil)

	candidates, err := planner.PlanSameState(context.Background(), "NSW", "year_round", []string{"seen"})

	assert.NoError(t, err)
	assert.Len(t, candidates, 1)
	assert.Equal(t, model.StageSameState, candidates[0].Stage)
}
