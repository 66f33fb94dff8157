package service

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"roam/internal/domains/search/model"
	"roam/internal/domains/search/model/dto"
	storyModel "roam/internal/domains/story/model"
)

const (
	earthRadiusKm = 6371.0

	scoreTextMatch         = 100.0
	scoreDistrictMatch     = 30.0
	scoreStateMatch        = 20.0
	scorePerSharedTag      = 10.0
	scoreDistanceCeiling   = 100.0
	scoreDistancePerKm     = 2.0
	scoreNoCoordsFallback  = 30.0
	scoreAvailabilityBonus = 25.0
	scoreHeadroomBonus     = 15.0
	scoreSameStateFlat     = 20.0

	// headroomFactor is how much spare capacity, relative to the party size,
	// earns the headroom bonus.
	headroomFactor = 1.2
)

// HaversineKm is the great-circle distance between two coordinate pairs.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Score runs eligibility and relevance scoring for one candidate. The
// occupancy argument is the number of travellers already committed on the
// search date (or across the window for scheduled stories); it only affects
// the headroom bonus, never eligibility.
func Score(candidate model.Candidate, req dto.SearchStoriesRequest, searchDate time.Time, occupancy int) (model.ScoredCandidate, bool) {
	scored := model.ScoredCandidate{Story: candidate.Story, Stage: candidate.Stage}

	availability, err := candidate.Story.Availability()
	if err != nil {
		return scored, false
	}

	if !eligible(availability, searchDate, req.PartySize) {
		return scored, false
	}

	displayPrice, calculatedTotal, ok := price(candidate.Story, req.PartySize)
	if !ok {
		return scored, false
	}

	scored.DisplayPrice = displayPrice
	scored.CalculatedTotal = calculatedTotal
	scored.PriceNote = priceNote(candidate.Story.PricingMode, searchDate)

	// Same-state fallback candidates skip the relevance formula.
	if candidate.Stage == model.StageSameState {
		scored.FinalScore = scoreSameStateFlat + scoreAvailabilityBonus

		return scored, true
	}

	score := textMatchScore(candidate.Story, req.Origin)

	boundaryMatched := false

	if equalsFold(candidate.Story.District, req.Origin.DistrictHint) {
		score += scoreDistrictMatch
		boundaryMatched = true
	}

	if equalsFold(candidate.Story.State, req.Origin.StateHint) {
		score += scoreStateMatch
		boundaryMatched = true
	}

	score += tagMatchScore(candidate.Story.Tags, req.Filters.Tags)
	score += distanceScore(candidate.DistanceKm, boundaryMatched)
	score += scoreAvailabilityBonus

	if float64(availability.Ceiling()-occupancy) >= headroomFactor*float64(req.PartySize) {
		score += scoreHeadroomBonus
	}

	scored.FinalScore = score

	return scored, true
}

func eligible(availability storyModel.Availability, searchDate time.Time, partySize int) bool {
	switch shape := availability.(type) {
	case storyModel.YearRound:
		return shape.DailyCapacity >= partySize
	case storyModel.Scheduled:
		return shape.Covers(searchDate) && shape.Capacity >= partySize
	default:
		return false
	}
}

func textMatchScore(story storyModel.Story, origin dto.Origin) float64 {
	score := 0.0

	if equalsFold(story.Locality, origin.NameHint) {
		score += scoreTextMatch
	}

	if equalsFold(story.Suburb, origin.SuburbHint) {
		score += scoreTextMatch
	}

	if equalsFold(story.Town, origin.TownHint) {
		score += scoreTextMatch
	}

	return score
}

func tagMatchScore(storyTags []string, requestedTags []string) float64 {
	score := 0.0

	for _, tag := range storyTags {
		if slices.ContainsFunc(requestedTags, func(requested string) bool {
			return strings.EqualFold(requested, tag)
		}) {
			score += scorePerSharedTag
		}
	}

	return score
}

// distanceScore decays linearly with distance. Without coordinates the
// candidate gets a flat substitute, but only when an administrative boundary
// already tied it to the searched area.
func distanceScore(distanceKm *float64, boundaryMatched bool) float64 {
	if distanceKm == nil {
		if boundaryMatched {
			return scoreNoCoordsFallback
		}

		return 0
	}

	return math.Max(0, scoreDistanceCeiling-*distanceKm*scoreDistancePerKm)
}

func price(story storyModel.Story, partySize int) (displayPrice, calculatedTotal float64, ok bool) {
	switch story.PricingMode {
	case storyModel.PricingPerPerson:
		return story.UnitAmount, story.UnitAmount * float64(partySize), true
	case storyModel.PricingPerDay:
		if !story.TotalPrice.Valid {
			return 0, 0, false
		}

		return story.TotalPrice.Float64, story.TotalPrice.Float64, true
	default:
		return 0, 0, false
	}
}

func priceNote(pricingMode string, searchDate time.Time) string {
	month := searchDate.Format("January 2006")

	if pricingMode == storyModel.PricingPerPerson {
		return fmt.Sprintf("Per-person estimate for %s", month)
	}

	return fmt.Sprintf("Whole-trip price for %s", month)
}

func equalsFold(value, hint string) bool {
	return hint != "" && strings.EqualFold(value, hint)
}
