package dto

import (
	"roam/internal/domains/search/model"
)

type Origin struct {
	Lat *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lon *float64 `json:"lon" validate:"omitempty,gte=-180,lte=180"`

	StateHint    string `json:"state_hint"    validate:"omitempty,max=100"`
	DistrictHint string `json:"district_hint" validate:"omitempty,max=100"`
	NameHint     string `json:"name_hint"     validate:"omitempty,max=100"`
	SuburbHint   string `json:"suburb_hint"   validate:"omitempty,max=100"`
	TownHint     string `json:"town_hint"     validate:"omitempty,max=100"`
}

// HasCoordinates reports whether both halves of the origin point are present.
func (o *Origin) HasCoordinates() bool {
	return o.Lat != nil && o.Lon != nil
}

// Hints collects the non-empty administrative hints for the planner's
// fallback stage.
func (o *Origin) Hints() []string {
	hints := []string{}

	for _, hint := range []string{o.DistrictHint, o.StateHint, o.NameHint, o.SuburbHint, o.TownHint} {
		if hint != "" {
			hints = append(hints, hint)
		}
	}

	return hints
}

type Filters struct {
	Tags             []string `json:"tags"              validate:"omitempty,dive,max=50"`
	AvailabilityType string   `json:"availability_type" validate:"omitempty,oneof=year_round scheduled"`
	BudgetMin        *float64 `json:"budget_min"        validate:"omitempty,gte=0"`
	BudgetMax        *float64 `json:"budget_max"        validate:"omitempty,gte=0"`
}

type SearchStoriesRequest struct {
	Origin     Origin  `json:"origin"`
	SearchDate string  `json:"search_date" validate:"required"`
	PartySize  int     `json:"party_size"  validate:"required,min=1"`
	Filters    Filters `json:"filters"`
	SortBy     string  `json:"sort_by"     validate:"omitempty,oneof=price_low_to_high price_high_to_low relevance"`
	Limit      int     `json:"limit"       validate:"omitempty,min=1,max=100"`
}

type SearchResult struct {
	StoryID         string   `json:"story_id"`
	Title           string   `json:"title"`
	Tags            []string `json:"tags"`
	PricingMode     string   `json:"pricing_mode"`
	DisplayPrice    float64  `json:"display_price"`
	CalculatedTotal float64  `json:"calculated_total"`
	FinalScore      float64  `json:"final_score"`
	PriceNote       string   `json:"price_note"`
}

type SearchStoriesResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}

func (r *SearchStoriesResponse) FromScored(scored []model.ScoredCandidate) {
	r.Results = make([]SearchResult, len(scored))
	for i, candidate := range scored {
		r.Results[i] = SearchResult{
			StoryID:         candidate.Story.ID,
			Title:           candidate.Story.Title,
			Tags:            candidate.Story.Tags,
			PricingMode:     candidate.Story.PricingMode,
			DisplayPrice:    candidate.DisplayPrice,
			CalculatedTotal: candidate.CalculatedTotal,
			FinalScore:      candidate.FinalScore,
			PriceNote:       candidate.PriceNote,
		}
	}

	r.Total = len(r.Results)
}
