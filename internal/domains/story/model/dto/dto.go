package dto

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"roam/internal/domains/story/model"
	"roam/shared"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	gModel "roam/shared/model"
	"roam/shared/timezone"
)

type CreateStoryRequest struct {
	Title       string `json:"title"       validate:"required,max=150"`
	Description string `json:"description" validate:"omitempty,max=5000"`

	AvailabilityType  string `json:"availability_type"  validate:"required,oneof=year_round scheduled"`
	LengthDays        int    `json:"length_days"        validate:"required_if=AvailabilityType year_round,omitempty,min=1"`
	DailyCapacity     int    `json:"daily_capacity"     validate:"required_if=AvailabilityType year_round,omitempty,min=1"`
	WindowStart       string `json:"window_start"       validate:"required_if=AvailabilityType scheduled"`
	WindowEnd         string `json:"window_end"         validate:"required_if=AvailabilityType scheduled"`
	ScheduledCapacity int    `json:"scheduled_capacity" validate:"required_if=AvailabilityType scheduled,omitempty,min=1"`

	Latitude  *float64 `json:"latitude"  validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Locality  string   `json:"locality"  validate:"omitempty,max=100"`
	Suburb    string   `json:"suburb"    validate:"omitempty,max=100"`
	Town      string   `json:"town"      validate:"omitempty,max=100"`
	District  string   `json:"district"  validate:"omitempty,max=100"`
	State     string   `json:"state"     validate:"omitempty,max=100"`
	Tags      []string `json:"tags"      validate:"omitempty,dive,max=50"`

	PricingMode string   `json:"pricing_mode" validate:"required,oneof=per_person per_day"`
	UnitAmount  float64  `json:"unit_amount"  validate:"required,gt=0"`
	TotalPrice  *float64 `json:"total_price"  validate:"omitempty,gt=0"`
}

func (c *CreateStoryRequest) ToModel(user string) (model.Story, error) {
	story := model.Story{
		ID:               uuid.NewString(),
		HostID:           user,
		Title:            c.Title,
		Description:      c.Description,
		Status:           model.StatusPendingReview,
		AvailabilityType: c.AvailabilityType,
		Locality:         c.Locality,
		Suburb:           c.Suburb,
		Town:             c.Town,
		District:         c.District,
		State:            c.State,
		Tags:             c.Tags,
		PricingMode:      c.PricingMode,
		UnitAmount:       c.UnitAmount,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	switch c.AvailabilityType {
	case model.AvailabilityYearRound:
		story.LengthDays = sql.NullInt64{Int64: int64(c.LengthDays), Valid: true}
		story.DailyCapacity = sql.NullInt64{Int64: int64(c.DailyCapacity), Valid: true}
	case model.AvailabilityScheduled:
		windowStart, err := time.Parse(constant.DateOnlyFormat, c.WindowStart)
		if err != nil {
			return model.Story{}, err
		}

		windowEnd, err := time.Parse(constant.DateOnlyFormat, c.WindowEnd)
		if err != nil {
			return model.Story{}, err
		}

		story.WindowStart = sql.NullTime{Time: windowStart, Valid: true}
		story.WindowEnd = sql.NullTime{Time: windowEnd, Valid: true}
		story.ScheduledCapacity = sql.NullInt64{Int64: int64(c.ScheduledCapacity), Valid: true}
	}

	if c.Latitude != nil && c.Longitude != nil {
		story.Latitude = sql.NullFloat64{Float64: *c.Latitude, Valid: true}
		story.Longitude = sql.NullFloat64{Float64: *c.Longitude, Valid: true}
	}

	if c.TotalPrice != nil {
		story.TotalPrice = sql.NullFloat64{Float64: *c.TotalPrice, Valid: true}
	}

	return story, nil
}

type UpdateStoryRequest struct {
	Title       string   `db:"title"       json:"title"       validate:"omitempty,max=150"`
	Description string   `db:"description" json:"description" validate:"omitempty,max=5000"`
	Locality    string   `db:"locality"    json:"locality"    validate:"omitempty,max=100"`
	Suburb      string   `db:"suburb"      json:"suburb"      validate:"omitempty,max=100"`
	Town        string   `db:"town"        json:"town"        validate:"omitempty,max=100"`
	District    string   `db:"district"    json:"district"    validate:"omitempty,max=100"`
	State       string   `db:"state"       json:"state"       validate:"omitempty,max=100"`
	UnitAmount  float64  `db:"unit_amount" json:"unit_amount" validate:"omitempty,gt=0"`
	TotalPrice  *float64 `db:"total_price" json:"total_price" validate:"omitempty,gt=0"`
}

type UpdateStoryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected pending_review"`
}

type StoryResponse struct {
	ID          string `json:"id"`
	HostID      string `json:"host_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`

	AvailabilityType  string `json:"availability_type"`
	LengthDays        int    `json:"length_days,omitempty"`
	DailyCapacity     int    `json:"daily_capacity,omitempty"`
	WindowStart       string `json:"window_start,omitempty"`
	WindowEnd         string `json:"window_end,omitempty"`
	ScheduledCapacity int    `json:"scheduled_capacity,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Locality  string   `json:"locality,omitempty"`
	Suburb    string   `json:"suburb,omitempty"`
	Town      string   `json:"town,omitempty"`
	District  string   `json:"district,omitempty"`
	State     string   `json:"state,omitempty"`
	Tags      []string `json:"tags,omitempty"`

	PricingMode string   `json:"pricing_mode"`
	UnitAmount  float64  `json:"unit_amount"`
	TotalPrice  *float64 `json:"total_price,omitempty"`

	gDto.Metadata
}

func (r *StoryResponse) FromModel(story model.Story) {
	r.ID = story.ID
	r.HostID = story.HostID
	r.Title = story.Title
	r.Description = story.Description
	r.Status = story.Status
	r.AvailabilityType = story.AvailabilityType

	if story.LengthDays.Valid {
		r.LengthDays = int(story.LengthDays.Int64)
	}

	if story.DailyCapacity.Valid {
		r.DailyCapacity = int(story.DailyCapacity.Int64)
	}

	if story.WindowStart.Valid {
		r.WindowStart = story.WindowStart.Time.Format(constant.DateOnlyFormat)
	}

	if story.WindowEnd.Valid {
		r.WindowEnd = story.WindowEnd.Time.Format(constant.DateOnlyFormat)
	}

	if story.ScheduledCapacity.Valid {
		r.ScheduledCapacity = int(story.ScheduledCapacity.Int64)
	}

	if story.HasCoordinates() {
		lat := story.Latitude.Float64
		lon := story.Longitude.Float64
		r.Latitude = &lat
		r.Longitude = &lon
	}

	r.Locality = story.Locality
	r.Suburb = story.Suburb
	r.Town = story.Town
	r.District = story.District
	r.State = story.State
	r.Tags = story.Tags
	r.PricingMode = story.PricingMode
	r.UnitAmount = story.UnitAmount

	if story.TotalPrice.Valid {
		total := story.TotalPrice.Float64
		r.TotalPrice = &total
	}

	r.Metadata.FromModel(story.Metadata)
}

type GetStoriesResponse struct {
	Stories   []StoryResponse `json:"stories"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStoriesResponse) FromModels(models []model.Story, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Stories = make([]StoryResponse, len(models))
	for i, mod := range models {
		r.Stories[i].FromModel(mod)
	}
}
