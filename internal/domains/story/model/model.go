package model

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"roam/shared/model"
)

var ErrMalformedPricing = errors.New("story pricing fields do not match pricing mode")

const (
	TableName  = "stories"
	EntityName = "story"

	FieldID               = "id"
	FieldHostID           = "host_id"
	FieldTitle            = "title"
	FieldDescription      = "description"
	FieldStatus           = "status"
	FieldAvailabilityType = "availability_type"
	FieldLengthDays       = "length_days"
	FieldDailyCapacity    = "daily_capacity"
	FieldWindowStart      = "window_start"
	FieldWindowEnd        = "window_end"
	FieldScheduledCap     = "scheduled_capacity"
	FieldLatitude         = "latitude"
	FieldLongitude        = "longitude"
	FieldLocality         = "locality"
	FieldSuburb           = "suburb"
	FieldTown             = "town"
	FieldDistrict         = "district"
	FieldState            = "state"
	FieldTags             = "tags"
	FieldPricingMode      = "pricing_mode"
	FieldUnitAmount       = "unit_amount"
	FieldTotalPrice       = "total_price"
)

const (
	StatusDraft         = "draft"
	StatusPendingReview = "pending_review"
	StatusApproved      = "approved"
	StatusRejected      = "rejected"
)

const (
	PricingPerPerson = "per_person"
	PricingPerDay    = "per_day"
)

type Story struct {
	ID          string `db:"id"`
	HostID      string `db:"host_id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Status      string `db:"status"`

	AvailabilityType  string        `db:"availability_type"`
	LengthDays        sql.NullInt64 `db:"length_days"`
	DailyCapacity     sql.NullInt64 `db:"daily_capacity"`
	WindowStart       sql.NullTime  `db:"window_start"`
	WindowEnd         sql.NullTime  `db:"window_end"`
	ScheduledCapacity sql.NullInt64 `db:"scheduled_capacity"`

	Latitude  sql.NullFloat64 `db:"latitude"`
	Longitude sql.NullFloat64 `db:"longitude"`
	Locality  string          `db:"locality"`
	Suburb    string          `db:"suburb"`
	Town      string          `db:"town"`
	District  string          `db:"district"`
	State     string          `db:"state"`
	Tags      pq.StringArray  `db:"tags"`

	PricingMode string          `db:"pricing_mode"`
	UnitAmount  float64         `db:"unit_amount"`
	TotalPrice  sql.NullFloat64 `db:"total_price"`

	model.Metadata
}

// Bookable reports whether the story has passed review and may accept
// bookings or appear in search results.
func (s *Story) Bookable() bool {
	return s.Status == StatusApproved
}

func (s *Story) HasCoordinates() bool {
	return s.Latitude.Valid && s.Longitude.Valid
}
