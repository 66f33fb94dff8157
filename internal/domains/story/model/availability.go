package model

import (
	"errors"
	"time"
)

const (
	AvailabilityYearRound = "year_round"
	AvailabilityScheduled = "scheduled"
)

var ErrMalformedAvailability = errors.New("story availability fields do not match availability type")

// Availability is the story's capacity shape. Exactly one concrete variant
// applies to a story, selected by its availability type, so capacity checks
// cannot read fields belonging to the other shape.
type Availability interface {
	// Ceiling is the maximum occupancy the shape permits: per calendar date
	// for YearRound, pooled across the whole window for Scheduled.
	Ceiling() int
}

// YearRound is bookable on any date, for a fixed trip length, with a fixed
// number of travellers allowed per calendar date.
type YearRound struct {
	LengthDays    int
	DailyCapacity int
}

func (a YearRound) Ceiling() int { return a.DailyCapacity }

// Scheduled is bookable only inside a single departure window. Capacity is a
// single pool shared by every booking in the window, not a per-date limit.
type Scheduled struct {
	WindowStart time.Time
	WindowEnd   time.Time
	Capacity    int
}

func (a Scheduled) Ceiling() int { return a.Capacity }

// Covers reports whether day falls inside the departure window, inclusive on
// both ends.
func (a Scheduled) Covers(day time.Time) bool {
	return !day.Before(a.WindowStart) && !day.After(a.WindowEnd)
}

// Availability decodes the row's loose nullable columns into the tagged
// variant for the story's availability type. Rows populating the wrong shape
// (or a capacity below 1) fail with ErrMalformedAvailability.
func (s *Story) Availability() (Availability, error) {
	switch s.AvailabilityType {
	case AvailabilityYearRound:
		if !s.LengthDays.Valid || !s.DailyCapacity.Valid {
			return nil, ErrMalformedAvailability
		}

		if s.LengthDays.Int64 < 1 || s.DailyCapacity.Int64 < 1 {
			return nil, ErrMalformedAvailability
		}

		return YearRound{
			LengthDays:    int(s.LengthDays.Int64),
			DailyCapacity: int(s.DailyCapacity.Int64),
		}, nil
	case AvailabilityScheduled:
		if !s.WindowStart.Valid || !s.WindowEnd.Valid || !s.ScheduledCapacity.Valid {
			return nil, ErrMalformedAvailability
		}

		if s.ScheduledCapacity.Int64 < 1 || s.WindowEnd.Time.Before(s.WindowStart.Time) {
			return nil, ErrMalformedAvailability
		}

		return Scheduled{
			WindowStart: s.WindowStart.Time,
			WindowEnd:   s.WindowEnd.Time,
			Capacity:    int(s.ScheduledCapacity.Int64),
		}, nil
	default:
		return nil, ErrMalformedAvailability
	}
}
