package service

import (
	"fmt"
	"time"

	"roam/internal/domains/booking/model"
	storyModel "roam/internal/domains/story/model"
)

// ValidateCapacity decides whether a candidate booking fits the story's
// availability shape given the bookings that already hold capacity. It is a
// pure function over the spans the caller fetched; running it inside the
// booking transaction is what makes the answer trustworthy.
func ValidateCapacity(availability storyModel.Availability, spans []model.CapacitySpan, start, end time.Time, partySize int) error {
	switch shape := availability.(type) {
	case storyModel.YearRound:
		return validateYearRound(shape, spans, start, end, partySize)
	case storyModel.Scheduled:
		return validateScheduled(shape, spans, start, end, partySize)
	default:
		return storyModel.ErrMalformedAvailability
	}
}

func validateYearRound(shape storyModel.YearRound, spans []model.CapacitySpan, start, end time.Time, partySize int) error {
	if model.RangeDays(start, end) != shape.LengthDays {
		return &model.DurationMismatchError{
			Reason: fmt.Sprintf("trip length must be exactly %d days", shape.LengthDays),
		}
	}

	// Every date of the range must fit under the daily ceiling independently.
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if model.Occupancy(spans, day)+partySize > shape.DailyCapacity {
			return &model.CapacityExceededError{Ceiling: shape.DailyCapacity, Date: day}
		}
	}

	return nil
}

func validateScheduled(shape storyModel.Scheduled, spans []model.CapacitySpan, start, end time.Time, partySize int) error {
	if !shape.Covers(start) || !shape.Covers(end) {
		return &model.DurationMismatchError{
			Reason: "booking dates must fall entirely within the departure window",
		}
	}

	// One pool for the whole window: any overlapping booking consumes from it.
	if model.RangeOccupancy(spans)+partySize > shape.Capacity {
		return &model.CapacityExceededError{Ceiling: shape.Capacity, Date: start}
	}

	return nil
}
