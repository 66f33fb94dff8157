package model

import "time"

// CountingPolicy selects which bookings hold capacity when occupancy is
// computed. The two flows deliberately disagree on pending payments: a host
// confirming a booking directly holds the slot immediately, while the
// traveller pay-first flow only counts reservations whose payment settled.
type CountingPolicy int

const (
	// CountConfirmed counts every confirmed reservation whose payment has
	// not been rejected. Used by the host-direct booking flow.
	CountConfirmed CountingPolicy = iota

	// CountPaid counts only confirmed reservations with a successful
	// payment. Used by the traveller pay-first booking flow.
	CountPaid
)

// CapacitySpan is the slice of a committed booking the ledger needs: its date
// range and how many travellers it holds.
type CapacitySpan struct {
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	PartySize int       `db:"party_size"`
}

func (s CapacitySpan) covers(day time.Time) bool {
	return !day.Before(s.StartDate) && !day.After(s.EndDate)
}

// Occupancy folds the spans into the number of travellers committed on a
// single date. Spans are fetched once per validation with a single range
// query; the per-date fold happens here rather than as one query per day.
func Occupancy(spans []CapacitySpan, day time.Time) int {
	total := 0

	for _, span := range spans {
		if span.covers(day) {
			total += span.PartySize
		}
	}

	return total
}

// RangeOccupancy sums every span regardless of date. Scheduled stories share
// one capacity pool across the whole window, so any overlapping booking
// consumes from the same pool.
func RangeOccupancy(spans []CapacitySpan) int {
	total := 0

	for _, span := range spans {
		total += span.PartySize
	}

	return total
}
