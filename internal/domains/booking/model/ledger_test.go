package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"roam/internal/domains/booking/model"
	"roam/shared/constant"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(constant.DateOnlyFormat, value)
	assert.NoError(t, err)

	return parsed
}

func TestOccupancy(t *testing.T) {
	spans := []model.CapacitySpan{
		{StartDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), PartySize: 4},
		{StartDate: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), PartySize: 2},
	}

	tests := []struct {
		name string
		day  string
		want int
	}{
		{name: "before any span", day: "2026-01-09", want: 0},
		{name: "first span only", day: "2026-01-10", want: 4},
		{name: "overlap of both spans", day: "2026-01-12", want: 6},
		{name: "second span only", day: "2026-01-14", want: 2},
		{name: "after all spans", day: "2026-01-15", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Occupancy(spans, date(t, tt.day)))
		})
	}
}

func TestOccupancy_NoSpans(t *testing.T) {
	assert.Equal(t, 0, model.Occupancy(nil, date(t, "2026-01-10")))
}

func TestRangeOccupancy(t *testing.T) {
	spans := []model.CapacitySpan{
		{PartySize: 4},
		{PartySize: 2},
		{PartySize: 1},
	}

	assert.Equal(t, 7, model.RangeOccupancy(spans))
	assert.Equal(t, 0, model.RangeOccupancy(nil))
}

func TestRangeDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "single day", start: "2026-01-10", end: "2026-01-10", want: 1},
		{name: "three days inclusive", start: "2026-01-10", end: "2026-01-12", want: 3},
		{name: "across month boundary", start: "2026-01-30", end: "2026-02-02", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.RangeDays(date(t, tt.start), date(t, tt.end)))
		})
	}
}
