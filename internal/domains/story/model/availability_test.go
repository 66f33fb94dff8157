package model_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"roam/internal/domains/story/model"
)

func TestStory_Availability_YearRound(t *testing.T) {
	tests := []struct {
		name          string
		lengthDays    sql.NullInt64
		dailyCapacity sql.NullInt64
		wantErr       bool
	}{
		{
			name:          "valid shape",
			lengthDays:    sql.NullInt64{Int64: 3, Valid: true},
			dailyCapacity: sql.NullInt64{Int64: 10, Valid: true},
		},
		{
			name:          "missing length",
			dailyCapacity: sql.NullInt64{Int64: 10, Valid: true},
			wantErr:       true,
		},
		{
			name:       "missing capacity",
			lengthDays: sql.NullInt64{Int64: 3, Valid: true},
			wantErr:    true,
		},
		{
			name:          "capacity below one",
			lengthDays:    sql.NullInt64{Int64: 3, Valid: true},
			dailyCapacity: sql.NullInt64{Int64: 0, Valid: true},
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			story := model.Story{
				AvailabilityType: model.AvailabilityYearRound,
				LengthDays:       tt.lengthDays,
				DailyCapacity:    tt.dailyCapacity,
			}

			availability, err := story.Availability()

			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrMalformedAvailability)

				return
			}

			assert.NoError(t, err)

			shape, ok := availability.(model.YearRound)
			assert.True(t, ok)
			assert.Equal(t, int(tt.lengthDays.Int64), shape.LengthDays)
			assert.Equal(t, int(tt.dailyCapacity.Int64), shape.Ceiling())
		})
	}
}

func TestStory_Availability_Scheduled(t *testing.T) {
	windowStart := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    sql.NullTime
		end      sql.NullTime
		capacity sql.NullInt64
		wantErr  bool
	}{
		{
			name:     "valid shape",
			start:    sql.NullTime{Time: windowStart, Valid: true},
			end:      sql.NullTime{Time: windowEnd, Valid: true},
			capacity: sql.NullInt64{Int64: 12, Valid: true},
		},
		{
			name:     "missing window start",
			end:      sql.NullTime{Time: windowEnd, Valid: true},
			capacity: sql.NullInt64{Int64: 12, Valid: true},
			wantErr:  true,
		},
		{
			name:     "window end before window start",
			start:    sql.NullTime{Time: windowEnd, Valid: true},
			end:      sql.NullTime{Time: windowStart, Valid: true},
			capacity: sql.NullInt64{Int64: 12, Valid: true},
			wantErr:  true,
		},
		{
			name:    "missing capacity",
			start:   sql.NullTime{Time: windowStart, Valid: true},
			end:     sql.NullTime{Time: windowEnd, Valid: true},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			story := model.Story{
				AvailabilityType:  model.AvailabilityScheduled,
				WindowStart:       tt.start,
				WindowEnd:         tt.end,
				ScheduledCapacity: tt.capacity,
			}

			availability, err := story.Availability()

			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrMalformedAvailability)

				return
			}

			assert.NoError(t, err)

			shape, ok := availability.(model.Scheduled)
			assert.True(t, ok)
			assert.True(t, shape.Covers(windowStart))
			assert.True(t, shape.Covers(windowEnd))
			assert.False(t, shape.Covers(windowEnd.AddDate(0, 0, 1)))
		})
	}
}

func TestStory_Availability_UnknownType(t *testing.T) {
	story := model.Story{AvailabilityType: "on_demand"}

	_, err := story.Availability()
	assert.ErrorIs(t, err, model.ErrMalformedAvailability)
}

func TestStory_Bookable(t *testing.T) {
	assert.True(t, (&model.Story{Status: model.StatusApproved}).Bookable())
	assert.False(t, (&model.Story{Status: model.StatusDraft}).Bookable())
	assert.False(t, (&model.Story{Status: model.StatusPendingReview}).Bookable())
	assert.False(t, (&model.Story{Status: model.StatusRejected}).Bookable())
}
