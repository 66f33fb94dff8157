package model

import (
	"time"

	"roam/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                = "id"
	FieldStoryID           = "story_id"
	FieldRequesterID       = "requester_id"
	FieldStartDate         = "start_date"
	FieldEndDate           = "end_date"
	FieldPartySize         = "party_size"
	FieldConfirmationState = "confirmation_state"
	FieldPaymentState      = "payment_state"
	FieldBaseAmount        = "base_amount"
	FieldServiceFee        = "service_fee"
	FieldTotalAmount       = "total_amount"
)

const (
	TravellerTableName  = "booking_travellers"
	TravellerEntityName = "traveller"

	FieldBookingID = "booking_id"
)

const (
	ConfirmationConfirmed = "confirmed"
	ConfirmationCancelled = "cancelled"
)

const (
	PaymentPending  = "pending"
	PaymentSuccess  = "success"
	PaymentRejected = "rejected"
)

type Booking struct {
	ID                string    `db:"id"`
	StoryID           string    `db:"story_id"`
	RequesterID       string    `db:"requester_id"`
	StartDate         time.Time `db:"start_date"`
	EndDate           time.Time `db:"end_date"`
	PartySize         int       `db:"party_size"`
	ConfirmationState string    `db:"confirmation_state"`
	PaymentState      string    `db:"payment_state"`
	BaseAmount        float64   `db:"base_amount"`
	ServiceFee        float64   `db:"service_fee"`
	TotalAmount       float64   `db:"total_amount"`
	model.Metadata
}

type Traveller struct {
	ID        string `db:"id"`
	BookingID string `db:"booking_id"`
	FullName  string `db:"full_name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
}

// RangeDays is the inclusive length of a date range in whole days.
func RangeDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
