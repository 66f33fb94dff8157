package dto

import (
	"time"

	"github.com/google/uuid"

	"roam/internal/domains/booking/model"
	"roam/shared"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	gModel "roam/shared/model"
	"roam/shared/timezone"
)

type TravellerRequest struct {
	FullName string `json:"full_name" validate:"required,max=150"`
	Email    string `json:"email"     validate:"omitempty,email,max=100"`
	Phone    string `json:"phone"     validate:"omitempty,max=20"`
}

type CreateBookingRequest struct {
	StoryID    string             `json:"story_id"   validate:"required"`
	StartDate  string             `json:"start_date" validate:"required"`
	EndDate    string             `json:"end_date"   validate:"required"`
	PartySize  int                `json:"party_size" validate:"required,min=1"`
	Travellers []TravellerRequest `json:"travellers" validate:"required,min=1,dive"`

	// ClientPricing is the total the caller believes it will pay. It is
	// checked against the server-side quote, never persisted.
	ClientPricing *float64 `json:"client_pricing" validate:"omitempty,gte=0"`
}

// ParseRange parses and orders the requested dates.
func (c *CreateBookingRequest) ParseRange() (start, end time.Time, err error) {
	start, err = time.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return start, end, err
	}

	end, err = time.Parse(constant.DateOnlyFormat, c.EndDate)
	if err != nil {
		return start, end, err
	}

	return start, end, nil
}

func (c *CreateBookingRequest) ToModel(user string, start, end time.Time, base, fee, total float64, paymentState string) model.Booking {
	return model.Booking{
		ID:                uuid.NewString(),
		StoryID:           c.StoryID,
		RequesterID:       user,
		StartDate:         start,
		EndDate:           end,
		PartySize:         c.PartySize,
		ConfirmationState: model.ConfirmationConfirmed,
		PaymentState:      paymentState,
		BaseAmount:        base,
		ServiceFee:        fee,
		TotalAmount:       total,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func (c *CreateBookingRequest) ToTravellerModels(bookingID string) []model.Traveller {
	travellers := make([]model.Traveller, len(c.Travellers))
	for i, traveller := range c.Travellers {
		travellers[i] = model.Traveller{
			ID:        uuid.NewString(),
			BookingID: bookingID,
			FullName:  traveller.FullName,
			Email:     traveller.Email,
			Phone:     traveller.Phone,
		}
	}

	return travellers
}

type UpdatePaymentRequest struct {
	PaymentState string `json:"payment_state" validate:"required,oneof=success rejected"`
}

type TravellerResponse struct {
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type PricingResponse struct {
	BaseAmount  float64 `json:"base_amount"`
	ServiceFee  float64 `json:"service_fee"`
	TotalAmount float64 `json:"total_amount"`
}

type BookingResponse struct {
	ID                string              `json:"id"`
	StoryID           string              `json:"story_id"`
	RequesterID       string              `json:"requester_id"`
	StartDate         string              `json:"start_date"`
	EndDate           string              `json:"end_date"`
	PartySize         int                 `json:"party_size"`
	ConfirmationState string              `json:"confirmation_state"`
	PaymentState      string              `json:"payment_state"`
	Pricing           PricingResponse     `json:"pricing"`
	Travellers        []TravellerResponse `json:"travellers,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.StoryID = booking.StoryID
	r.RequesterID = booking.RequesterID
	r.StartDate = booking.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = booking.EndDate.Format(constant.DateOnlyFormat)
	r.PartySize = booking.PartySize
	r.ConfirmationState = booking.ConfirmationState
	r.PaymentState = booking.PaymentState
	r.Pricing = PricingResponse{
		BaseAmount:  booking.BaseAmount,
		ServiceFee:  booking.ServiceFee,
		TotalAmount: booking.TotalAmount,
	}
	r.Metadata.FromModel(booking.Metadata)
}

func (r *BookingResponse) WithTravellers(travellers []model.Traveller) {
	r.Travellers = make([]TravellerResponse, len(travellers))
	for i, traveller := range travellers {
		r.Travellers[i] = TravellerResponse{
			FullName: traveller.FullName,
			Email:    traveller.Email,
			Phone:    traveller.Phone,
		}
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingCreatedEvent is the payload published to Kafka after a booking
// commits.
type BookingCreatedEvent struct {
	BookingID   string  `json:"booking_id"`
	StoryID     string  `json:"story_id"`
	RequesterID string  `json:"requester_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	PartySize   int     `json:"party_size"`
	TotalAmount float64 `json:"total_amount"`
	Flow        string  `json:"flow"`
}
