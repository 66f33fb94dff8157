package model

import (
	"fmt"
	"net/http"
	"time"

	"roam/shared/constant"
	"roam/shared/failure"
)

var (
	ErrStoryNotFound          = failure.NotFound("story not found")
	ErrStoryNotBookable       = failure.BadRequestFromString("story is not open for booking")
	ErrTravellerCountMismatch = failure.BadRequestFromString("traveller manifest does not match party size")
)

// DurationMismatchError rejects a date range that violates the story's
// availability rules: wrong trip length for a year-round story, or a range
// that leaves the departure window of a scheduled one.
type DurationMismatchError struct {
	Reason string
}

func (e *DurationMismatchError) Error() string {
	return e.Reason
}

func (e *DurationMismatchError) Unwrap() error {
	return &failure.Failure{Code: http.StatusBadRequest, Message: e.Reason}
}

// CapacityExceededError carries the ceiling that was hit and the first date
// on which the candidate booking no longer fits.
type CapacityExceededError struct {
	Ceiling int
	Date    time.Time
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity of %d exceeded on %s", e.Ceiling, e.Date.Format(constant.DateOnlyFormat))
}

func (e *CapacityExceededError) Unwrap() error {
	return &failure.Failure{Code: http.StatusConflict, Message: e.Error()}
}

// PricingMismatchError rejects a client-submitted total that disagrees with
// the server-recomputed one beyond the accepted tolerance.
type PricingMismatchError struct {
	ClientTotal float64
	ServerTotal float64
}

func (e *PricingMismatchError) Error() string {
	return fmt.Sprintf("submitted total %.2f does not match computed total %.2f", e.ClientTotal, e.ServerTotal)
}

func (e *PricingMismatchError) Unwrap() error {
	return &failure.Failure{Code: http.StatusBadRequest, Message: e.Error()}
}
