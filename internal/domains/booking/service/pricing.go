package service

import (
	"math"

	"roam/config"
	"roam/internal/domains/booking/model"
	storyModel "roam/internal/domains/story/model"
)

// pricingTolerance is the absolute difference allowed between the client's
// submitted total and the server-recomputed one before the attempt is
// rejected. The server total is always the one persisted.
const pricingTolerance = 0.01

// FeePolicy turns a story's base amount into the platform fee charged on top.
type FeePolicy interface {
	Fee(base float64) float64
}

type percentFlatFee struct {
	percent float64
	flat    float64
}

func NewFeePolicy(cfg *config.Config) FeePolicy {
	return &percentFlatFee{
		percent: cfg.Fee.ServicePercent,
		flat:    cfg.Fee.Flat,
	}
}

func (p *percentFlatFee) Fee(base float64) float64 {
	return base*p.percent/100 + p.flat
}

// Quote recomputes the authoritative pricing breakdown from the story's
// current price. Per-person stories multiply the unit amount by the party
// size; per-day stories carry a precomputed whole-trip price that does not
// scale with the party.
func Quote(story storyModel.Story, partySize int, policy FeePolicy) (base, fee, total float64, err error) {
	switch story.PricingMode {
	case storyModel.PricingPerPerson:
		base = story.UnitAmount * float64(partySize)
	case storyModel.PricingPerDay:
		if !story.TotalPrice.Valid {
			return 0, 0, 0, storyModel.ErrMalformedPricing
		}

		base = story.TotalPrice.Float64
	default:
		return 0, 0, 0, storyModel.ErrMalformedPricing
	}

	fee = policy.Fee(base)

	return base, fee, base + fee, nil
}

// VerifyClientTotal compares the caller-submitted total against the server
// quote. A nil client total skips the check; the quote is used as-is.
func VerifyClientTotal(clientTotal *float64, serverTotal float64) error {
	if clientTotal == nil {
		return nil
	}

	if math.Abs(*clientTotal-serverTotal) > pricingTolerance {
		return &model.PricingMismatchError{ClientTotal: *clientTotal, ServerTotal: serverTotal}
	}

	return nil
}
