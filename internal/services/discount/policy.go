// Package discount implements the price discount policy. Apply is a pure
// function; money stays in float64 but every result is rounded to cents so
// repeated applications are reproducible.
package discount

import (
	"math"

	"corepay/internal/errors"
)

// Apply charges rate percent off gross and returns the net price. A nil or
// zero rate leaves the price untouched. The net price is rounded to cents
// and never goes below zero.
func Apply(gross float64, rate *float64) (float64, error) {
	if gross <= 0 {
		return 0, errors.ErrInvalidPrice.WithField("price")
	}
	if rate == nil || *rate == 0 {
		return roundCents(gross), nil
	}
	if *rate < 0 || *rate > 100 {
		return 0, errors.ErrInvalidDiscountRate.WithField("rate_discount")
	}

	net := gross * (1 - *rate/100)
	if net < 0 {
		net = 0
	}
	return roundCents(net), nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
