// Package rates converts between annualized discount rates and discount
// factors under periodic or continuous compounding, and derives forward
// discount factors from a spot curve.
//
// All functions are pure: no state, no I/O, safe for concurrent callers.
package rates

import (
	"fmt"
	"math"
)

// RateToFactor converts an annualized discount rate (decimal form, 0.0x for
// x percent) at the given time to maturity (years) into a discount factor,
// the number f such that cashflow * f = present value.
//
// Continuous: exp(-rate*ttm). Periodic n: (1 + rate/n)^(-n*ttm).
// A zero ttm yields factor 1 for any rate.
func RateToFactor(rate, ttm float64, comp Compounding) (float64, error) {
	if err := comp.validate(); err != nil {
		return 0, fmt.Errorf("RateToFactor: %w", err)
	}
	if comp.continuous {
		return math.Exp(-rate * ttm), nil
	}
	n := float64(comp.freq)
	return math.Pow(1+rate/n, -n*ttm), nil
}

// FactorToRate converts a discount factor at the given time to maturity
// (years) into the equivalent annualized rate under the given convention.
// It is the exact inverse of RateToFactor for ttm > 0.
//
// Continuous: ln(1/factor)/ttm. Periodic n: ((1/factor)^(1/(n*ttm)) - 1) * n.
//
// The formulas divide by ttm, so ttm must be strictly positive
// (ErrZeroTTM otherwise), and factor must be strictly positive
// (ErrNonPositiveFactor otherwise). Neither is ever papered over with a
// NaN or Inf result.
func FactorToRate(factor, ttm float64, comp Compounding) (float64, error) {
	if err := comp.validate(); err != nil {
		return 0, fmt.Errorf("FactorToRate: %w", err)
	}
	if ttm == 0 {
		return 0, fmt.Errorf("FactorToRate: %w", ErrZeroTTM)
	}
	if factor <= 0 {
		return 0, fmt.Errorf("FactorToRate: %w: got %v", ErrNonPositiveFactor, factor)
	}
	if comp.continuous {
		return math.Log(1/factor) / ttm, nil
	}
	n := float64(comp.freq)
	return (math.Pow(1/factor, 1/(n*ttm)) - 1) * n, nil
}
