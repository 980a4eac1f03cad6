package curve

import (
	"errors"
	"fmt"

	"github.com/meenmo/ratecurve/rates"
)

var (
	// ErrUnknownRepresentation is returned when the input representation is
	// not one of DR, DF, FR, FF.
	ErrUnknownRepresentation = errors.New("unknown curve representation")
	// ErrEmptyCurve is returned when Build is given no maturities.
	ErrEmptyCurve = errors.New("curve has no maturities")
	// ErrMaturitiesNotIncreasing is returned when maturities are not
	// non-negative and strictly increasing.
	ErrMaturitiesNotIncreasing = errors.New("maturities must be non-negative and strictly increasing")
)

// Build assembles the full four-representation curve from a single input
// representation.
//
// values[i] is the input quantity at ttms[i]. For spot representations
// (DR, DF) values[i] applies from time zero to ttms[i]. For interval
// representations (FR, FF) values[i] applies over (ttms[i-1], ttms[i]],
// anchored at time zero for i = 0; interval rates are annualized over
// their own interval length.
//
// spot is the compounding convention of the DiscountRate column, forward
// that of the ForwardRate column. The output ForwardFactor/ForwardRate
// columns are forward looking (node i covers [ttms[i], ttms[i+1])) with
// nil at the terminal node, whichever representation initiated the build.
func Build(input Representation, values, ttms []float64, spot, forward rates.Compounding) (*Curve, error) {
	if err := validate(values, ttms); err != nil {
		return nil, fmt.Errorf("curve.Build: %w", err)
	}

	dfs, err := spotFactors(input, values, ttms, spot, forward)
	if err != nil {
		return nil, fmt.Errorf("curve.Build: %w", err)
	}

	// Spot rate column. For DR-initiated builds the input already is the
	// column; re-deriving it would only add round-trip noise.
	drs := make([]float64, len(dfs))
	if input == DiscountRate {
		copy(drs, values)
	} else {
		for i, df := range dfs {
			r, err := rates.FactorToRate(df, ttms[i], spot)
			if err != nil {
				return nil, fmt.Errorf("curve.Build: spot rate at ttm %v: %w", ttms[i], err)
			}
			drs[i] = r
		}
	}

	ffs := rates.ForwardFactors(dfs)

	frs := make([]*float64, len(ffs))
	for i, ff := range ffs {
		if ff == nil {
			continue
		}
		dt := ttms[i+1] - ttms[i]
		r, err := rates.FactorToRate(*ff, dt, forward)
		if err != nil {
			return nil, fmt.Errorf("curve.Build: forward rate at ttm %v: %w", ttms[i], err)
		}
		frs[i] = &r
	}

	nodes := make([]Node, len(ttms))
	for i := range nodes {
		nodes[i] = Node{
			TTM:            ttms[i],
			DiscountRate:   drs[i],
			DiscountFactor: dfs[i],
			ForwardFactor:  ffs[i],
			ForwardRate:    frs[i],
		}
	}
	return &Curve{nodes: nodes, spot: spot, forward: forward}, nil
}

// spotFactors reduces any input representation to the spot discount factor
// column.
func spotFactors(input Representation, values, ttms []float64, spot, forward rates.Compounding) ([]float64, error) {
	switch input {
	case DiscountRate:
		dfs := make([]float64, len(values))
		for i, r := range values {
			df, err := rates.RateToFactor(r, ttms[i], spot)
			if err != nil {
				return nil, fmt.Errorf("spot factor at ttm %v: %w", ttms[i], err)
			}
			dfs[i] = df
		}
		return dfs, nil

	case DiscountFactor:
		if err := requirePositive(values); err != nil {
			return nil, err
		}
		dfs := make([]float64, len(values))
		copy(dfs, values)
		return dfs, nil

	case ForwardFactor:
		if err := requirePositive(values); err != nil {
			return nil, err
		}
		// Spot factor is the running product of the interval factors.
		dfs := make([]float64, len(values))
		acc := 1.0
		for i, f := range values {
			acc *= f
			dfs[i] = acc
		}
		return dfs, nil

	case ForwardRate:
		intervals := make([]float64, len(values))
		prev := 0.0
		for i, r := range values {
			f, err := rates.RateToFactor(r, ttms[i]-prev, forward)
			if err != nil {
				return nil, fmt.Errorf("interval factor at ttm %v: %w", ttms[i], err)
			}
			intervals[i] = f
			prev = ttms[i]
		}
		return spotFactors(ForwardFactor, intervals, ttms, spot, forward)

	default:
		return nil, fmt.Errorf("%w: %q (want one of DR, DF, FR, FF)", ErrUnknownRepresentation, input)
	}
}

func validate(values, ttms []float64) error {
	if len(ttms) == 0 {
		return ErrEmptyCurve
	}
	if len(values) != len(ttms) {
		return fmt.Errorf("%d values for %d maturities", len(values), len(ttms))
	}
	if ttms[0] < 0 {
		return fmt.Errorf("%w: ttm[0] = %v", ErrMaturitiesNotIncreasing, ttms[0])
	}
	for i := 1; i < len(ttms); i++ {
		if ttms[i] <= ttms[i-1] {
			return fmt.Errorf("%w: ttm[%d] = %v after %v", ErrMaturitiesNotIncreasing, i, ttms[i], ttms[i-1])
		}
	}
	return nil
}

func requirePositive(factors []float64) error {
	for i, f := range factors {
		if f <= 0 {
			return fmt.Errorf("factor[%d]: %w: got %v", i, rates.ErrNonPositiveFactor, f)
		}
	}
	return nil
}
