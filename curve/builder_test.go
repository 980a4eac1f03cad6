package curve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/ratecurve/curve"
	"github.com/meenmo/ratecurve/rates"
)

func TestBuild_FromDiscountRates(t *testing.T) {
	t.Parallel()

	ttms := []float64{1, 2, 3}
	drs := []float64{0.03, 0.032, 0.034}

	c, err := curve.Build(curve.DiscountRate, drs, ttms, rates.Semiannual, rates.Continuous)
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	nodes := c.Nodes()
	for i, n := range nodes {
		require.Equal(t, ttms[i], n.TTM)
		require.Equal(t, drs[i], n.DiscountRate)

		want := math.Pow(1+drs[i]/2, -2*ttms[i])
		require.InDelta(t, want, n.DiscountFactor, 1e-15)
	}

	// Forward columns: node i covers [ttm[i], ttm[i+1]).
	for i := 0; i < 2; i++ {
		require.NotNil(t, nodes[i].ForwardFactor)
		require.NotNil(t, nodes[i].ForwardRate)

		wantFF := nodes[i+1].DiscountFactor / nodes[i].DiscountFactor
		require.InDelta(t, wantFF, *nodes[i].ForwardFactor, 1e-15)

		dt := ttms[i+1] - ttms[i]
		wantFR := math.Log(1 / wantFF) / dt
		require.InDelta(t, wantFR, *nodes[i].ForwardRate, 1e-12)
	}
	require.Nil(t, nodes[2].ForwardFactor)
	require.Nil(t, nodes[2].ForwardRate)
}

func TestBuild_FromDiscountFactors(t *testing.T) {
	t.Parallel()

	c, err := curve.Build(curve.DiscountFactor, []float64{0.97, 0.94, 0.90}, []float64{1, 2, 3}, rates.Annual, rates.Annual)
	require.NoError(t, err)

	nodes := c.Nodes()
	require.InDelta(t, 0.96907, *nodes[0].ForwardFactor, 1e-5)
	require.InDelta(t, 0.95745, *nodes[1].ForwardFactor, 1e-5)
	require.Nil(t, nodes[2].ForwardFactor)

	// Spot rates invert the factors at their own TTM.
	for i, n := range nodes {
		want, err := rates.FactorToRate(n.DiscountFactor, n.TTM, rates.Annual)
		require.NoError(t, err)
		require.InDeltaf(t, want, n.DiscountRate, 1e-15, "node %d", i)
	}
}

func TestBuild_ForwardRateUsesIntervalLength(t *testing.T) {
	t.Parallel()

	// Irregular spacing: the forward rate annualizes over ttm[i+1]-ttm[i],
	// not over either node's absolute TTM.
	ttms := []float64{1, 1.5, 3}
	c, err := curve.Build(curve.DiscountFactor, []float64{0.97, 0.955, 0.89}, ttms, rates.Continuous, rates.Continuous)
	require.NoError(t, err)

	nodes := c.Nodes()
	require.InDelta(t, math.Log(0.97/0.955)/0.5, *nodes[0].ForwardRate, 1e-12)
	require.InDelta(t, math.Log(0.955/0.89)/1.5, *nodes[1].ForwardRate, 1e-12)
}

func TestBuild_FourWayConsistency(t *testing.T) {
	t.Parallel()

	ttms := []float64{0.5, 1, 2, 5, 10}
	drs := []float64{0.021, 0.024, 0.028, 0.031, 0.033}
	spot, fwd := rates.Semiannual, rates.Quarterly

	ref, err := curve.Build(curve.DiscountRate, drs, ttms, spot, fwd)
	require.NoError(t, err)

	// Interval representations of the reference curve: element i covers
	// (ttm[i-1], ttm[i]], anchored at time zero for the first element.
	dfs := ref.DiscountFactors()
	ffIn := make([]float64, len(dfs))
	frIn := make([]float64, len(dfs))
	prevDF, prevTTM := 1.0, 0.0
	for i, df := range dfs {
		ffIn[i] = df / prevDF
		r, err := rates.FactorToRate(ffIn[i], ttms[i]-prevTTM, fwd)
		require.NoError(t, err)
		frIn[i] = r
		prevDF, prevTTM = df, ttms[i]
	}

	rebuilds := map[curve.Representation][]float64{
		curve.DiscountFactor: dfs,
		curve.ForwardFactor:  ffIn,
		curve.ForwardRate:    frIn,
	}
	for rep, values := range rebuilds {
		rep, values := rep, values
		t.Run(string(rep), func(t *testing.T) {
			t.Parallel()

			got, err := curve.Build(rep, values, ttms, spot, fwd)
			require.NoError(t, err)

			want := ref.Nodes()
			for i, n := range got.Nodes() {
				require.Equal(t, want[i].TTM, n.TTM)
				require.InDelta(t, want[i].DiscountFactor, n.DiscountFactor, 1e-12)
				require.InDelta(t, want[i].DiscountRate, n.DiscountRate, 1e-10)
				if want[i].ForwardFactor == nil {
					require.Nil(t, n.ForwardFactor)
					require.Nil(t, n.ForwardRate)
					continue
				}
				require.InDelta(t, *want[i].ForwardFactor, *n.ForwardFactor, 1e-12)
				require.InDelta(t, *want[i].ForwardRate, *n.ForwardRate, 1e-10)
			}
		})
	}
}

func TestBuild_SingleNode(t *testing.T) {
	t.Parallel()

	c, err := curve.Build(curve.DiscountRate, []float64{0.03}, []float64{1}, rates.Annual, rates.Annual)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	n := c.Nodes()[0]
	require.InDelta(t, 1/1.03, n.DiscountFactor, 1e-15)
	require.Nil(t, n.ForwardFactor)
	require.Nil(t, n.ForwardRate)
}

func TestBuild_InputErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		rep    curve.Representation
		values []float64
		ttms   []float64
		want   error
	}{
		{"unknown representation", "XX", []float64{0.03}, []float64{1}, curve.ErrUnknownRepresentation},
		{"empty", curve.DiscountRate, nil, nil, curve.ErrEmptyCurve},
		{"non-monotonic", curve.DiscountRate, []float64{0.03, 0.03, 0.03}, []float64{1, 3, 2}, curve.ErrMaturitiesNotIncreasing},
		{"duplicate maturity", curve.DiscountRate, []float64{0.03, 0.03}, []float64{2, 2}, curve.ErrMaturitiesNotIncreasing},
		{"negative maturity", curve.DiscountRate, []float64{0.03, 0.03}, []float64{-1, 2}, curve.ErrMaturitiesNotIncreasing},
		{"non-positive factor", curve.DiscountFactor, []float64{0.97, -0.9}, []float64{1, 2}, rates.ErrNonPositiveFactor},
		{"factor at zero ttm", curve.DiscountFactor, []float64{1, 0.97}, []float64{0, 1}, rates.ErrZeroTTM},
		{"unset compounding", curve.DiscountRate, []float64{0.03}, []float64{1}, rates.ErrInvalidCompounding},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			spot := rates.Annual
			if tc.name == "unset compounding" {
				spot = rates.Compounding{}
			}
			_, err := curve.Build(tc.rep, tc.values, tc.ttms, spot, rates.Annual)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := curve.Build(curve.DiscountRate, []float64{0.03}, []float64{1, 2}, rates.Annual, rates.Annual)
	require.Error(t, err)
}

func TestCurve_Accessors(t *testing.T) {
	t.Parallel()

	c, err := curve.Build(curve.DiscountRate, []float64{0.03, 0.032}, []float64{1, 2}, rates.Semiannual, rates.Continuous)
	require.NoError(t, err)

	require.Equal(t, []float64{1, 2}, c.TTMs())
	require.Equal(t, rates.Semiannual, c.SpotCompounding())
	require.Equal(t, rates.Continuous, c.ForwardCompounding())

	df, ok := c.DF(2)
	require.True(t, ok)
	require.InDelta(t, math.Pow(1.016, -4), df, 1e-15)

	_, ok = c.DF(1.5)
	require.False(t, ok, "no interpolation between nodes")

	// Nodes returns a copy: mutating it must not touch the curve.
	nodes := c.Nodes()
	nodes[0].DiscountFactor = -1
	df, ok = c.DF(1)
	require.True(t, ok)
	require.Greater(t, df, 0.0)
}
