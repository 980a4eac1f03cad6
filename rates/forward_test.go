package rates_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/ratecurve/rates"
)

func TestForwardFactors(t *testing.T) {
	t.Parallel()

	spot := []float64{0.97, 0.94, 0.90}
	got := rates.ForwardFactors(spot)

	require.Len(t, got, 3)
	require.NotNil(t, got[0])
	require.NotNil(t, got[1])
	require.InDelta(t, 0.94/0.97, *got[0], 1e-12)
	require.InDelta(t, 0.90/0.94, *got[1], 1e-12)
	require.Nil(t, got[2], "terminal forward has no following maturity")

	// Input untouched.
	require.Equal(t, []float64{0.97, 0.94, 0.90}, spot)
}

func TestForwardFactors_ShortInputs(t *testing.T) {
	t.Parallel()

	require.Empty(t, rates.ForwardFactors(nil))
	require.Empty(t, rates.ForwardFactors([]float64{}))

	one := rates.ForwardFactors([]float64{0.98})
	require.Len(t, one, 1)
	require.Nil(t, one[0])
}

func TestForwardFactors_Composition(t *testing.T) {
	t.Parallel()

	// The product of the defined forwards telescopes to spot[k-1]/spot[0].
	spot := []float64{0.995, 0.97, 0.941, 0.9, 0.852}
	forwards := rates.ForwardFactors(spot)

	prod := 1.0
	for _, f := range forwards[:len(forwards)-1] {
		require.NotNil(t, f)
		prod *= *f
	}
	require.InDelta(t, spot[len(spot)-1]/spot[0], prod, 1e-12)
}
