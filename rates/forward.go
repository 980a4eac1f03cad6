package rates

// ForwardFactors derives forward discount factors from spot discount
// factors ordered by increasing maturity. Element i of the result is the
// factor spot[i+1]/spot[i], discounting over the interval between maturity
// i and maturity i+1 (forward looking from node i).
//
// The terminal node has no following maturity, so its forward factor is
// undefined and returned as nil; callers must treat nil as missing, never
// as zero. Inputs of length 0 or 1 yield a result of the same length that
// is entirely nil.
//
// The input is not mutated and is assumed (not checked) to be ordered by
// strictly increasing maturity; curve.Build enforces that before calling.
func ForwardFactors(spot []float64) []*float64 {
	forwards := make([]*float64, len(spot))
	for i := 0; i+1 < len(spot); i++ {
		f := spot[i+1] / spot[i]
		forwards[i] = &f
	}
	return forwards
}
