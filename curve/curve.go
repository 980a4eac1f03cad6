// Package curve assembles a term structure in all four of its mutually
// derivable representations: spot discount rates, spot discount factors,
// forward discount factors, and forward discount rates, indexed by time to
// maturity.
package curve

import (
	"github.com/meenmo/ratecurve/rates"
)

// Representation identifies which of the four curve columns an input
// sequence carries.
type Representation string

const (
	DiscountRate   Representation = "DR"
	DiscountFactor Representation = "DF"
	ForwardRate    Representation = "FR"
	ForwardFactor  Representation = "FF"
)

// Node is one maturity row of a curve.
//
// ForwardFactor and ForwardRate cover the interval from this node's
// maturity to the next node's maturity. The last node has no next maturity,
// so both are nil there.
type Node struct {
	TTM            float64
	DiscountRate   float64
	DiscountFactor float64
	ForwardFactor  *float64
	ForwardRate    *float64
}

// Curve is an ordered term structure, one node per maturity, together with
// the compounding conventions its rate columns were derived under.
//
// A Curve is built fresh by Build and never mutated afterwards; it is safe
// to share across concurrent readers.
type Curve struct {
	nodes   []Node
	spot    rates.Compounding
	forward rates.Compounding
}

// Len returns the number of maturities on the curve.
func (c *Curve) Len() int { return len(c.nodes) }

// Nodes returns a copy of the curve's rows in increasing maturity order.
func (c *Curve) Nodes() []Node {
	out := make([]Node, len(c.nodes))
	copy(out, c.nodes)
	return out
}

// TTMs returns the curve's maturities in years, in increasing order.
func (c *Curve) TTMs() []float64 {
	out := make([]float64, len(c.nodes))
	for i, n := range c.nodes {
		out[i] = n.TTM
	}
	return out
}

// DiscountFactors returns the spot discount factor column, aligned with TTMs.
func (c *Curve) DiscountFactors() []float64 {
	out := make([]float64, len(c.nodes))
	for i, n := range c.nodes {
		out[i] = n.DiscountFactor
	}
	return out
}

// DF returns the spot discount factor at an exact curve maturity. The
// second return is false when ttm is not a node on the curve; this engine
// does not interpolate.
func (c *Curve) DF(ttm float64) (float64, bool) {
	for _, n := range c.nodes {
		if n.TTM == ttm {
			return n.DiscountFactor, true
		}
	}
	return 0, false
}

// SpotCompounding returns the convention of the DiscountRate column.
func (c *Curve) SpotCompounding() rates.Compounding { return c.spot }

// ForwardCompounding returns the convention of the ForwardRate column.
func (c *Curve) ForwardCompounding() rates.Compounding { return c.forward }
