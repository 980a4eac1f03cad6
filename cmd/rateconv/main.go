// Command rateconv converts a single discount rate to a discount factor,
// or back, under a chosen compounding convention.
//
// Usage:
//
//	rateconv -rate 0.05 -ttm 2 -freq 2
//	rateconv -factor 0.90595 -ttm 2 -freq 2
//	rateconv -rate 0.05 -ttm 2 -continuous
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/meenmo/ratecurve/rates"
)

func main() {
	rate := flag.Float64("rate", math.NaN(), "Annualized discount rate (decimal) to convert to a factor")
	factor := flag.Float64("factor", math.NaN(), "Discount factor to convert to a rate")
	ttm := flag.Float64("ttm", math.NaN(), "Time to maturity in years")
	freq := flag.Int("freq", 2, "Compounding periods per year")
	continuous := flag.Bool("continuous", false, "Use continuous compounding (overrides -freq)")
	flag.Parse()

	haveRate := !math.IsNaN(*rate)
	haveFactor := !math.IsNaN(*factor)
	if haveRate == haveFactor || math.IsNaN(*ttm) {
		fmt.Fprintln(os.Stderr, "Usage: rateconv (-rate <r> | -factor <f>) -ttm <years> [-freq <n> | -continuous]")
		os.Exit(2)
	}

	comp := rates.Periodic(*freq)
	if *continuous {
		comp = rates.Continuous
	}

	var out float64
	var err error
	if haveRate {
		out, err = rates.RateToFactor(*rate, *ttm, comp)
	} else {
		out, err = rates.FactorToRate(*factor, *ttm, comp)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "rateconv:", err)
		os.Exit(1)
	}

	fmt.Printf("%.10f\n", out)
}
