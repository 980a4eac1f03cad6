package curve

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/meenmo/ratecurve/rates"
)

// DayCount selects the convention used to turn a date pair into a year
// fraction.
type DayCount string

const (
	Act360    DayCount = "ACT/360"
	Act365F   DayCount = "ACT/365F"
	Thirty360 DayCount = "30E/360"
)

// ErrUnknownDayCount is returned for a day count outside the supported set.
var ErrUnknownDayCount = errors.New("unknown day count convention")

// YearFraction computes the year fraction from start to end under the given
// day count convention.
func YearFraction(start, end time.Time, dc DayCount) (float64, error) {
	switch dc {
	case Act360:
		return end.Sub(start).Hours() / 24 / 360.0, nil
	case Act365F:
		return end.Sub(start).Hours() / 24 / 365.0, nil
	case Thirty360:
		// 30E/360 ISDA (Eurobond basis): day-of-month capped at 30.
		d1 := start.Day()
		if d1 > 30 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 > 30 {
			d2 = 30
		}
		y1, m1 := start.Year(), int(start.Month())
		y2, m2 := end.Year(), int(end.Month())
		return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDayCount, dc)
	}
}

// TenorYears converts tenor strings like "1W", "3M", "10Y" (or a bare
// number of years, e.g. "1.5") to a year fraction.
func TenorYears(tenor string) (float64, error) {
	t := strings.TrimSpace(strings.ToUpper(tenor))
	if t == "" {
		return 0, fmt.Errorf("empty tenor")
	}

	num := func(s string) (float64, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid tenor %q", tenor)
		}
		return v, nil
	}

	switch {
	case strings.HasSuffix(t, "D"):
		v, err := num(strings.TrimSuffix(t, "D"))
		return v / 365.0, err
	case strings.HasSuffix(t, "W"):
		v, err := num(strings.TrimSuffix(t, "W"))
		return v * 7.0 / 365.0, err
	case strings.HasSuffix(t, "M"):
		v, err := num(strings.TrimSuffix(t, "M"))
		return v / 12.0, err
	case strings.HasSuffix(t, "Y"):
		v, err := num(strings.TrimSuffix(t, "Y"))
		return v, err
	default:
		return num(t)
	}
}

// BuildFromDates is Build for date-keyed inputs: maturities are converted
// to times to maturity from the settlement date under dc, then the curve is
// assembled exactly as by Build. Maturities must be in strictly ascending
// date order, on or after settlement.
func BuildFromDates(input Representation, values []float64, settlement time.Time, maturities []time.Time, dc DayCount, spot, forward rates.Compounding) (*Curve, error) {
	ttms := make([]float64, len(maturities))
	for i, m := range maturities {
		yf, err := YearFraction(settlement, m, dc)
		if err != nil {
			return nil, fmt.Errorf("curve.BuildFromDates: %w", err)
		}
		ttms[i] = yf
	}
	return Build(input, values, ttms, spot, forward)
}
