package rates

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCompounding is returned when a Compounding value is neither
	// continuous nor periodic with a positive frequency.
	ErrInvalidCompounding = errors.New("invalid compounding convention")
	// ErrZeroTTM is returned when a conversion needs to divide by the time
	// to maturity and it is zero.
	ErrZeroTTM = errors.New("ttm is zero: rate is undefined")
	// ErrNonPositiveFactor is returned when a discount factor is zero or
	// negative where a strictly positive factor is required.
	ErrNonPositiveFactor = errors.New("discount factor must be positive")
)

// Compounding specifies how an annualized rate compounds: continuously, or
// periodically with an integer number of periods per year.
//
// The zero value is invalid and is rejected by the conversion functions, so
// an unset convention cannot silently behave like annual compounding.
type Compounding struct {
	continuous bool
	freq       int
}

// Continuous is the continuous-compounding convention.
var Continuous = Compounding{continuous: true}

// Common periodic conventions.
var (
	Annual     = Periodic(1)
	Semiannual = Periodic(2)
	Quarterly  = Periodic(4)
	Monthly    = Periodic(12)
)

// Periodic returns the convention compounding freq times per year.
//
// Validity (freq >= 1) is checked at the point of use, not construction, so
// callers holding user input can defer error handling to the conversion call.
func Periodic(freq int) Compounding {
	return Compounding{freq: freq}
}

// IsContinuous reports whether c is the continuous convention.
func (c Compounding) IsContinuous() bool { return c.continuous }

// Frequency returns the periods per year for a periodic convention, or 0 for
// continuous.
func (c Compounding) Frequency() int {
	if c.continuous {
		return 0
	}
	return c.freq
}

func (c Compounding) validate() error {
	if c.continuous {
		return nil
	}
	if c.freq < 1 {
		return fmt.Errorf("%w: frequency %d (want continuous or a positive integer)", ErrInvalidCompounding, c.freq)
	}
	return nil
}

func (c Compounding) String() string {
	if c.continuous {
		return "continuous"
	}
	return fmt.Sprintf("%dx/year", c.freq)
}
