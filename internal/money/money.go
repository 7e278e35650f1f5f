// Package money provides the integer-cent amount type used throughout the
// ledger. All arithmetic happens on whole cents; decimal strings only exist
// at the API boundary, where they are parsed and formatted via
// shopspring/decimal.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("amount must be positive")
)

// Cents is a monetary amount in minor units (hundredths of the group's
// currency). Signed so it can also represent net balances.
type Cents int64

// Parse converts a decimal string such as "12.34" into cents.
// Amounts with more than two decimal places are rejected rather than
// silently rounded; the amount must be strictly positive.
func Parse(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.Exponent() < -2 {
		// Re-check after normalization so "12.340" still parses.
		if !d.Equal(d.Round(2)) {
			return 0, fmt.Errorf("%w: %q has sub-cent precision", ErrInvalidAmount, s)
		}
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("%w: %q", ErrNegativeAmount, s)
	}
	return Cents(d.Shift(2).IntPart()), nil
}

// String formats the amount with two decimal places, e.g. 1050 -> "10.50".
func (c Cents) String() string {
	return decimal.New(int64(c), -2).StringFixed(2)
}

// Decimal returns the amount as an exact decimal value.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Abs returns the magnitude of the amount.
func (c Cents) Abs() Cents {
	if c < 0 {
		return -c
	}
	return c
}
