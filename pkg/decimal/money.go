package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money represents a display amount rounded to cents.
// The projection engine works in float64; Money is only used at the edges
// where amounts are printed or serialised for people.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a Money from a float64. NaN and infinities become zero.
func NewMoney(value float64) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Zero()
	}
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromString parses a plain decimal string such as "1500.50".
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents, half away from zero.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Monthly converts an annual amount to monthly.
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Cents returns the rounded amount as a float64, ready for a locale printer.
func (m Money) Cents() float64 {
	return m.Round().InexactFloat64()
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with exactly two decimals.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
