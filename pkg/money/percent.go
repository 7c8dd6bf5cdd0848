package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Percent is an immutable percentage value constrained to [0, 100].
// It is used for profit shares, rates, and discounts where a raw decimal
// would allow out-of-range values to slip through.
type Percent struct {
	value decimal.Decimal
}

// NewPercent creates a Percent, rejecting values outside [0, 100].
func NewPercent(value decimal.Decimal) (Percent, error) {
	if value.IsNegative() || value.GreaterThan(oneHundred) {
		return Percent{}, fmt.Errorf("percentage %s out of range [0, 100]", value)
	}
	return Percent{value: value}, nil
}

// NewPercentFromFloat creates a Percent from a float64.
func NewPercentFromFloat(value float64) (Percent, error) {
	return NewPercent(decimal.NewFromFloat(value))
}

// MustPercent creates a Percent and panics on error. Intended for
// package-level variable initialization only.
func MustPercent(value float64) Percent {
	p, err := NewPercentFromFloat(value)
	if err != nil {
		panic(err)
	}
	return p
}

// ZeroPercent is the zero percentage.
var ZeroPercent = Percent{value: decimal.Zero}

// Value returns the raw percentage as a decimal in [0, 100].
func (p Percent) Value() decimal.Decimal {
	return p.value
}

// Fraction returns the percentage as a fraction in [0, 1].
func (p Percent) Fraction() decimal.Decimal {
	return p.value.Div(oneHundred)
}

// Of applies the percentage to an amount: 15% of 200 is 30.
func (p Percent) Of(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.value).Div(oneHundred)
}

// OfMoney applies the percentage to a Money value, preserving its currency.
func (p Percent) OfMoney(m Money) Money {
	return m.Multiply(p.Fraction())
}

// Complement returns 100% minus p.
func (p Percent) Complement() Percent {
	return Percent{value: oneHundred.Sub(p.value)}
}

// Add returns the sum of two percentages. The sum may exceed 100 and is not
// re-validated; use SumsToWhole to check share pairs.
func (p Percent) Add(other Percent) Percent {
	return Percent{value: p.value.Add(other.value)}
}

// SumsToWhole reports whether p plus other equals exactly 100%.
func (p Percent) SumsToWhole(other Percent) bool {
	return p.value.Add(other.value).Equal(oneHundred)
}

// IsZero returns true if the percentage is zero.
func (p Percent) IsZero() bool {
	return p.value.IsZero()
}

// GreaterThan returns true if p is strictly greater than other.
func (p Percent) GreaterThan(other Percent) bool {
	return p.value.GreaterThan(other.value)
}

// Equal returns true when both percentages carry the same value.
func (p Percent) Equal(other Percent) bool {
	return p.value.Equal(other.value)
}

// String formats the percentage, for example "15.00%".
func (p Percent) String() string {
	return p.value.StringFixed(2) + "%"
}
