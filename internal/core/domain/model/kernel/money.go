package kernel

import (
	"fmt"
	"math"

	"fooddelivery/internal/pkg/errs"
)

// MaxMoneyCents bounds every amount so that summing order lines cannot overflow.
const MaxMoneyCents int64 = 100_000_000_000_00

// Money is a non-negative amount held in minor units (cents). The zero value
// is a valid amount of 0.00.
//
// Example:
//
//	price, err := kernel.MoneyFromDecimal(149.99)
//	line, err := price.Multiply(2) // 299.98
type Money struct {
	cents int64
}

// NewMoney builds an amount from minor units.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 || cents > MaxMoneyCents {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", cents, 0, MaxMoneyCents)
	}
	return Money{cents: cents}, nil
}

// MoneyFromDecimal converts a decimal amount (as it arrives in JSON) into
// minor units, rounding half away from zero to the nearest cent.
func MoneyFromDecimal(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not a number", amount))
	}
	return NewMoney(int64(math.Round(amount * 100)))
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Decimal returns the amount as a decimal number of major units.
func (m Money) Decimal() float64 {
	return float64(m.cents) / 100
}

// Add returns m + other.
func (m Money) Add(other Money) (Money, error) {
	return NewMoney(m.cents + other.cents)
}

// Multiply returns m × quantity. Quantity must be positive.
func (m Money) Multiply(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if m.cents != 0 && int64(quantity) > MaxMoneyCents/m.cents {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", fmt.Sprintf("%s x %d", m, quantity), 0, MaxMoneyCents)
	}
	return NewMoney(m.cents * int64(quantity))
}

// IsEqual reports whether both amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimals, e.g. "300.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
