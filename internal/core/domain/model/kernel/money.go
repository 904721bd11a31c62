package kernel

import (
	"fmt"
	"math"

	"foodcourt/internal/pkg/errs"
)

// Money represents a monetary amount in minor currency units (centavos).
// Storing integers avoids floating point drift when summing order totals;
// database adapters convert to and from NUMERIC(10,2).
//
// Money is a value object: arithmetic returns new values and the zero value
// is a valid zero amount.
//
// Example:
//
//	price := kernel.MoneyFromFloat(149.50)
//	total := price.Multiply(3)
//	fmt.Println(total.Float()) // 448.5
type Money int64

// MoneyFromFloat creates Money from an amount in major units,
// rounding to the nearest minor unit.
func MoneyFromFloat(f float64) Money {
	return Money(math.Round(f * 100.0))
}

// NewMoney creates Money from an amount in minor units.
// Negative amounts are rejected: order totals and unit prices
// are never negative in this domain.
func NewMoney(minorUnits int64) (Money, error) {
	if minorUnits < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d minor units is negative", minorUnits))
	}
	return Money(minorUnits), nil
}

// Float returns the amount in major units.
func (m Money) Float() float64 {
	return float64(m) / 100.0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// Multiply returns the amount scaled by a quantity.
func (m Money) Multiply(qty int) Money {
	return m * Money(qty)
}

// IsNegative reports whether the amount is below zero.
// Restored database values go through this check.
func (m Money) IsNegative() bool {
	return m < 0
}

// String formats the amount in major units with two decimals.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Float())
}
