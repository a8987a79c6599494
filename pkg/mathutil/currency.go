// Package mathutil provides common decimal utility functions.
package mathutil

import (
	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/shopspring/decimal"
)

var (
	// Hundred is used for percentage conversions.
	Hundred = decimal.NewFromInt(constants.PercentageMultiplier)

	// Twelve is the number of months in a year.
	Twelve = decimal.NewFromInt(constants.MonthsPerYear)

	one = decimal.NewFromInt(1)
)

// Round rounds a value to the given number of decimal places, half away from
// zero. Every intermediate monetary value goes through here so that repeated
// computations accumulate the same rounding error.
func Round(val decimal.Decimal, digits int32) decimal.Decimal {
	return val.Round(digits)
}

// Tolerance returns one unit of the given precision, e.g. 0.01 for 2 digits.
func Tolerance(digits int32) decimal.Decimal {
	return decimal.New(1, -digits)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance decimal.Decimal) bool {
	return val1.Sub(val2).Abs().LessThanOrEqual(tolerance)
}

// Min returns the minimum of two values
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the maximum of two values
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// CalculatePercentage calculates what percentage value is of total, rounded
// to digits.
func CalculatePercentage(value, total decimal.Decimal, digits int32) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return value.Div(total).Mul(Hundred).Round(digits)
}

// MonthlyRate converts an annual percentage rate into a monthly fraction,
// e.g. 12 becomes 0.01.
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(Hundred).Div(Twelve)
}

// Power raises base to a non-negative integer exponent by repeated squaring.
// The result is exact.
func Power(base decimal.Decimal, exponent int) decimal.Decimal {
	result := one
	for exponent > 0 {
		if exponent&1 == 1 {
			result = result.Mul(base)
		}
		exponent >>= 1
		if exponent > 0 {
			base = base.Mul(base)
		}
	}
	return result
}
