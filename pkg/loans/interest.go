package loans

import (
	"time"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// DaysInYear returns the day count divisor for a year. Every fourth year
// counts 366 days; century years are not special-cased.
func DaysInYear(year int) int {
	if year%4 == 0 {
		return constants.DaysInLeapYear
	}
	return constants.DaysInYear
}

// PeriodInterest returns the unrounded simple interest on principal for the
// days between from and to, using the day count of to's year.
func PeriodInterest(principal, annualRatePercent decimal.Decimal, from, to time.Time) decimal.Decimal {
	return annualRatePercent.
		Div(mathutil.Hundred).
		Div(decimal.NewFromInt(int64(DaysInYear(to.Year())))).
		Mul(decimal.NewFromInt(int64(datetime.DaysBetween(from, to)))).
		Mul(principal)
}

// AccruedInterest returns the interest on principal between from and to,
// rounded to digits. A period crossing a year boundary is split at December
// 31 of from's year so each part uses its own year's day count; the parts
// are summed before rounding.
func AccruedInterest(principal, annualRatePercent decimal.Decimal, from, to time.Time, digits int32) decimal.Decimal {
	if datetime.SameYear(from, to) {
		return mathutil.Round(PeriodInterest(principal, annualRatePercent, from, to), digits)
	}

	endOfYear := datetime.EndOfYear(from)
	return mathutil.Round(
		PeriodInterest(principal, annualRatePercent, from, endOfYear).
			Add(PeriodInterest(principal, annualRatePercent, endOfYear, to)),
		digits,
	)
}
