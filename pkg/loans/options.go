package loans

import (
	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/datetime"
)

// HolidayFunc reports whether a date is a non-working day.
type HolidayFunc = datetime.HolidayFunc

// Options tunes schedule computation.
type Options struct {
	// DecimalDigits is the rounding precision applied at every step.
	// Zero selects constants.DefaultDecimalDigits.
	DecimalDigits int32
	// IsHoliday moves annuity payment dates off non-working days. Nil means
	// every day is a working day.
	IsHoliday HolidayFunc
}

func (o Options) digits() int32 {
	if o.DecimalDigits <= 0 {
		return constants.DefaultDecimalDigits
	}
	return o.DecimalDigits
}

func (o Options) holidays() HolidayFunc {
	if o.IsHoliday == nil {
		return datetime.NoHolidays
	}
	return o.IsHoliday
}
