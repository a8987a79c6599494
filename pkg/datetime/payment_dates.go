package datetime

import (
	"time"
)

// HolidayFunc reports whether a date is a non-working day. Implementations
// must be pure functions of the date.
type HolidayFunc func(date time.Time) bool

// NoHolidays is a HolidayFunc that treats every day as a working day.
func NoHolidays(time.Time) bool { return false }

// NthPaymentDate returns the payment date monthOffset months after the month
// containing issueDate. The day of month is paymentDay, clamped to the last
// day of the target month (e.g. day 31 in April becomes April 30 and day 30
// in a leap February becomes February 29).
func NthPaymentDate(issueDate time.Time, monthOffset, paymentDay int) time.Time {
	target := StartOfMonth(issueDate).AddDate(0, monthOffset, 0)
	day := paymentDay
	if last := DaysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return Date(target.Year(), target.Month(), day)
}

// RollToWorkingDay moves date forward until isHoliday reports a working day.
// When rolling forward would leave the month of date, it rolls backward from
// date instead, so the result always stays in the original calendar month.
// A nil isHoliday leaves the date untouched.
func RollToWorkingDay(date time.Time, isHoliday HolidayFunc) time.Time {
	if isHoliday == nil {
		return StartOfDay(date)
	}

	original := StartOfDay(date)
	current := original
	step := 1
	for isHoliday(current) {
		current = current.AddDate(0, 0, step)
		if current.Month() != original.Month() {
			if step < 0 {
				// Every day of the month is a holiday.
				return original
			}
			step = -1
			current = original
		}
	}

	return current
}
