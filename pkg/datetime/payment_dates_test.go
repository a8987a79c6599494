package datetime

import (
	"testing"
	"time"
)

func weekendsAnd(holidays ...time.Time) HolidayFunc {
	return func(date time.Time) bool {
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			return true
		}
		for _, holiday := range holidays {
			if SameDay(holiday, date) {
				return true
			}
		}
		return false
	}
}

func TestNthPaymentDate(t *testing.T) {
	tests := []struct {
		name       string
		issueDate  time.Time
		offset     int
		paymentDay int
		expected   time.Time
	}{
		{"Leap year clamp", Date(2013, time.May, 1), 33, 31, Date(2016, time.February, 29)},
		{"Non-leap february clamp", Date(2013, time.May, 1), 21, 31, Date(2015, time.February, 28)},
		{"Thirty day month clamp", Date(2018, time.October, 31), 6, 31, Date(2019, time.April, 30)},
		{"Day exists", Date(2018, time.October, 25), 1, 25, Date(2018, time.November, 25)},
		{"Issue day is ignored", Date(2018, time.October, 31), 1, 5, Date(2018, time.November, 5)},
		{"Zero offset", Date(2018, time.October, 25), 0, 25, Date(2018, time.October, 25)},
		{"Year rollover", Date(2018, time.December, 10), 1, 10, Date(2019, time.January, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NthPaymentDate(tt.issueDate, tt.offset, tt.paymentDay)
			if !result.Equal(tt.expected) {
				t.Errorf("NthPaymentDate() = %s, expected %s", FormatDate(result), FormatDate(tt.expected))
			}
		})
	}
}

func TestRollToWorkingDay(t *testing.T) {
	mayHolidays := weekendsAnd(
		Date(2015, time.May, 1), Date(2015, time.May, 4),
		Date(2015, time.May, 11),
	)

	tests := []struct {
		name      string
		date      time.Time
		isHoliday HolidayFunc
		expected  time.Time
	}{
		{"Working day unchanged", Date(2015, time.May, 6), mayHolidays, Date(2015, time.May, 6)},
		{"Rolls forward past holidays", Date(2015, time.May, 1), mayHolidays, Date(2015, time.May, 5)},
		{"Rolls backward at month end", Date(2015, time.May, 31), mayHolidays, Date(2015, time.May, 29)},
		{"Saturday at month end rolls back", Date(2015, time.May, 30), mayHolidays, Date(2015, time.May, 29)},
		{"Nil predicate", Date(2015, time.May, 31), nil, Date(2015, time.May, 31)},
		{"No holidays", Date(2015, time.May, 31), NoHolidays, Date(2015, time.May, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RollToWorkingDay(tt.date, tt.isHoliday)
			if !result.Equal(tt.expected) {
				t.Errorf("RollToWorkingDay() = %s, expected %s", FormatDate(result), FormatDate(tt.expected))
			}
		})
	}
}

func TestRollToWorkingDayStaysInMonth(t *testing.T) {
	everyDay := func(time.Time) bool { return true }
	date := Date(2015, time.May, 15)

	result := RollToWorkingDay(date, everyDay)
	if !result.Equal(date) {
		t.Errorf("RollToWorkingDay() = %s, expected the original date when the whole month is off", FormatDate(result))
	}

	for day := 1; day <= 31; day++ {
		original := Date(2015, time.May, day)
		rolled := RollToWorkingDay(original, weekendsAnd())
		if rolled.Month() != time.May {
			t.Errorf("RollToWorkingDay(%s) left the month: %s", FormatDate(original), FormatDate(rolled))
		}
	}
}
