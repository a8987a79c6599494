// Package testutil provides common utility functions for testing.
package testutil

import (
	"time"

	"github.com/iwvelando/loan-schedule/pkg/calendar"
	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/shopspring/decimal"
)

// Dec parses a decimal literal and panics on error.
func Dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// NullDec parses a decimal literal into a valid NullDecimal.
func NullDec(value string) decimal.NullDecimal {
	return decimal.NewNullDecimal(Dec(value))
}

// Date parses a YYYY-MM-DD date and panics on error.
func Date(value string) time.Time {
	return datetime.MustParseTime(datetime.DateLayout, value)
}

// RussianCalendar returns the production calendar of the Russian Federation
// for 2015 through 2019: weekends plus public holidays, with the moved
// working Saturdays.
func RussianCalendar() *calendar.Calendar {
	cal, err := calendar.Parse([]byte(russianCalendarYAML))
	if err != nil {
		panic(err)
	}
	return cal
}

// FindByName returns the first element of items whose name matches, or nil.
func FindByName[T any](items []T, name string, nameOf func(T) string) *T {
	for i := range items {
		if nameOf(items[i]) == name {
			return &items[i]
		}
	}
	return nil
}

const russianCalendarYAML = `
weekends: true
workingDays:
  - "2016-02-20"
  - "2018-04-28"
  - "2018-06-09"
  - "2018-12-29"
holidays:
  # 2015
  - "2015-01-01"
  - "2015-01-02"
  - "2015-01-05"
  - "2015-01-06"
  - "2015-01-07"
  - "2015-01-08"
  - "2015-01-09"
  - "2015-02-23"
  - "2015-03-09"
  - "2015-05-01"
  - "2015-05-04"
  - "2015-05-11"
  - "2015-06-12"
  - "2015-11-04"
  # 2016
  - "2016-01-01"
  - "2016-01-04"
  - "2016-01-05"
  - "2016-01-06"
  - "2016-01-07"
  - "2016-01-08"
  - "2016-02-22"
  - "2016-02-23"
  - "2016-03-07"
  - "2016-03-08"
  - "2016-05-02"
  - "2016-05-03"
  - "2016-05-09"
  - "2016-06-13"
  - "2016-11-04"
  # 2017
  - "2017-01-02"
  - "2017-01-03"
  - "2017-01-04"
  - "2017-01-05"
  - "2017-01-06"
  - "2017-02-23"
  - "2017-02-24"
  - "2017-03-08"
  - "2017-05-01"
  - "2017-05-08"
  - "2017-05-09"
  - "2017-06-12"
  - "2017-11-06"
  # 2018
  - "2018-01-01"
  - "2018-01-02"
  - "2018-01-03"
  - "2018-01-04"
  - "2018-01-05"
  - "2018-01-08"
  - "2018-02-23"
  - "2018-03-08"
  - "2018-03-09"
  - "2018-04-30"
  - "2018-05-01"
  - "2018-05-02"
  - "2018-05-09"
  - "2018-06-11"
  - "2018-06-12"
  - "2018-11-05"
  - "2018-12-31"
  # 2019
  - "2019-01-01"
  - "2019-01-02"
  - "2019-01-03"
  - "2019-01-04"
  - "2019-01-07"
  - "2019-01-08"
  - "2019-03-08"
  - "2019-05-01"
  - "2019-05-02"
  - "2019-05-03"
  - "2019-05-09"
  - "2019-05-10"
  - "2019-06-12"
  - "2019-11-04"
`
