// Package calendar describes which days are working days for a lender.
package calendar

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCalendar is returned when a calendar definition cannot be used.
var ErrInvalidCalendar = errors.New("invalid calendar")

// Definition is the serialized form of a calendar.
type Definition struct {
	// Weekends marks every Saturday and Sunday as a holiday.
	Weekends bool `yaml:"weekends" mapstructure:"weekends"`
	// Holidays are additional non-working dates.
	Holidays []string `yaml:"holidays" mapstructure:"holidays"`
	// WorkingDays are dates that are worked even though they fall on a
	// weekend or holiday.
	WorkingDays []string `yaml:"workingDays" mapstructure:"workingDays"`
}

// Calendar is an immutable set of non-working days. Its methods are safe for
// concurrent use.
type Calendar struct {
	weekends    bool
	holidays    map[time.Time]struct{}
	workingDays map[time.Time]struct{}
}

// New builds a calendar from a definition.
func New(def Definition) (*Calendar, error) {
	holidays, err := dateSet(def.Holidays)
	if err != nil {
		return nil, fmt.Errorf("%w: holidays: %w", ErrInvalidCalendar, err)
	}
	workingDays, err := dateSet(def.WorkingDays)
	if err != nil {
		return nil, fmt.Errorf("%w: working days: %w", ErrInvalidCalendar, err)
	}
	return &Calendar{
		weekends:    def.Weekends,
		holidays:    holidays,
		workingDays: workingDays,
	}, nil
}

// Parse decodes a YAML calendar definition.
func Parse(data []byte) (*Calendar, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCalendar, err)
	}
	return New(def)
}

// LoadDefinition reads a YAML calendar definition from path without
// validating its dates.
func LoadDefinition(path string) (Definition, error) {
	var def Definition
	data, err := os.ReadFile(path)
	if err != nil {
		return def, fmt.Errorf("failed to read calendar file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &def); err != nil {
		return def, fmt.Errorf("%w: %s: %w", ErrInvalidCalendar, path, err)
	}
	return def, nil
}

// IsHoliday reports whether date is a non-working day. A nil calendar has no
// holidays.
func (c *Calendar) IsHoliday(date time.Time) bool {
	if c == nil {
		return false
	}
	day := datetime.StartOfDay(date)
	if _, ok := c.workingDays[day]; ok {
		return false
	}
	if _, ok := c.holidays[day]; ok {
		return true
	}
	if c.weekends {
		weekday := day.Weekday()
		return weekday == time.Saturday || weekday == time.Sunday
	}
	return false
}

func dateSet(values []string) (map[time.Time]struct{}, error) {
	set := make(map[time.Time]struct{}, len(values))
	for _, value := range values {
		date, err := datetime.ParseDate(value)
		if err != nil {
			return nil, err
		}
		set[datetime.StartOfDay(date)] = struct{}{}
	}
	return set, nil
}
