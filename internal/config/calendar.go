package config

import (
	"github.com/iwvelando/loan-schedule/pkg/calendar"
)

// CalendarConfig describes the lender's working days. Inline dates are
// merged into those of File when both are given.
type CalendarConfig struct {
	Weekends    bool     `yaml:"weekends,omitempty"`
	Holidays    []string `yaml:"holidays,omitempty"`
	WorkingDays []string `yaml:"workingDays,omitempty"`
	File        string   `yaml:"file,omitempty"`
}

// IsEmpty reports whether no calendar is configured, i.e. every day is a
// working day.
func (c CalendarConfig) IsEmpty() bool {
	return !c.Weekends && len(c.Holidays) == 0 && len(c.WorkingDays) == 0 && c.File == ""
}

// Build returns the configured calendar, or nil when none is configured.
func (c CalendarConfig) Build() (*calendar.Calendar, error) {
	if c.IsEmpty() {
		return nil, nil
	}

	var def calendar.Definition
	if c.File != "" {
		fileDef, err := calendar.LoadDefinition(c.File)
		if err != nil {
			return nil, err
		}
		def = fileDef
	}

	def.Weekends = def.Weekends || c.Weekends
	def.Holidays = append(def.Holidays, c.Holidays...)
	def.WorkingDays = append(def.WorkingDays, c.WorkingDays...)

	return calendar.New(def)
}
