// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/loans"
	"github.com/iwvelando/loan-schedule/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DateLayout is the format expected in config files and is also the output
// date format.
const DateLayout = constants.DateLayout

// Configuration holds all configuration for loan-schedule.
type Configuration struct {
	Options  OptionsConfig  `yaml:"options,omitempty"`
	Calendar CalendarConfig `yaml:"calendar,omitempty"`
	Loans    []Loan         `yaml:"loans"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Metrics  MetricsConfig  `yaml:"metrics,omitempty"`
}

// OptionsConfig holds the schedule computation options shared by all loans.
type OptionsConfig struct {
	DecimalDigits int32 `yaml:"decimalDigits,omitempty"` // 0 selects 2
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, yaml
}

// MetricsConfig holds metrics export options
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"` // optional node exporter textfile
}

// envKeys are the settings that can be overridden from the environment even
// when the config file omits them.
var envKeys = []string{
	"options.decimalDigits",
	"logging.level",
	"logging.format",
	"logging.outputFile",
	"output.format",
	"metrics.textfile",
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Settings can be overridden with LOAN_SCHEDULE_*
// environment variables, which are also read from a .env file in the working
// directory when one exists.
func LoadConfiguration(configPath string) (*Configuration, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file, %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding environment for %s, %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration, viper.DecodeHook(DecodeHook())); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &configuration, nil
}

// ScheduleOptions builds the computation options shared by every loan,
// including the holiday calendar.
func (conf *Configuration) ScheduleOptions() (loans.Options, error) {
	cal, err := conf.Calendar.Build()
	if err != nil {
		return loans.Options{}, err
	}

	opts := loans.Options{DecimalDigits: conf.Options.DecimalDigits}
	if cal != nil {
		opts.IsHoliday = cal.IsHoliday
	}
	return opts, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Loans that cannot be converted are reported as warnings
// too; they fail later when scheduled.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	validator := validation.ConfigValidator{DecimalDigits: conf.Options.DecimalDigits}
	if opts, err := conf.ScheduleOptions(); err != nil {
		warnings = append(warnings, fmt.Sprintf("Calendar is invalid: %s", err))
	} else {
		validator.IsHoliday = opts.IsHoliday
	}
	for _, loan := range conf.Loans {
		schedule, err := loan.ScheduleConfig()
		if err != nil {
			if loan.Active {
				warnings = append(warnings, fmt.Sprintf("Loan '%s' is invalid: %s", loan.Name, err))
			}
			continue
		}
		validator.Loans = append(validator.Loans, validation.LoanConfig{
			Name:     loan.Name,
			Active:   loan.Active,
			Schedule: schedule,
		})
	}

	return append(warnings, validator.ValidateAll()...)
}
