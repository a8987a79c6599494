// Package constants provides shared constants for the loan-schedule application.
package constants

// DateLayout is the format expected in config files and is also the output
// date format.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysInYear is the day count divisor for a regular year
	DaysInYear = 365

	// DaysInLeapYear is the day count divisor for a year divisible by four
	DaysInLeapYear = 366

	// DefaultDecimalDigits is the default rounding precision (cents)
	DefaultDecimalDigits = 2

	// MaxPaymentDay is the largest configurable payment day of month
	MaxPaymentDay = 31

	// SafePaymentDay is the largest payment day that exists in every month
	SafePaymentDay = 28

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100
)

// Amortization method names as they appear in configuration.
const (
	MethodAnnuity        = "annuity"
	MethodDifferentiated = "differentiated"
	MethodBubble         = "bubble"
)

// Early repayment type names as they appear in configuration.
const (
	RepaymentTypeMaturity = "maturity"
	RepaymentTypeAnnuity  = "annuity"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// EnvPrefix prefixes environment variable overrides, e.g.
	// LOAN_SCHEDULE_LOGGING_LEVEL.
	EnvPrefix = "LOAN_SCHEDULE"
)
