// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/loans"
)

// ValidatePaymentDay warns when the payment day does not exist in every month
// and will be moved to the month end.
func ValidatePaymentDay(loanName string, paymentOnDay int) string {
	if paymentOnDay > constants.SafePaymentDay {
		return fmt.Sprintf("Loan '%s' pays on day %d which some months lack - those payments move to the month end",
			loanName, paymentOnDay)
	}
	return ""
}

// ValidateFixedPayment warns when a fixed installment does not cover the
// interest of the first month, so the balance would not shrink.
func ValidateFixedPayment(loanName string, config loans.ScheduleConfig, digits int32) string {
	if !config.PaymentAmount.Valid {
		return ""
	}

	firstPaymentDate := datetime.NthPaymentDate(config.IssueDate, 1, config.PaymentOnDay)
	firstInterest := loans.AccruedInterest(config.Amount, config.Rate, config.IssueDate, firstPaymentDate, digits)
	if config.PaymentAmount.Decimal.LessThanOrEqual(firstInterest) {
		return fmt.Sprintf("Loan '%s' payment amount %s does not cover the first month interest %s",
			loanName, config.PaymentAmount.Decimal, firstInterest)
	}
	return ""
}

// ValidateEarlyRepayments warns about early repayments that will never be
// applied or that exceed the loan amount. Dates are compared after rolling
// them with isHoliday, as the schedule does; a repayment on the maturity date
// itself is never applied. A nil isHoliday treats every day as a working day.
func ValidateEarlyRepayments(loanName string, config loans.ScheduleConfig, isHoliday datetime.HolidayFunc) []string {
	var warnings []string

	maturityDate := datetime.RollToWorkingDay(
		datetime.NthPaymentDate(config.IssueDate, config.TermLength, config.PaymentOnDay), isHoliday)
	for _, repayment := range config.EarlyRepayments {
		date := datetime.FormatDate(repayment.PaymentDate)
		if !datetime.RollToWorkingDay(repayment.PaymentDate, isHoliday).Before(maturityDate) {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' early repayment on %s falls on or after maturity (%s) and is ignored",
				loanName, date, datetime.FormatDate(maturityDate)))
		}
		if repayment.PaymentAmount.GreaterThan(config.Amount) {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' early repayment on %s of %s exceeds the loan amount %s",
				loanName, date, repayment.PaymentAmount, config.Amount))
		}
	}

	return warnings
}

// ConfigValidator checks every active loan of a configuration.
type ConfigValidator struct {
	DecimalDigits int32
	IsHoliday     datetime.HolidayFunc
	Loans         []LoanConfig
}

// LoanConfig is one configured loan as seen by the validator.
type LoanConfig struct {
	Name     string
	Active   bool
	Schedule loans.ScheduleConfig
}

// ValidateAll validates the entire configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	digits := cv.DecimalDigits
	if digits <= 0 {
		digits = constants.DefaultDecimalDigits
	}

	for _, loan := range cv.Loans {
		if !loan.Active {
			continue
		}
		if warning := ValidatePaymentDay(loan.Name, loan.Schedule.PaymentOnDay); warning != "" {
			warnings = append(warnings, warning)
		}
		if warning := ValidateFixedPayment(loan.Name, loan.Schedule, digits); warning != "" {
			warnings = append(warnings, warning)
		}
		warnings = append(warnings, ValidateEarlyRepayments(loan.Name, loan.Schedule, cv.IsHoliday)...)
	}

	return warnings
}
