package config

import (
	"fmt"
	"time"

	"github.com/iwvelando/loan-schedule/pkg/loans"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Loan indicates a loan and its parameters.
type Loan struct {
	Name            string
	Active          bool
	Method          string // annuity, differentiated, bubble
	Amount          decimal.Decimal
	Rate            decimal.Decimal // annual percentage
	Term            int             // months
	PaymentOnDay    int
	IssueDate       time.Time
	PaymentAmount   decimal.NullDecimal // optional fixed installment
	EarlyRepayments []EarlyRepayment
}

// EarlyRepayment is an out-of-schedule principal payment.
type EarlyRepayment struct {
	Date   time.Time
	Amount decimal.Decimal
	Type   string // maturity, annuity
}

// LoanMethod parses the configured amortization method.
func (loan Loan) LoanMethod() (loans.Method, error) {
	method, err := loans.ParseMethod(loan.Method)
	if err != nil {
		return "", fmt.Errorf("loan %s: %w", loan.Name, err)
	}
	return method, nil
}

// ScheduleConfig converts the loan into the parameters of the schedule
// engine and validates them.
func (loan Loan) ScheduleConfig() (loans.ScheduleConfig, error) {
	config := loans.ScheduleConfig{
		Amount:        loan.Amount,
		IssueDate:     loan.IssueDate,
		TermLength:    loan.Term,
		Rate:          loan.Rate,
		PaymentOnDay:  loan.PaymentOnDay,
		PaymentAmount: loan.PaymentAmount,
	}

	for i, repayment := range loan.EarlyRepayments {
		paymentType, err := loans.ParseRepaymentType(repayment.Type)
		if err != nil {
			return loans.ScheduleConfig{}, fmt.Errorf("loan %s early repayment %d: %w", loan.Name, i, err)
		}
		config.EarlyRepayments = append(config.EarlyRepayments, loans.SchedulePoint{
			PaymentDate:   repayment.Date,
			PaymentType:   paymentType,
			PaymentAmount: repayment.Amount,
		})
	}

	if err := config.Validate(); err != nil {
		return loans.ScheduleConfig{}, fmt.Errorf("loan %s: %w", loan.Name, err)
	}

	return config, nil
}

// GetSchedule computes the repayment schedule for a given Loan.
func (loan Loan) GetSchedule(logger *zap.Logger, opts loans.Options) (loans.Schedule, error) {
	method, err := loan.LoanMethod()
	if err != nil {
		return loans.Schedule{}, err
	}

	config, err := loan.ScheduleConfig()
	if err != nil {
		return loans.Schedule{}, err
	}

	generator := loans.NewAmortizationScheduleGenerator(logger, opts)
	schedule, err := generator.GenerateSchedule(method, config)
	if err != nil {
		return loans.Schedule{}, fmt.Errorf("loan %s: %w", loan.Name, err)
	}

	return schedule, nil
}

// MaxLoanAmount returns the largest amount the configured fixed installment
// repays over the term, or an invalid NullDecimal when no installment is set.
func (loan Loan) MaxLoanAmount(opts loans.Options) (decimal.NullDecimal, error) {
	if !loan.PaymentAmount.Valid {
		return decimal.NullDecimal{}, nil
	}

	amount, err := loans.CalculateMaxLoanAmount(loans.ScheduleConfig{
		Rate:          loan.Rate,
		TermLength:    loan.Term,
		PaymentAmount: loan.PaymentAmount,
	}, opts)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("loan %s: %w", loan.Name, err)
	}

	return decimal.NewNullDecimal(amount), nil
}
