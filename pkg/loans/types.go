package loans

import (
	"fmt"
	"time"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/shopspring/decimal"
)

// PaymentType distinguishes regular installments from early repayments.
type PaymentType int

const (
	// PaymentTypeRegular is a scheduled monthly installment.
	PaymentTypeRegular PaymentType = iota
	// PaymentTypeMaturity is an early repayment requested to shorten the term.
	PaymentTypeMaturity
	// PaymentTypeAnnuityRecalculation is an early repayment requested to
	// lower the installment.
	PaymentTypeAnnuityRecalculation
)

func (t PaymentType) String() string {
	switch t {
	case PaymentTypeRegular:
		return "regular"
	case PaymentTypeMaturity:
		return constants.RepaymentTypeMaturity
	case PaymentTypeAnnuityRecalculation:
		return constants.RepaymentTypeAnnuity
	default:
		return fmt.Sprintf("PaymentType(%d)", int(t))
	}
}

// ParseRepaymentType maps a configuration name onto an early repayment type.
// An empty name defaults to PaymentTypeMaturity.
func ParseRepaymentType(name string) (PaymentType, error) {
	switch name {
	case "", constants.RepaymentTypeMaturity:
		return PaymentTypeMaturity, nil
	case constants.RepaymentTypeAnnuity:
		return PaymentTypeAnnuityRecalculation, nil
	default:
		return PaymentTypeRegular, fmt.Errorf("%w: unknown early repayment type %q, expected %s or %s",
			ErrInvalidConfig, name, constants.RepaymentTypeMaturity, constants.RepaymentTypeAnnuity)
	}
}

// SchedulePoint is a dated payment request: either a regular installment or
// an early repayment.
type SchedulePoint struct {
	PaymentDate   time.Time
	PaymentType   PaymentType
	PaymentAmount decimal.Decimal
}

// IsRegular reports whether the point is a scheduled installment.
func (p SchedulePoint) IsRegular() bool {
	return p.PaymentType == PaymentTypeRegular
}

// ScheduleConfig holds the loan parameters a schedule is computed from.
type ScheduleConfig struct {
	Amount       decimal.Decimal
	IssueDate    time.Time
	TermLength   int // months
	Rate         decimal.Decimal
	PaymentOnDay int
	// PaymentAmount overrides the computed installment when Valid.
	PaymentAmount   decimal.NullDecimal
	EarlyRepayments []SchedulePoint
}

// Validate checks the configuration before any schedule is generated.
func (c ScheduleConfig) Validate() error {
	if !c.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidConfig, c.Amount)
	}
	if c.TermLength < 1 {
		return fmt.Errorf("%w: term length must be at least one month, got %d", ErrInvalidConfig, c.TermLength)
	}
	if c.Rate.IsNegative() {
		return fmt.Errorf("%w: rate must not be negative, got %s", ErrInvalidConfig, c.Rate)
	}
	if c.PaymentOnDay < 1 || c.PaymentOnDay > constants.MaxPaymentDay {
		return fmt.Errorf("%w: payment day must be between 1 and %d, got %d",
			ErrInvalidConfig, constants.MaxPaymentDay, c.PaymentOnDay)
	}
	if c.IssueDate.IsZero() {
		return fmt.Errorf("%w: issue date is required", ErrInvalidConfig)
	}
	if c.PaymentAmount.Valid && !c.PaymentAmount.Decimal.IsPositive() {
		return fmt.Errorf("%w: payment amount must be positive, got %s", ErrInvalidConfig, c.PaymentAmount.Decimal)
	}
	for i, point := range c.EarlyRepayments {
		if point.IsRegular() {
			return fmt.Errorf("%w: early repayment %d has regular payment type", ErrInvalidConfig, i)
		}
		if !point.PaymentAmount.IsPositive() {
			return fmt.Errorf("%w: early repayment %d amount must be positive, got %s",
				ErrInvalidConfig, i, point.PaymentAmount)
		}
		if !datetime.StartOfDay(point.PaymentDate).After(datetime.StartOfDay(c.IssueDate)) {
			return fmt.Errorf("%w: early repayment %d on %s is not after the issue date %s",
				ErrInvalidConfig, i, point.PaymentDate.Format(constants.DateLayout), c.IssueDate.Format(constants.DateLayout))
		}
	}
	return nil
}

// Payment is one row of a schedule. The first payment of every schedule is
// the disbursement: zero interest and principal with FinalBalance equal to
// the loan amount.
type Payment struct {
	PaymentDate     time.Time
	InitialBalance  decimal.Decimal
	InterestRate    decimal.Decimal
	InterestAmount  decimal.Decimal
	PrincipalAmount decimal.Decimal
	PaymentAmount   decimal.Decimal
	FinalBalance    decimal.Decimal
	// AnnuityPaymentAmount is the installment the annuity formula yields for
	// the balance and remaining term at this payment. Only the annuity
	// generator fills it.
	AnnuityPaymentAmount decimal.Decimal
}

// Schedule is a payment sequence together with its summary.
type Schedule struct {
	Amount           decimal.Decimal
	TermLength       int
	MinPaymentAmount decimal.Decimal
	MaxPaymentAmount decimal.Decimal
	OverAllInterest  decimal.Decimal
	EfficientRate    decimal.Decimal
	FullAmount       decimal.Decimal
	Payments         []Payment
}

// LastPayment returns the final payment of the schedule.
func (s Schedule) LastPayment() Payment {
	if len(s.Payments) == 0 {
		return Payment{}
	}
	return s.Payments[len(s.Payments)-1]
}

func initialPayment(amount decimal.Decimal, paymentDate time.Time, rate decimal.Decimal) Payment {
	return Payment{
		PaymentDate:          paymentDate,
		InitialBalance:       decimal.Zero,
		InterestRate:         rate,
		InterestAmount:       decimal.Zero,
		PrincipalAmount:      decimal.Zero,
		PaymentAmount:        decimal.Zero,
		FinalBalance:         amount,
		AnnuityPaymentAmount: decimal.Zero,
	}
}
