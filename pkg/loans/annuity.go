package loans

import (
	"fmt"
	"sort"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/mathutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var one = decimal.NewFromInt(1)

// annuityFactor returns i / (1 - (1+i)^-n) for the monthly rate i. The
// second result is false when the rate is zero and the formula degenerates.
func annuityFactor(annualRatePercent decimal.Decimal, termLength int) (decimal.Decimal, bool) {
	monthlyRate := mathutil.MonthlyRate(annualRatePercent)
	if monthlyRate.IsZero() {
		return decimal.Zero, false
	}
	discount := one.Div(mathutil.Power(one.Add(monthlyRate), termLength))
	denominator := one.Sub(discount)
	if denominator.IsZero() {
		return decimal.Zero, false
	}
	return monthlyRate.Div(denominator), true
}

// AnnuityPaymentAmount returns the level installment that repays amount over
// termLength months at the annual percentage rate, rounded to digits.
//
// A zero rate has no annuity factor; the installment is then amount split
// evenly over the term. A term below one month is treated as one month.
func AnnuityPaymentAmount(amount, annualRatePercent decimal.Decimal, termLength int, digits int32) decimal.Decimal {
	if termLength < 1 {
		termLength = 1
	}
	factor, ok := annuityFactor(annualRatePercent, termLength)
	if !ok {
		return mathutil.Round(amount.Div(decimal.NewFromInt(int64(termLength))), digits)
	}
	return mathutil.Round(amount.Mul(factor), digits)
}

// CalculateAnnuityPaymentAmount returns the installment for the amount, rate
// and term of config. PaymentAmount and early repayments are ignored.
func CalculateAnnuityPaymentAmount(config ScheduleConfig, opts Options) decimal.Decimal {
	return AnnuityPaymentAmount(config.Amount, config.Rate, config.TermLength, opts.digits())
}

// CalculateMaxLoanAmount inverts CalculateAnnuityPaymentAmount: it returns the
// largest principal that config.PaymentAmount repays over the term at the
// rate. With a zero rate it is the installment times the term.
func CalculateMaxLoanAmount(config ScheduleConfig, opts Options) (decimal.Decimal, error) {
	if !config.PaymentAmount.Valid {
		return decimal.Zero, fmt.Errorf("%w: cannot derive maximum loan amount", ErrMissingPaymentAmount)
	}
	if config.TermLength < 1 {
		return decimal.Zero, fmt.Errorf("%w: term length must be at least one month, got %d",
			ErrInvalidConfig, config.TermLength)
	}

	digits := opts.digits()
	paymentAmount := config.PaymentAmount.Decimal
	factor, ok := annuityFactor(config.Rate, config.TermLength)
	if !ok {
		return mathutil.Round(paymentAmount.Mul(decimal.NewFromInt(int64(config.TermLength))), digits), nil
	}
	return mathutil.Round(paymentAmount.Div(factor), digits), nil
}

// AnnuityGenerator produces level-installment schedules and folds early
// repayments into them.
type AnnuityGenerator struct {
	logger *zap.Logger
	opts   Options
}

// NewAnnuityGenerator creates a new generator instance
func NewAnnuityGenerator(logger *zap.Logger, opts Options) *AnnuityGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnuityGenerator{logger: logger, opts: opts}
}

// Method implements Generator.
func (g *AnnuityGenerator) Method() Method { return MethodAnnuity }

// SchedulePoints returns the dated payment requests the annuity schedule is
// built from: the disbursement, one regular point per month and every early
// repayment, all moved onto working days and sorted by date. Points on the
// same day keep their order, regular points first. An early repayment never
// lands before the issue date.
func (g *AnnuityGenerator) SchedulePoints(config ScheduleConfig, installment decimal.Decimal) []SchedulePoint {
	isHoliday := g.opts.holidays()
	issueDate := datetime.StartOfDay(config.IssueDate)

	points := make([]SchedulePoint, 0, config.TermLength+1+len(config.EarlyRepayments))
	for month := 0; month <= config.TermLength; month++ {
		paymentDate := issueDate
		if month > 0 {
			paymentDate = datetime.NthPaymentDate(issueDate, month, config.PaymentOnDay)
		}
		points = append(points, SchedulePoint{
			PaymentDate:   datetime.RollToWorkingDay(paymentDate, isHoliday),
			PaymentType:   PaymentTypeRegular,
			PaymentAmount: installment,
		})
	}
	for _, repayment := range config.EarlyRepayments {
		// Rolling back from a holiday must not move a repayment before the
		// disbursement.
		paymentDate := datetime.RollToWorkingDay(repayment.PaymentDate, isHoliday)
		if paymentDate.Before(issueDate) {
			paymentDate = issueDate
		}
		points = append(points, SchedulePoint{
			PaymentDate:   paymentDate,
			PaymentType:   repayment.PaymentType,
			PaymentAmount: repayment.PaymentAmount,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].PaymentDate.Before(points[j].PaymentDate)
	})

	return points
}

// annuityState is carried from one schedule point to the next.
type annuityState struct {
	// interestAccrued is interest earned but not yet collected.
	interestAccrued decimal.Decimal
	// scheduledPayment is the installment currently in force.
	scheduledPayment decimal.Decimal
}

// GeneratePayments implements Generator.
//
// Interest accrues between consecutive points on the balance left by the
// earlier one. A regular point collects accrued interest first, capped by the
// installment, and applies the rest to principal; an early repayment goes to
// principal entirely and leaves interest accrued for the next regular point.
// After an early repayment the installment is re-derived from the remaining
// balance and term unless a fixed PaymentAmount is configured. The maturity
// point, or any regular point whose installment covers the balance, pays off
// the loan.
func (g *AnnuityGenerator) GeneratePayments(config ScheduleConfig) ([]Payment, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	digits := g.opts.digits()
	installment := AnnuityPaymentAmount(config.Amount, config.Rate, config.TermLength, digits)
	if config.PaymentAmount.Valid {
		installment = config.PaymentAmount.Decimal
	}

	g.logger.Debug(fmt.Sprintf("annuity installment %s for %s over %d months at %s%%",
		installment, config.Amount, config.TermLength, config.Rate),
		zap.String("op", "loans.AnnuityGenerator.GeneratePayments"),
	)

	points := g.SchedulePoints(config, installment)
	maturity := 0
	for i, point := range points {
		if point.IsRegular() {
			maturity = i
		}
	}

	rate := mathutil.Round(config.Rate, digits)
	payments := make([]Payment, 0, len(points))
	payments = append(payments, initialPayment(config.Amount, datetime.StartOfDay(config.IssueDate), config.Rate))

	state := annuityState{
		interestAccrued:  decimal.Zero,
		scheduledPayment: installment,
	}

	for i := 1; i <= maturity && payments[len(payments)-1].FinalBalance.IsPositive(); i++ {
		point := points[i]
		previous := payments[len(payments)-1]

		pay := Payment{
			PaymentDate:    point.PaymentDate,
			InitialBalance: previous.FinalBalance,
			InterestRate:   rate,
			AnnuityPaymentAmount: AnnuityPaymentAmount(
				previous.FinalBalance, rate, config.TermLength-i+1, digits),
		}

		if !point.IsRegular() {
			state.scheduledPayment = point.PaymentAmount
		} else if !points[i-1].IsRegular() {
			state.scheduledPayment = pay.AnnuityPaymentAmount
			if config.PaymentAmount.Valid {
				state.scheduledPayment = config.PaymentAmount.Decimal
			}
			g.logger.Debug(fmt.Sprintf("%s: installment re-derived as %s after early repayment",
				pay.PaymentDate.Format(constants.DateLayout), state.scheduledPayment),
				zap.String("op", "loans.AnnuityGenerator.GeneratePayments"),
			)
		}

		state.interestAccrued = state.interestAccrued.Add(
			AccruedInterest(pay.InitialBalance, rate, previous.PaymentDate, pay.PaymentDate, digits))

		switch {
		case point.IsRegular() && i != maturity && state.scheduledPayment.LessThan(pay.InitialBalance):
			if state.interestAccrued.GreaterThan(state.scheduledPayment) {
				pay.InterestAmount = mathutil.Round(state.scheduledPayment, digits)
				state.interestAccrued = state.interestAccrued.Sub(state.scheduledPayment)
			} else {
				pay.InterestAmount = mathutil.Round(state.interestAccrued, digits)
				state.interestAccrued = decimal.Zero
			}
			pay.PrincipalAmount = mathutil.Round(state.scheduledPayment.Sub(pay.InterestAmount), digits)
			pay.PaymentAmount = mathutil.Round(state.scheduledPayment, digits)

		case point.IsRegular(), state.scheduledPayment.GreaterThanOrEqual(pay.InitialBalance):
			// Payoff: the maturity point, an installment covering the
			// balance, or an early repayment covering the balance.
			pay.InterestAmount = mathutil.Round(state.interestAccrued, digits)
			state.interestAccrued = decimal.Zero
			pay.PrincipalAmount = pay.InitialBalance
			pay.PaymentAmount = mathutil.Round(pay.PrincipalAmount.Add(pay.InterestAmount), digits)
			g.logger.Debug(fmt.Sprintf("%s: loan paid off with %s", pay.PaymentDate.Format(constants.DateLayout), pay.PaymentAmount),
				zap.String("op", "loans.AnnuityGenerator.GeneratePayments"),
				zap.Stringer("type", point.PaymentType),
			)

		default:
			pay.InterestAmount = mathutil.Round(decimal.Zero, digits)
			pay.PrincipalAmount = mathutil.Round(state.scheduledPayment, digits)
			pay.PaymentAmount = mathutil.Round(state.scheduledPayment, digits)
			g.logger.Debug(fmt.Sprintf("%s: applying early repayment %s", pay.PaymentDate.Format(constants.DateLayout), pay.PaymentAmount),
				zap.String("op", "loans.AnnuityGenerator.GeneratePayments"),
				zap.Stringer("type", point.PaymentType),
			)
		}

		pay.FinalBalance = mathutil.Round(pay.InitialBalance.Sub(pay.PrincipalAmount), digits)
		payments = append(payments, pay)
	}

	return payments, nil
}

// GenerateAnnuityPayments generates a level-installment payment sequence with
// early repayments folded in.
func GenerateAnnuityPayments(config ScheduleConfig, opts Options) ([]Payment, error) {
	return NewAnnuityGenerator(nil, opts).GeneratePayments(config)
}
