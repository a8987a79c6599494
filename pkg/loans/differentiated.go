package loans

import (
	"fmt"

	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/mathutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DifferentiatedGenerator produces equal-principal schedules. The last
// installment takes whatever balance remains so rounding residue never
// survives maturity.
type DifferentiatedGenerator struct {
	logger *zap.Logger
	opts   Options
}

// NewDifferentiatedGenerator creates a new generator instance
func NewDifferentiatedGenerator(logger *zap.Logger, opts Options) *DifferentiatedGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DifferentiatedGenerator{logger: logger, opts: opts}
}

// Method implements Generator.
func (g *DifferentiatedGenerator) Method() Method { return MethodDifferentiated }

// GeneratePayments implements Generator.
func (g *DifferentiatedGenerator) GeneratePayments(config ScheduleConfig) ([]Payment, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	digits := g.opts.digits()
	issueDate := datetime.StartOfDay(config.IssueDate)
	fixedPrincipalPortion := mathutil.Round(config.Amount.Div(decimal.NewFromInt(int64(config.TermLength))), digits)

	g.logger.Debug(fmt.Sprintf("fixed principal portion %s over %d months", fixedPrincipalPortion, config.TermLength),
		zap.String("op", "loans.DifferentiatedGenerator.GeneratePayments"),
	)

	payments := make([]Payment, 0, config.TermLength+1)
	payments = append(payments, initialPayment(config.Amount, issueDate, config.Rate))

	for month := 1; month <= config.TermLength; month++ {
		previous := payments[len(payments)-1]
		paymentDate := datetime.NthPaymentDate(previous.PaymentDate, 1, config.PaymentOnDay)
		initialBalance := previous.FinalBalance

		principalAmount := fixedPrincipalPortion
		if month == config.TermLength || principalAmount.GreaterThan(initialBalance) {
			principalAmount = initialBalance
		}
		interestAmount := AccruedInterest(initialBalance, config.Rate, previous.PaymentDate, paymentDate, digits)

		payments = append(payments, Payment{
			PaymentDate:     paymentDate,
			InitialBalance:  initialBalance,
			InterestRate:    config.Rate,
			InterestAmount:  interestAmount,
			PrincipalAmount: principalAmount,
			PaymentAmount:   mathutil.Round(principalAmount.Add(interestAmount), digits),
			FinalBalance:    mathutil.Round(initialBalance.Sub(principalAmount), digits),
		})
	}

	return payments, nil
}

// GenerateDifferentiatedPayments generates an equal-principal payment
// sequence.
func GenerateDifferentiatedPayments(config ScheduleConfig, opts Options) ([]Payment, error) {
	return NewDifferentiatedGenerator(nil, opts).GeneratePayments(config)
}
