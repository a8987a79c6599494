package loans

import (
	"fmt"

	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/mathutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BubbleGenerator produces interest-only schedules: every installment pays
// the interest of its month and the last one also repays the principal.
type BubbleGenerator struct {
	logger *zap.Logger
	opts   Options
}

// NewBubbleGenerator creates a new generator instance
func NewBubbleGenerator(logger *zap.Logger, opts Options) *BubbleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BubbleGenerator{logger: logger, opts: opts}
}

// Method implements Generator.
func (g *BubbleGenerator) Method() Method { return MethodBubble }

// GeneratePayments implements Generator.
func (g *BubbleGenerator) GeneratePayments(config ScheduleConfig) ([]Payment, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	digits := g.opts.digits()
	rate := mathutil.Round(config.Rate, digits)
	issueDate := datetime.StartOfDay(config.IssueDate)

	payments := make([]Payment, 0, config.TermLength+1)
	payments = append(payments, initialPayment(config.Amount, issueDate, config.Rate))

	for month := 1; month <= config.TermLength; month++ {
		previous := payments[len(payments)-1]
		paymentDate := datetime.NthPaymentDate(previous.PaymentDate, 1, config.PaymentOnDay)
		initialBalance := previous.FinalBalance

		principalAmount := decimal.Zero
		if month == config.TermLength {
			principalAmount = initialBalance
		}
		interestAmount := AccruedInterest(initialBalance, rate, previous.PaymentDate, paymentDate, digits)

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

	g.logger.Debug(fmt.Sprintf("generated %d bubble payments", len(payments)-1),
		zap.String("op", "loans.BubbleGenerator.GeneratePayments"),
	)

	return payments, nil
}

// GenerateBubblePayments generates an interest-only payment sequence.
func GenerateBubblePayments(config ScheduleConfig, opts Options) ([]Payment, error) {
	return NewBubbleGenerator(nil, opts).GeneratePayments(config)
}
