package loans

import (
	"fmt"

	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// CalculateSchedule summarizes a generated payment sequence. payments[0] must
// be the disbursement and at least one real payment must follow it.
//
// The minimum and maximum payment compare only the first real payment with
// the last one, i.e. a typical installment against the final one.
func CalculateSchedule(config ScheduleConfig, payments []Payment, opts Options) (Schedule, error) {
	if len(payments) < 2 {
		return Schedule{}, fmt.Errorf("%w: got %d", ErrInsufficientPayments, len(payments))
	}

	digits := opts.digits()
	initial := payments[0]
	first := payments[1]
	last := payments[len(payments)-1]

	amount := mathutil.Round(config.Amount, digits)

	overAllInterest := decimal.Zero
	for _, pay := range payments {
		overAllInterest = mathutil.Round(overAllInterest.Add(pay.InterestAmount), digits)
	}

	return Schedule{
		Amount: amount,
		TermLength: datetime.MonthsBetween(
			datetime.StartOfMonth(initial.PaymentDate),
			datetime.StartOfMonth(last.PaymentDate),
		),
		MinPaymentAmount: mathutil.Round(mathutil.Min(first.PaymentAmount, last.PaymentAmount), digits),
		MaxPaymentAmount: mathutil.Round(mathutil.Max(first.PaymentAmount, last.PaymentAmount), digits),
		OverAllInterest:  overAllInterest,
		EfficientRate:    mathutil.CalculatePercentage(overAllInterest, amount, digits),
		FullAmount:       mathutil.Round(overAllInterest.Add(amount), digits),
		Payments:         payments,
	}, nil
}
