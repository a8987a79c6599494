package loans

import (
	"testing"

	"github.com/iwvelando/loan-schedule/pkg/testutil"
	"github.com/shopspring/decimal"
)

// assertDecimal compares by value so 30000 and 30000.00 are equal.
func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	if !testutil.Dec(expected).Equal(actual) {
		t.Errorf("expected %s, got %s %v", expected, actual, msgAndArgs)
	}
}

func baseConfig() ScheduleConfig {
	return ScheduleConfig{
		Amount:       testutil.Dec("500000"),
		IssueDate:    testutil.Date("2016-10-25"),
		TermLength:   12,
		Rate:         testutil.Dec("11.5"),
		PaymentOnDay: 25,
	}
}

func earlyRepayment(date, amount string, paymentType PaymentType) SchedulePoint {
	return SchedulePoint{
		PaymentDate:   testutil.Date(date),
		PaymentType:   paymentType,
		PaymentAmount: testutil.Dec(amount),
	}
}
