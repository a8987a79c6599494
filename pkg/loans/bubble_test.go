package loans

import (
	"testing"

	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBubbleGeneratePayments(t *testing.T) {
	config := baseConfig()
	config.Amount = testutil.Dec("50000")

	payments, err := GenerateBubblePayments(config, Options{})
	require.NoError(t, err)
	require.Len(t, payments, 13)

	for i, pay := range payments[1:12] {
		assertDecimal(t, "0", pay.PrincipalAmount, "payment", i+1)
		assertDecimal(t, "50000", pay.FinalBalance, "payment", i+1)
		assertDecimal(t, pay.InterestAmount.String(), pay.PaymentAmount, "payment", i+1)
	}

	assertDecimal(t, "487.02", payments[1].InterestAmount)

	last := payments[12]
	assert.Equal(t, "2017-10-25", datetime.FormatDate(last.PaymentDate))
	assertDecimal(t, "50000", last.PrincipalAmount)
	assertDecimal(t, "50472.60", last.PaymentAmount)
	assertDecimal(t, "0", last.FinalBalance)
}

func TestBubbleSchedule(t *testing.T) {
	config := baseConfig()
	config.Amount = testutil.Dec("50000")

	schedule, err := Calculate(MethodBubble, config, Options{})
	require.NoError(t, err)

	assert.Equal(t, 12, schedule.TermLength)
	assertDecimal(t, "487.02", schedule.MinPaymentAmount)
	assertDecimal(t, "50472.60", schedule.MaxPaymentAmount)
	assertDecimal(t, "5747.13", schedule.OverAllInterest)
	assertDecimal(t, "11.49", schedule.EfficientRate)
	assertDecimal(t, "55747.13", schedule.FullAmount)
}

func TestBubbleIgnoresHolidays(t *testing.T) {
	config := ScheduleConfig{
		Amount:       testutil.Dec("1000"),
		IssueDate:    testutil.Date("2015-04-30"),
		TermLength:   2,
		Rate:         testutil.Dec("10"),
		PaymentOnDay: 31,
	}

	payments, err := GenerateBubblePayments(config, Options{IsHoliday: testutil.RussianCalendar().IsHoliday})
	require.NoError(t, err)
	assert.Equal(t, "2015-05-31", datetime.FormatDate(payments[1].PaymentDate))
	assert.Equal(t, "2015-06-30", datetime.FormatDate(payments[2].PaymentDate))
}

func TestBubbleGeneratePaymentsInvalidConfig(t *testing.T) {
	config := baseConfig()
	config.PaymentOnDay = 40
	_, err := GenerateBubblePayments(config, Options{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
