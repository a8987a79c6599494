package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/loans"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testLoan() Loan {
	return Loan{
		Name:         "Test Loan",
		Active:       true,
		Method:       "annuity",
		Amount:       decimal.NewFromInt(500000),
		Rate:         decimal.RequireFromString("11.5"),
		Term:         12,
		PaymentOnDay: 25,
		IssueDate:    datetime.Date(2016, 10, 25),
		EarlyRepayments: []EarlyRepayment{
			{Date: datetime.Date(2017, 3, 10), Amount: decimal.NewFromInt(100000), Type: "annuity"},
		},
	}
}

func TestLoanScheduleConfig(t *testing.T) {
	config, err := testLoan().ScheduleConfig()
	require.NoError(t, err)

	assert.Equal(t, 12, config.TermLength)
	assert.Equal(t, 25, config.PaymentOnDay)
	assert.True(t, config.Amount.Equal(decimal.NewFromInt(500000)))
	require.Len(t, config.EarlyRepayments, 1)
	assert.Equal(t, loans.PaymentTypeAnnuityRecalculation, config.EarlyRepayments[0].PaymentType)
	assert.Equal(t, "2017-03-10", datetime.FormatDate(config.EarlyRepayments[0].PaymentDate))
}

func TestLoanScheduleConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Loan)
	}{
		{name: "unknown repayment type", mutate: func(l *Loan) { l.EarlyRepayments[0].Type = "sometimes" }},
		{name: "repayment before issue", mutate: func(l *Loan) { l.EarlyRepayments[0].Date = datetime.Date(2016, 1, 1) }},
		{name: "zero term", mutate: func(l *Loan) { l.Term = 0 }},
		{name: "missing issue date", mutate: func(l *Loan) { l.IssueDate = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan := testLoan()
			tt.mutate(&loan)
			_, err := loan.ScheduleConfig()
			assert.ErrorIs(t, err, loans.ErrInvalidConfig)
			assert.Contains(t, err.Error(), "Test Loan")
		})
	}
}

func TestLoanGetSchedule(t *testing.T) {
	schedule, err := testLoan().GetSchedule(zap.NewNop(), loans.Options{})
	require.NoError(t, err)

	assert.Equal(t, 11, schedule.TermLength)
	assert.Equal(t, "26601.37", schedule.OverAllInterest.StringFixed(2))
}

func TestLoanGetScheduleUnknownMethod(t *testing.T) {
	loan := testLoan()
	loan.Method = "balloon"

	_, err := loan.GetSchedule(nil, loans.Options{})
	assert.ErrorIs(t, err, loans.ErrUnknownMethod)
}

func TestLoanMaxLoanAmount(t *testing.T) {
	loan := Loan{
		Name:          "Max",
		Rate:          decimal.RequireFromString("12.9"),
		Term:          60,
		PaymentAmount: decimal.NewNullDecimal(decimal.RequireFromString("2497.21")),
	}

	amount, err := loan.MaxLoanAmount(loans.Options{})
	require.NoError(t, err)
	require.True(t, amount.Valid)
	assert.Equal(t, "109999.97", amount.Decimal.StringFixed(2))

	loan.PaymentAmount = decimal.NullDecimal{}
	amount, err = loan.MaxLoanAmount(loans.Options{})
	require.NoError(t, err)
	assert.False(t, amount.Valid)

	loan.PaymentAmount = decimal.NewNullDecimal(decimal.NewFromInt(100))
	loan.Term = 0
	_, err = loan.MaxLoanAmount(loans.Options{})
	assert.ErrorIs(t, err, loans.ErrInvalidConfig)
}

func TestCalendarConfigBuild(t *testing.T) {
	empty := CalendarConfig{}
	cal, err := empty.Build()
	require.NoError(t, err)
	assert.Nil(t, cal)

	merged := CalendarConfig{
		File:     filepath.Join("testdata", "ru.yaml"),
		Holidays: []string{"2019-01-03"},
	}
	cal, err = merged.Build()
	require.NoError(t, err)
	assert.True(t, cal.IsHoliday(datetime.Date(2019, 1, 2)))
	assert.True(t, cal.IsHoliday(datetime.Date(2019, 1, 3)))
	assert.True(t, cal.IsHoliday(datetime.Date(2019, 1, 5)))
	assert.False(t, cal.IsHoliday(datetime.Date(2019, 1, 9)))

	missing := CalendarConfig{File: filepath.Join("testdata", "missing.yaml")}
	_, err = missing.Build()
	assert.Error(t, err)
}
