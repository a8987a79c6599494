package validation

import (
	"strings"
	"testing"

	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/loans"
	"github.com/iwvelando/loan-schedule/pkg/testutil"
	"github.com/shopspring/decimal"
)

func testSchedule() loans.ScheduleConfig {
	return loans.ScheduleConfig{
		Amount:       testutil.Dec("500000"),
		IssueDate:    testutil.Date("2016-10-25"),
		TermLength:   12,
		Rate:         testutil.Dec("11.5"),
		PaymentOnDay: 25,
	}
}

func TestValidatePaymentDay(t *testing.T) {
	tests := []struct {
		day        int
		expectWarn bool
	}{
		{1, false},
		{28, false},
		{29, true},
		{31, true},
	}

	for _, tt := range tests {
		warning := ValidatePaymentDay("Car", tt.day)
		if (warning != "") != tt.expectWarn {
			t.Errorf("ValidatePaymentDay(%d) warning = %q, expected warning %t", tt.day, warning, tt.expectWarn)
		}
	}
}

func TestValidateFixedPayment(t *testing.T) {
	tests := []struct {
		name          string
		paymentAmount decimal.NullDecimal
		expectWarn    bool
	}{
		{name: "No fixed payment", expectWarn: false},
		{name: "Payment covers interest", paymentAmount: testutil.NullDec("50000"), expectWarn: false},
		{name: "Payment equals interest", paymentAmount: testutil.NullDec("4870.22"), expectWarn: true},
		{name: "Payment below interest", paymentAmount: testutil.NullDec("100"), expectWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testSchedule()
			config.PaymentAmount = tt.paymentAmount

			warning := ValidateFixedPayment("Car", config, 2)
			if (warning != "") != tt.expectWarn {
				t.Errorf("ValidateFixedPayment() warning = %q, expected warning %t", warning, tt.expectWarn)
			}
		})
	}
}

func TestValidateEarlyRepayments(t *testing.T) {
	config := testSchedule()
	config.EarlyRepayments = []loans.SchedulePoint{
		{PaymentDate: testutil.Date("2017-03-10"), PaymentType: loans.PaymentTypeMaturity, PaymentAmount: testutil.Dec("1000")},
		{PaymentDate: testutil.Date("2017-11-10"), PaymentType: loans.PaymentTypeMaturity, PaymentAmount: testutil.Dec("1000")},
		{PaymentDate: testutil.Date("2017-04-10"), PaymentType: loans.PaymentTypeAnnuityRecalculation, PaymentAmount: testutil.Dec("600000")},
	}

	warnings := ValidateEarlyRepayments("Car", config, nil)
	if len(warnings) != 2 {
		t.Fatalf("ValidateEarlyRepayments() returned %d warnings, expected 2: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "after maturity (2017-10-25)") {
		t.Errorf("unexpected maturity warning %q", warnings[0])
	}
	if !strings.Contains(warnings[1], "exceeds the loan amount") {
		t.Errorf("unexpected amount warning %q", warnings[1])
	}
}

func TestValidateEarlyRepaymentsOnMaturity(t *testing.T) {
	calendar := testutil.RussianCalendar()

	tests := []struct {
		name       string
		issueDate  string
		day        int
		repayment  string
		isHoliday  datetime.HolidayFunc
		expectWarn string
	}{
		{name: "on maturity", issueDate: "2016-10-25", day: 25, repayment: "2017-10-25", expectWarn: "(2017-10-25)"},
		{name: "day before maturity", issueDate: "2016-10-25", day: 25, repayment: "2017-10-24"},
		{name: "rolled onto rolled maturity", issueDate: "2018-10-26", day: 26, repayment: "2019-10-27",
			isHoliday: calendar.IsHoliday, expectWarn: "(2019-10-28)"},
		{name: "on unrolled maturity", issueDate: "2018-10-26", day: 26, repayment: "2019-10-26",
			isHoliday: calendar.IsHoliday, expectWarn: "(2019-10-28)"},
		{name: "working day before rolled maturity", issueDate: "2018-10-26", day: 26, repayment: "2019-10-25",
			isHoliday: calendar.IsHoliday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testSchedule()
			config.IssueDate = testutil.Date(tt.issueDate)
			config.PaymentOnDay = tt.day
			config.EarlyRepayments = []loans.SchedulePoint{
				{PaymentDate: testutil.Date(tt.repayment), PaymentType: loans.PaymentTypeMaturity, PaymentAmount: testutil.Dec("1000")},
			}

			warnings := ValidateEarlyRepayments("Car", config, tt.isHoliday)
			if tt.expectWarn == "" {
				if len(warnings) != 0 {
					t.Errorf("ValidateEarlyRepayments() unexpected warnings: %v", warnings)
				}
				return
			}
			if len(warnings) != 1 || !strings.Contains(warnings[0], "on or after maturity "+tt.expectWarn) {
				t.Errorf("ValidateEarlyRepayments() = %v, expected a maturity warning %s", warnings, tt.expectWarn)
			}
		})
	}
}

func TestValidateAll(t *testing.T) {
	late := testSchedule()
	late.PaymentOnDay = 31
	late.PaymentAmount = testutil.NullDec("10")

	validator := ConfigValidator{
		Loans: []LoanConfig{
			{Name: "Clean", Active: true, Schedule: testSchedule()},
			{Name: "Late", Active: true, Schedule: late},
			{Name: "Inactive", Active: false, Schedule: late},
		},
	}

	warnings := validator.ValidateAll()
	if len(warnings) != 2 {
		t.Fatalf("ValidateAll() returned %d warnings, expected 2: %v", len(warnings), warnings)
	}
	for _, warning := range warnings {
		if !strings.Contains(warning, "'Late'") {
			t.Errorf("ValidateAll() warned about the wrong loan: %q", warning)
		}
	}
}
