// Package output provides utilities for formatting and displaying loan
// schedules.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/loan-schedule/internal/planner"
	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/format"
	"github.com/iwvelando/loan-schedule/pkg/loans"
	"gopkg.in/yaml.v3"
)

const columnSeparator = "\t|\t"

// PrintSchedule sends a plain-text rendering of schedule to sink, one line
// per call: two summary lines, then one line per payment. A nil sink prints
// to standard output.
func PrintSchedule(schedule loans.Schedule, sink func(string)) {
	printSchedule(schedule, sink, false)
}

// PrintAnnuitySchedule is PrintSchedule with an extra column holding the
// annuity installment the balance and remaining term would require.
func PrintAnnuitySchedule(schedule loans.Schedule, sink func(string)) {
	printSchedule(schedule, sink, true)
}

func printSchedule(schedule loans.Schedule, sink func(string), annuityColumn bool) {
	if sink == nil {
		sink = func(line string) { fmt.Println(line) }
	}

	sink(fmt.Sprintf("Payment = {%s, %s}, Term = %d",
		schedule.MinPaymentAmount, schedule.MaxPaymentAmount, schedule.TermLength))
	sink(fmt.Sprintf("OverallInterest = %s , EfficientRate = %s",
		schedule.OverAllInterest, schedule.EfficientRate))

	for _, pay := range schedule.Payments {
		columns := []string{
			datetime.FormatDate(pay.PaymentDate),
			pay.InitialBalance.String(),
			pay.PaymentAmount.String(),
		}
		if annuityColumn {
			columns = append(columns, pay.AnnuityPaymentAmount.String())
		}
		columns = append(columns,
			pay.PrincipalAmount.String(),
			pay.InterestAmount.String(),
			pay.FinalBalance.String(),
		)
		sink(strings.Join(columns, columnSeparator))
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, results []planner.Result, digits int32) {
	for _, result := range results {
		schedule := result.Schedule
		_, _ = fmt.Fprintf(w, "--- Schedule for loan %s (%s) ---\n", result.Name, result.Method)
		_, _ = fmt.Fprintf(w, "Amount %s repaid in %d payments over %d months\n",
			format.Amount(schedule.Amount, digits), len(schedule.Payments)-1, schedule.TermLength)
		_, _ = fmt.Fprintf(w, "Payment %s - %s, overall interest %s (%s), full amount %s\n",
			format.Amount(schedule.MinPaymentAmount, digits),
			format.Amount(schedule.MaxPaymentAmount, digits),
			format.Amount(schedule.OverAllInterest, digits),
			format.Percent(schedule.EfficientRate, digits),
			format.Amount(schedule.FullAmount, digits))
		if result.MaxLoanAmount.Valid {
			_, _ = fmt.Fprintf(w, "Maximum loan amount for this payment %s\n",
				format.Amount(result.MaxLoanAmount.Decimal, digits))
		}

		_, _ = fmt.Fprintf(w, "Date       | Initial balance | Payment | Principal | Interest | Final balance\n")
		_, _ = fmt.Fprintf(w, "__________ | _______________ | _______ | _________ | ________ | _____________\n")
		for _, pay := range schedule.Payments[1:] {
			_, _ = fmt.Fprintf(w, "%s | %s | %s | %s | %s | %s\n",
				datetime.FormatDate(pay.PaymentDate),
				format.Amount(pay.InitialBalance, digits),
				format.Amount(pay.PaymentAmount, digits),
				format.Amount(pay.PrincipalAmount, digits),
				format.Amount(pay.InterestAmount, digits),
				format.Amount(pay.FinalBalance, digits))
		}
		if len(results) > 1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
}

var csvHeader = []string{
	"loan", "method", "number", "date", "initial balance", "payment",
	"annuity payment", "principal", "interest", "final balance",
}

// CsvFormat outputs every payment of every loan in comma-separated value
// format, one row per payment.
func CsvFormat(w io.Writer, results []planner.Result, digits int32) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, result := range results {
		for i, pay := range result.Schedule.Payments[1:] {
			record := []string{
				result.Name,
				string(result.Method),
				strconv.Itoa(i + 1),
				datetime.FormatDate(pay.PaymentDate),
				pay.InitialBalance.StringFixed(digits),
				pay.PaymentAmount.StringFixed(digits),
				pay.AnnuityPaymentAmount.StringFixed(digits),
				pay.PrincipalAmount.StringFixed(digits),
				pay.InterestAmount.StringFixed(digits),
				pay.FinalBalance.StringFixed(digits),
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

type yamlSchedule struct {
	Name             string        `yaml:"name"`
	Method           string        `yaml:"method"`
	Amount           string        `yaml:"amount"`
	TermLength       int           `yaml:"termLength"`
	MinPaymentAmount string        `yaml:"minPaymentAmount"`
	MaxPaymentAmount string        `yaml:"maxPaymentAmount"`
	OverAllInterest  string        `yaml:"overAllInterest"`
	EfficientRate    string        `yaml:"efficientRate"`
	FullAmount       string        `yaml:"fullAmount"`
	MaxLoanAmount    string        `yaml:"maxLoanAmount,omitempty"`
	Payments         []yamlPayment `yaml:"payments"`
}

type yamlPayment struct {
	Date                 string `yaml:"date"`
	InitialBalance       string `yaml:"initialBalance"`
	InterestRate         string `yaml:"interestRate"`
	PaymentAmount        string `yaml:"paymentAmount"`
	AnnuityPaymentAmount string `yaml:"annuityPaymentAmount,omitempty"`
	PrincipalAmount      string `yaml:"principalAmount"`
	InterestAmount       string `yaml:"interestAmount"`
	FinalBalance         string `yaml:"finalBalance"`
}

// YamlFormat outputs the schedules as a YAML document. Amounts are strings
// so no precision is lost.
func YamlFormat(w io.Writer, results []planner.Result, digits int32) error {
	document := make([]yamlSchedule, 0, len(results))
	for _, result := range results {
		schedule := result.Schedule
		entry := yamlSchedule{
			Name:             result.Name,
			Method:           string(result.Method),
			Amount:           schedule.Amount.StringFixed(digits),
			TermLength:       schedule.TermLength,
			MinPaymentAmount: schedule.MinPaymentAmount.StringFixed(digits),
			MaxPaymentAmount: schedule.MaxPaymentAmount.StringFixed(digits),
			OverAllInterest:  schedule.OverAllInterest.StringFixed(digits),
			EfficientRate:    schedule.EfficientRate.StringFixed(digits),
			FullAmount:       schedule.FullAmount.StringFixed(digits),
		}
		if result.MaxLoanAmount.Valid {
			entry.MaxLoanAmount = result.MaxLoanAmount.Decimal.StringFixed(digits)
		}
		for _, pay := range schedule.Payments {
			payment := yamlPayment{
				Date:            datetime.FormatDate(pay.PaymentDate),
				InitialBalance:  pay.InitialBalance.StringFixed(digits),
				InterestRate:    pay.InterestRate.String(),
				PaymentAmount:   pay.PaymentAmount.StringFixed(digits),
				PrincipalAmount: pay.PrincipalAmount.StringFixed(digits),
				InterestAmount:  pay.InterestAmount.StringFixed(digits),
				FinalBalance:    pay.FinalBalance.StringFixed(digits),
			}
			if result.Method == loans.MethodAnnuity {
				payment.AnnuityPaymentAmount = pay.AnnuityPaymentAmount.StringFixed(digits)
			}
			entry.Payments = append(entry.Payments, payment)
		}
		document = append(document, entry)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(document); err != nil {
		return err
	}
	return encoder.Close()
}
