// Package loans computes loan repayment schedules under the annuity,
// differentiated and bubble amortization methods.
//
// Every monetary value is a decimal.Decimal rounded to the configured
// precision at each step, so results are reproducible to the cent. All
// functions are pure: the same configuration always yields the same
// schedule, and independent schedules may be computed concurrently.
package loans

import (
	"fmt"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"go.uber.org/zap"
)

// Method names an amortization method.
type Method string

const (
	// MethodAnnuity repays the loan with level installments.
	MethodAnnuity Method = constants.MethodAnnuity
	// MethodDifferentiated repays equal principal portions.
	MethodDifferentiated Method = constants.MethodDifferentiated
	// MethodBubble pays interest only and the principal at maturity.
	MethodBubble Method = constants.MethodBubble
)

// Methods lists the supported amortization methods.
var Methods = []Method{MethodAnnuity, MethodDifferentiated, MethodBubble}

// ParseMethod maps a configuration name onto a Method.
func ParseMethod(name string) (Method, error) {
	for _, method := range Methods {
		if string(method) == name {
			return method, nil
		}
	}
	return "", fmt.Errorf("%w: %q, expected one of %v", ErrUnknownMethod, name, Methods)
}

// Generator produces the payment sequence of one amortization method. The
// sequence starts with the disbursement and is ready for CalculateSchedule.
type Generator interface {
	Method() Method
	GeneratePayments(config ScheduleConfig) ([]Payment, error)
}

// NewGenerator returns the generator for method.
func NewGenerator(logger *zap.Logger, method Method, opts Options) (Generator, error) {
	switch method {
	case MethodAnnuity:
		return NewAnnuityGenerator(logger, opts), nil
	case MethodDifferentiated:
		return NewDifferentiatedGenerator(logger, opts), nil
	case MethodBubble:
		return NewBubbleGenerator(logger, opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// AmortizationScheduleGenerator generates and summarizes complete schedules
type AmortizationScheduleGenerator struct {
	logger *zap.Logger
	opts   Options
}

// NewAmortizationScheduleGenerator creates a new generator instance
func NewAmortizationScheduleGenerator(logger *zap.Logger, opts Options) *AmortizationScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortizationScheduleGenerator{logger: logger, opts: opts}
}

// GenerateSchedule creates a complete schedule for a loan with the given method
func (g *AmortizationScheduleGenerator) GenerateSchedule(method Method, config ScheduleConfig) (Schedule, error) {
	generator, err := NewGenerator(g.logger, method, g.opts)
	if err != nil {
		return Schedule{}, err
	}

	payments, err := generator.GeneratePayments(config)
	if err != nil {
		return Schedule{}, fmt.Errorf("failed to generate %s payments: %w", method, err)
	}

	schedule, err := CalculateSchedule(config, payments, g.opts)
	if err != nil {
		return Schedule{}, fmt.Errorf("failed to summarize %s schedule: %w", method, err)
	}

	g.logger.Debug(fmt.Sprintf("%s schedule: %d payments over %d months, overall interest %s",
		method, len(schedule.Payments)-1, schedule.TermLength, schedule.OverAllInterest),
		zap.String("op", "loans.GenerateSchedule"),
	)

	return schedule, nil
}

// Calculate generates and summarizes a schedule without logging.
func Calculate(method Method, config ScheduleConfig, opts Options) (Schedule, error) {
	return NewAmortizationScheduleGenerator(nil, opts).GenerateSchedule(method, config)
}
