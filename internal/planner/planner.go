// Package planner computes the repayment schedules of every configured loan.
package planner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/loan-schedule/internal/config"
	"github.com/iwvelando/loan-schedule/pkg/loans"
	"github.com/iwvelando/loan-schedule/pkg/metrics"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result holds the computed schedule of one loan.
type Result struct {
	Name     string
	Method   loans.Method
	Schedule loans.Schedule
	// MaxLoanAmount is the largest amount the configured fixed installment
	// could repay. It is only set for annuity loans with a payment amount.
	MaxLoanAmount decimal.NullDecimal
}

// GetSchedules computes the schedules of all active loans concurrently.
// Results keep the order of the configuration. The first failure cancels the
// remaining work and is returned.
func GetSchedules(ctx context.Context, logger *zap.Logger, conf config.Configuration, recorder *metrics.Recorder) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	opts, err := conf.ScheduleOptions()
	if err != nil {
		return nil, fmt.Errorf("failed to build holiday calendar: %w", err)
	}

	var active []config.Loan
	for _, loan := range conf.Loans {
		if !loan.Active {
			logger.Debug(fmt.Sprintf("skipping loan %s because it is inactive", loan.Name),
				zap.String("op", "planner.GetSchedules"),
			)
			continue
		}
		active = append(active, loan)
	}

	results := make([]Result, len(active))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i, loan := range active {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			result, err := schedule(logger, loan, opts, recorder)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	logger.Info(fmt.Sprintf("computed %d schedules", len(results)),
		zap.String("op", "planner.GetSchedules"),
		zap.Int("skipped", len(conf.Loans)-len(active)),
	)

	return results, nil
}

func schedule(logger *zap.Logger, loan config.Loan, opts loans.Options, recorder *metrics.Recorder) (Result, error) {
	loanLogger := logger.With(
		zap.String("loan", loan.Name),
		zap.String("method", loan.Method),
	)

	start := time.Now()
	computed, err := loan.GetSchedule(loanLogger, opts)
	if err != nil {
		recorder.ObserveFailure(loan.Method, failureReason(err))
		loanLogger.Error("failed to compute schedule",
			zap.String("op", "planner.schedule"),
			zap.Error(err),
		)
		return Result{}, err
	}
	elapsed := time.Since(start)

	method, _ := loan.LoanMethod()
	result := Result{
		Name:     loan.Name,
		Method:   method,
		Schedule: computed,
	}

	if method == loans.MethodAnnuity {
		result.MaxLoanAmount, err = loan.MaxLoanAmount(opts)
		if err != nil {
			return Result{}, err
		}
	}

	recorder.ObserveSchedule(loan.Name, string(method), len(computed.Payments)-1,
		computed.OverAllInterest, computed.EfficientRate, elapsed)

	loanLogger.Debug(fmt.Sprintf("schedule of %s over %d months with overall interest %s",
		computed.Amount, computed.TermLength, computed.OverAllInterest),
		zap.String("op", "planner.schedule"),
		zap.Duration("elapsed", elapsed),
	)

	return result, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, loans.ErrUnknownMethod):
		return "unknown_method"
	case errors.Is(err, loans.ErrInvalidConfig):
		return "invalid_config"
	case errors.Is(err, loans.ErrInsufficientPayments):
		return "insufficient_payments"
	default:
		return "other"
	}
}
