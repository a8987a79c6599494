package loans

import "errors"

var (
	// ErrInvalidConfig is returned when a ScheduleConfig fails validation.
	ErrInvalidConfig = errors.New("invalid schedule configuration")

	// ErrInsufficientPayments is returned when a payment sequence is too short
	// to be summarized.
	ErrInsufficientPayments = errors.New("there must exist at least two payments to calculate a schedule")

	// ErrUnknownMethod is returned for an amortization method outside the
	// supported set.
	ErrUnknownMethod = errors.New("unknown amortization method")

	// ErrMissingPaymentAmount is returned when an operation needs a fixed
	// installment that was not configured.
	ErrMissingPaymentAmount = errors.New("payment amount is required")
)
