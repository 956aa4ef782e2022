package cancel_booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	// (including a concurrent deletion of the same booking)
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrUnauthorized is returned when the booking belongs to another user
	ErrUnauthorized = errors.New("cancel_booking: booking is not owned by the caller")

	// ErrTooLateToCancel is returned inside the 8-hour cancellation window
	ErrTooLateToCancel = errors.New("cancel_booking: too late to cancel this booking")

	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal is returned on persistence failures
	ErrInternal = errors.New("cancel_booking: internal error")
)
