package bookings

import "errors"

var (
	// ErrInvalidInput is returned on a malformed request (unknown filter,
	// missing user)
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal is returned on persistence failures
	ErrInternal = errors.New("bookings: internal error")
)
