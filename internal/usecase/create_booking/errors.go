package create_booking

import "errors"

var (
	// ErrClassNotFound is returned when the scheduled class does not exist
	ErrClassNotFound = errors.New("create_booking: scheduled class not found")

	// ErrClassNotAvailable is returned when the class is cancelled or completed
	ErrClassNotAvailable = errors.New("create_booking: class is not available for booking")

	// ErrClassFull is returned when the class has no open spots left
	ErrClassFull = errors.New("create_booking: class is fully booked")

	// ErrAlreadyBooked is returned when the user already holds a booking for the class
	ErrAlreadyBooked = errors.New("create_booking: user has already booked this class")

	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on persistence failures
	ErrInternal = errors.New("create_booking: internal error")
)
