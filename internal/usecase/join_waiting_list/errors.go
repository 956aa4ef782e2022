package join_waiting_list

import "errors"

var (
	// ErrClassNotFound is returned when the scheduled class does not exist
	ErrClassNotFound = errors.New("join_waiting_list: scheduled class not found")

	// ErrClassNotFull is returned when the class still has open spots and
	// when the class cannot accept a waiting list at all (wrong status,
	// unlimited capacity)
	ErrClassNotFull = errors.New("join_waiting_list: class is not full")

	// ErrAlreadyBooked is returned when the user already holds a booking
	// on the class
	ErrAlreadyBooked = errors.New("join_waiting_list: user already booked this class")

	// ErrAlreadyOnWaitingList is returned when the user already has an
	// entry for the class
	ErrAlreadyOnWaitingList = errors.New("join_waiting_list: user already on the waiting list")

	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("join_waiting_list: invalid input data")

	// ErrInternal is returned on persistence failures
	ErrInternal = errors.New("join_waiting_list: internal error")
)
