package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the query
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateBooking is returned when the (user, scheduled class)
	// uniqueness constraint rejects an insert
	ErrDuplicateBooking = errors.New("booking.repository: booking already exists for this user and class")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
