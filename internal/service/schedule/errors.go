package schedule

import "errors"

var (
	// ErrUnauthenticated marks a bookings fetch whose caller identity could
	// not be resolved. The week query treats it as "no bookings" rather
	// than failing; the schedule itself is public.
	ErrUnauthenticated = errors.New("schedule: unauthenticated")

	// ErrInternal is returned when a fetch of the week fails
	ErrInternal = errors.New("schedule: internal error")
)
