package domain

import "time"

// CancellationWindow is how long before class start cancellation closes.
// A booking is cancellable strictly before start − CancellationWindow;
// exactly at the deadline it is not.
const CancellationWindow = 8 * time.Hour

// IsFull returns true iff capacity is set and the bookings count has
// reached it. Unlimited-capacity classes are never full.
func IsFull(bookingsCount int, capacity *int) bool {
	return capacity != nil && bookingsCount >= *capacity
}

// HasStarted returns true iff now is strictly after the class start.
// A class starting exactly now has not started.
func HasStarted(startTime, now time.Time) bool {
	return now.After(startTime)
}

// IsHistorical returns true iff the class start has passed. Used for
// past-booking display.
func IsHistorical(startTime, now time.Time) bool {
	return startTime.Before(now)
}

// CancellationDeadline returns the instant after which a booking for a
// class starting at startTime can no longer be cancelled.
func CancellationDeadline(startTime time.Time) time.Time {
	return startTime.Add(-CancellationWindow)
}

// IsCancellable returns true iff a booking record exists and now is
// strictly before the cancellation deadline. Exactly at the deadline is
// not cancellable.
func IsCancellable(startTime, now time.Time, hasBooking bool) bool {
	return hasBooking && now.Before(CancellationDeadline(startTime))
}

// IsBookable returns true iff the class has open spots, has not started
// and the user holds neither a booking nor a waiting-list entry for it.
func IsBookable(isFull, hasStarted bool, status UserStatus) bool {
	return !isFull && !hasStarted && status == UserStatusAvailable
}

// IsWaitlistable returns true iff the class is full, has not started and
// the user holds neither a booking nor a waiting-list entry for it.
func IsWaitlistable(isFull, hasStarted bool, status UserStatus) bool {
	return isFull && !hasStarted && status == UserStatusAvailable
}
