package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingsFilter narrows a user's booking history by class start time
type BookingsFilter string

const (
	// BookingsFilterNone returns the full history
	BookingsFilterNone BookingsFilter = ""

	// BookingsFilterUpcoming returns bookings whose class has not started yet
	BookingsFilterUpcoming BookingsFilter = "UPCOMING"

	// BookingsFilterPast returns bookings whose class start has passed
	BookingsFilterPast BookingsFilter = "PAST"
)

// Valid reports whether the filter is one of the known values.
func (f BookingsFilter) Valid() bool {
	return f == BookingsFilterNone || f == BookingsFilterUpcoming || f == BookingsFilterPast
}

// Booking represents a confirmed reservation linking one user to one
// scheduled class. At most one booking exists per (user, scheduled class)
// pair; the database enforces this with a unique constraint.
type Booking struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	ScheduledClassID uuid.UUID
	CreatedAt        time.Time

	// Denormalized class data carried for history display
	ClassStartTime time.Time
	ClassEndTime   time.Time
	ClassName      string
	ClassColor     string
	InstructorName *string
}

// IsCancellable returns true if the booking can still be cancelled at the
// given instant (strictly before the cancellation deadline)
func (b *Booking) IsCancellable(now time.Time) bool {
	return IsCancellable(b.ClassStartTime, now, true)
}

// IsHistorical returns true if the class start has passed
func (b *Booking) IsHistorical(now time.Time) bool {
	return IsHistorical(b.ClassStartTime, now)
}
