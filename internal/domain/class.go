package domain

import (
	"time"

	"github.com/google/uuid"
)

// ClassStatus lifecycle state of a scheduled class
type ClassStatus string

const (
	// ClassStatusScheduled accepts bookings and waiting-list entries
	ClassStatusScheduled ClassStatus = "scheduled"

	// ClassStatusCancelled was called off by the studio
	ClassStatusCancelled ClassStatus = "cancelled"

	// ClassStatusCompleted already took place
	ClassStatusCompleted ClassStatus = "completed"
)

// Valid reports whether the status is one of the known values.
func (s ClassStatus) Valid() bool {
	switch s {
	case ClassStatusScheduled, ClassStatusCancelled, ClassStatusCompleted:
		return true
	}
	return false
}

// ScheduledClass is one occurrence of a class on the calendar, read
// together with its class definition, instructor and current booking
// count.
type ScheduledClass struct {
	ID        uuid.UUID
	StartTime time.Time
	EndTime   time.Time

	// Capacity is the number of bookable spots; nil means unlimited
	Capacity *int

	Status ClassStatus

	// Class definition data
	ClassID         uuid.UUID
	ClassName       string
	ClassColor      string
	DurationMinutes int

	InstructorID   *uuid.UUID
	InstructorName *string

	// BookingsCount is the live count of bookings for this occurrence
	BookingsCount int

	CreatedAt time.Time
}

// IsScheduled returns true if the class still accepts bookings
func (c *ScheduledClass) IsScheduled() bool {
	return c.Status == ClassStatusScheduled
}

// HasUnlimitedCapacity returns true when no capacity cap is set
func (c *ScheduledClass) HasUnlimitedCapacity() bool {
	return c.Capacity == nil
}

// IsFull returns true when every bookable spot is taken
func (c *ScheduledClass) IsFull() bool {
	return IsFull(c.BookingsCount, c.Capacity)
}

// HasStarted returns true if the class start lies strictly before now
func (c *ScheduledClass) HasStarted(now time.Time) bool {
	return HasStarted(c.StartTime, now)
}
