package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/rockm4n/GymMate/internal/domain"
)

// ClassViewModel is a scheduled class enriched with everything the
// schedule page needs: occupancy, the acting user's relationship to the
// class and precomputed action flags. Derived per request, never stored.
type ClassViewModel struct {
	ID              uuid.UUID  `json:"id"`
	ClassName       string     `json:"className"`
	ClassColor      string     `json:"classColor"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         time.Time  `json:"endTime"`
	DurationMinutes int        `json:"durationMinutes"`
	InstructorName  *string    `json:"instructorName,omitempty"`
	Capacity        *int       `json:"capacity,omitempty"` // nil = unlimited
	BookedSpots     int        `json:"bookedSpots"`
	Status          string     `json:"status"`

	UserStatus domain.UserStatus `json:"userStatus"`
	BookingID  *uuid.UUID        `json:"bookingId,omitempty"`

	IsFull         bool `json:"isFull"`
	HasStarted     bool `json:"hasStarted"`
	IsBookable     bool `json:"isBookable"`
	IsCancellable  bool `json:"isCancellable"`
	IsWaitlistable bool `json:"isWaitlistable"`
}

// WeekSchedule is one projected Monday-to-Sunday window
type WeekSchedule struct {
	WeekStart time.Time        `json:"weekStart"`
	WeekEnd   time.Time        `json:"weekEnd"`
	Classes   []ClassViewModel `json:"classes"`
}
