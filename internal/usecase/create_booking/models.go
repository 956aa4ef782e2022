package create_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request carries the input for booking creation
type Request struct {
	UserID           uuid.UUID // acting member
	ScheduledClassID uuid.UUID // class occurrence to book
}

// Response carries the created booking with denormalized class data
type Response struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	ScheduledClassID uuid.UUID
	CreatedAt        time.Time

	ClassName      string
	ClassStartTime time.Time
	ClassEndTime   time.Time
	InstructorName *string
}
