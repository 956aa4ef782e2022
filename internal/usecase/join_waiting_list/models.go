package join_waiting_list

import (
	"time"

	"github.com/google/uuid"
)

// Request carries the input for joining a waiting list
type Request struct {
	UserID           uuid.UUID
	ScheduledClassID uuid.UUID
}

// Response carries the created waiting list entry
type Response struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	ScheduledClassID uuid.UUID
	CreatedAt        time.Time
}
