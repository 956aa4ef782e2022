package domain

import (
	"time"

	"github.com/google/uuid"
)

// WaitingListEntry represents a request to be considered for a spot on a
// full class. A user holds at most one entry per scheduled class (unique
// constraint); entries may only be created while the class is at or over
// capacity and the user holds no booking for it.
type WaitingListEntry struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	ScheduledClassID uuid.UUID
	CreatedAt        time.Time
}
