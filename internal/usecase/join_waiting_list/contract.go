package join_waiting_list

import (
	"context"

	"github.com/google/uuid"

	"github.com/rockm4n/GymMate/internal/domain"
)

// ScheduledClassRepository reads a class with its current booking count
type ScheduledClassRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduledClass, error)
}

// BookingRepository checks whether the user already holds a spot
type BookingRepository interface {
	ExistsForUserAndClass(ctx context.Context, userID, scheduledClassID uuid.UUID) (bool, error)
}

// WaitingListRepository persists waiting list entries
type WaitingListRepository interface {
	Create(ctx context.Context, entry *domain.WaitingListEntry) (*domain.WaitingListEntry, error)
	ExistsForUserAndClass(ctx context.Context, userID, scheduledClassID uuid.UUID) (bool, error)
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics counts operation outcomes
type Metrics interface {
	IncWaitlistJoins(outcome string)
}
