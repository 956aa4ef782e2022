package create_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/rockm4n/GymMate/internal/domain"
)

// ScheduledClassRepository locks and reads scheduled classes
type ScheduledClassRepository interface {
	LockByID(ctx context.Context, id uuid.UUID) (*domain.ScheduledClass, error)
}

// BookingRepository creates and inspects bookings
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ExistsForUserAndClass(ctx context.Context, userID, scheduledClassID uuid.UUID) (bool, error)
	CountByClass(ctx context.Context, scheduledClassID uuid.UUID) (int, error)
}

// TransactionManager runs the capacity check and insert as one
// serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics counts operation outcomes
type Metrics interface {
	IncBookingsCreated(outcome string)
}
