package cancel_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rockm4n/GymMate/internal/domain"
)

// BookingRepository reads, deletes and (for promotion) creates bookings
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// WaitingListRepository supplies promotion candidates
type WaitingListRepository interface {
	OldestByClass(ctx context.Context, scheduledClassID uuid.UUID) (*domain.WaitingListEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionManager keeps the delete and the promotion in one transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics counts operation outcomes
type Metrics interface {
	IncBookingsCancelled(outcome string)
}

// RealTimeProvider is the production time source
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
