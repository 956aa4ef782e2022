package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rockm4n/GymMate/internal/domain"
)

// BookingRepository fetches a user's booking history
type BookingRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID, filter domain.BookingsFilter, now time.Time) ([]*domain.Booking, error)
}

// TimeProvider supplies the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
