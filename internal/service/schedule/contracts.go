package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rockm4n/GymMate/internal/domain"
	"github.com/rockm4n/GymMate/internal/service/schedule/models"
)

// ScheduledClassRepository lists class occurrences inside a time window
type ScheduledClassRepository interface {
	ListInWindow(ctx context.Context, start, end time.Time) ([]*domain.ScheduledClass, error)
}

// BookingRepository fetches the acting user's bookings. Implementations
// may return ErrUnauthenticated when the caller's identity cannot be
// resolved; the schedule then degrades to an anonymous view.
type BookingRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID, filter domain.BookingsFilter, now time.Time) ([]*domain.Booking, error)
}

// WeekFetcher produces a projected week. Satisfied by *Service.
type WeekFetcher interface {
	GetWeek(ctx context.Context, anchor time.Time, userID *uuid.UUID) (*models.WeekSchedule, error)
}

// ClassBooker dispatches a booking creation
type ClassBooker interface {
	Book(ctx context.Context, userID, scheduledClassID uuid.UUID) error
}

// BookingCanceller dispatches a booking cancellation
type BookingCanceller interface {
	Cancel(ctx context.Context, userID, bookingID uuid.UUID) error
}

// WaitingListJoiner dispatches a waiting-list join
type WaitingListJoiner interface {
	Join(ctx context.Context, userID, scheduledClassID uuid.UUID) error
}

// Notifier receives user-facing notices emitted by the orchestrator
type Notifier interface {
	NotifySuccess(message string)
	NotifyError(message string)
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
