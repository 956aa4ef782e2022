package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rockm4n/GymMate/internal/domain"
	"github.com/rockm4n/GymMate/internal/service/schedule/models"
)

// Service answers week-schedule queries
type Service struct {
	classRepo    ScheduledClassRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the schedule query service
func NewService(
	classRepo ScheduledClassRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		classRepo:    classRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetWeek projects the Monday-to-Sunday window containing anchor. The
// classes fetch and the bookings fetch run concurrently against the same
// captured now. A nil userID or an unauthenticated bookings fetch yields
// an anonymous view with empty bookings; any other fetch failure fails
// the whole query.
func (s *Service) GetWeek(ctx context.Context, anchor time.Time, userID *uuid.UUID) (*models.WeekSchedule, error) {
	weekStart := domain.WeekStart(anchor)
	weekEnd := domain.WeekEnd(anchor)
	now := s.timeProvider.Now()

	s.logger.Info("GetWeek: fetching week %s, user=%v", weekStart.Format(domain.DateFormat), userID)

	var (
		wg       sync.WaitGroup
		classes  []*domain.ScheduledClass
		bookings []*domain.Booking
		classErr error
		bookErr  error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		classes, classErr = s.classRepo.ListInWindow(ctx, weekStart, weekEnd)
	}()

	if userID != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bookings, bookErr = s.bookingRepo.GetByUserID(ctx, *userID, domain.BookingsFilterNone, now)
		}()
	}

	wg.Wait()

	if classErr != nil {
		s.logger.Error("GetWeek: failed to fetch classes for week %s: %v", weekStart.Format(domain.DateFormat), classErr)
		return nil, fmt.Errorf("%w: GetWeek - failed to fetch classes: %v", ErrInternal, classErr)
	}
	if bookErr != nil {
		if errors.Is(bookErr, ErrUnauthenticated) {
			s.logger.Warn("GetWeek: bookings fetch unauthenticated, serving anonymous view")
			bookings = nil
		} else {
			s.logger.Error("GetWeek: failed to fetch bookings for user %s: %v", userID, bookErr)
			return nil, fmt.Errorf("%w: GetWeek - failed to fetch bookings: %v", ErrInternal, bookErr)
		}
	}

	s.logger.Info("GetWeek: projecting %d classes, %d bookings", len(classes), len(bookings))

	return &models.WeekSchedule{
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Classes:   Project(classes, bookings, now),
	}, nil
}
