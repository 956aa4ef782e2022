package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/rockm4n/GymMate/internal/service/bookings/models"
)

// Service answers booking-history queries
type Service struct {
	bookingRepo     BookingRepository
	timeProvider    TimeProvider
	displayLocation *time.Location
	logger          Logger
}

// NewService creates the booking history service. displayLocation is the
// wall-clock zone used for the formatted date and time range.
func NewService(
	bookingRepo BookingRepository,
	displayLocation *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:     bookingRepo,
		timeProvider:    &RealTimeProvider{},
		displayLocation: displayLocation,
		logger:          logger,
	}
}

// GetUserBookings returns the user's booking history, newest class first,
// optionally narrowed to UPCOMING or PAST. One now is captured for the
// filter and for every row's flags.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, status=%v", req.UserID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetUserBookings: invalid status for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.timeProvider.Now()

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, filter, now)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings, now, s.displayLocation), nil
}
