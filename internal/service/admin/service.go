package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/rockm4n/GymMate/internal/domain"
	"github.com/rockm4n/GymMate/internal/service/admin/models"
)

// popularClassesLimit caps the dashboard ranking
const popularClassesLimit = 3

// Service assembles the admin dashboard KPIs
type Service struct {
	statsRepo    StatsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the admin dashboard service
func NewService(statsRepo StatsRepository, logger Logger) *Service {
	return &Service{
		statsRepo:    statsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetDashboard computes today's occupancy rate, the total waiting-list
// size and the top booked classes. "Today" is the calendar day in the
// schedule's reference zone.
func (s *Service) GetDashboard(ctx context.Context) (*models.DashboardResponse, error) {
	now := s.timeProvider.Now().In(domain.WeekLocation)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, domain.WeekLocation)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Millisecond)

	s.logger.Info("GetDashboard: computing KPIs for %s", dayStart.Format(domain.DateFormat))

	occupancy, err := s.statsRepo.OccupancyInWindow(ctx, dayStart, dayEnd)
	if err != nil {
		s.logger.Error("GetDashboard: failed to fetch occupancy: %v", err)
		return nil, fmt.Errorf("%w: GetDashboard - failed to fetch occupancy: %v", ErrInternal, err)
	}

	waitingCount, err := s.statsRepo.TotalWaitingListCount(ctx)
	if err != nil {
		s.logger.Error("GetDashboard: failed to fetch waiting list count: %v", err)
		return nil, fmt.Errorf("%w: GetDashboard - failed to fetch waiting list count: %v", ErrInternal, err)
	}

	popular, err := s.statsRepo.MostPopularClasses(ctx, popularClassesLimit)
	if err != nil {
		s.logger.Error("GetDashboard: failed to fetch popular classes: %v", err)
		return nil, fmt.Errorf("%w: GetDashboard - failed to fetch popular classes: %v", ErrInternal, err)
	}

	resp := &models.DashboardResponse{
		TodayOccupancyRate: occupancy.Rate(),
		TodayBookedSpots:   occupancy.BookedSpots,
		TodayTotalCapacity: occupancy.TotalCapacity,
		WaitingListCount:   waitingCount,
		MostPopularClasses: make([]models.PopularClass, 0, len(popular)),
	}
	for _, p := range popular {
		resp.MostPopularClasses = append(resp.MostPopularClasses, models.PopularClass{
			Name:         p.Name,
			BookingCount: p.BookingCount,
		})
	}

	s.logger.Info("GetDashboard: occupancy=%.1f%%, waiting=%d, top=%d classes",
		resp.TodayOccupancyRate, resp.WaitingListCount, len(resp.MostPopularClasses))
	return resp, nil
}
