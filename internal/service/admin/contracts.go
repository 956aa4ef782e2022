package admin

import (
	"context"
	"time"

	"github.com/rockm4n/GymMate/internal/domain"
)

// StatsRepository aggregates dashboard figures
type StatsRepository interface {
	OccupancyInWindow(ctx context.Context, startTime, endTime time.Time) (domain.OccupancySummary, error)
	TotalWaitingListCount(ctx context.Context) (int, error)
	MostPopularClasses(ctx context.Context, limit int) ([]domain.ClassPopularity, error)
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
