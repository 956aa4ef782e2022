// Package stats holds the read-only aggregate queries behind the admin
// dashboard KPIs.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/rockm4n/GymMate/internal/domain"
	"github.com/rockm4n/GymMate/pkg/psqlbuilder"
)

// Repository provides aggregated occupancy and popularity reads
type Repository struct {
	db DBExecutor
}

// NewRepository creates a stats repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// OccupancyInWindow sums booked spots against total capacity over
// capacity-limited scheduled classes starting within [startTime, endTime].
func (r *Repository) OccupancyInWindow(ctx context.Context, startTime, endTime time.Time) (domain.OccupancySummary, error) {
	query, args, err := psqlbuilder.Select(
		"COALESCE(SUM((SELECT COUNT(*) FROM bookings b WHERE b.scheduled_class_id = sc.id)), 0)",
		"COALESCE(SUM(sc.capacity), 0)",
	).
		From("scheduled_classes sc").
		Where(squirrel.GtOrEq{"sc.start_time": startTime}).
		Where(squirrel.LtOrEq{"sc.start_time": endTime}).
		Where(squirrel.Eq{"sc.status": domain.ClassStatusScheduled}).
		Where("sc.capacity IS NOT NULL").
		ToSql()
	if err != nil {
		return domain.OccupancySummary{}, fmt.Errorf("%w: OccupancyInWindow - build select query: %v", ErrBuildQuery, err)
	}

	var summary domain.OccupancySummary
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&summary.BookedSpots, &summary.TotalCapacity)
	if err != nil {
		return domain.OccupancySummary{}, fmt.Errorf("%w: OccupancyInWindow - execute query: %v", ErrExecQuery, err)
	}

	return summary, nil
}

// TotalWaitingListCount counts all waiting-list entries.
func (r *Repository) TotalWaitingListCount(ctx context.Context) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("waiting_list").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: TotalWaitingListCount - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: TotalWaitingListCount - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}

// MostPopularClasses ranks class definitions by all-time booking count.
func (r *Repository) MostPopularClasses(ctx context.Context, limit int) ([]domain.ClassPopularity, error) {
	query, args, err := psqlbuilder.Select("c.name", "COUNT(b.id) AS booking_count").
		From("bookings b").
		Join("scheduled_classes sc ON sc.id = b.scheduled_class_id").
		Join("classes c ON c.id = sc.class_id").
		GroupBy("c.name").
		OrderBy("booking_count DESC", "c.name ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: MostPopularClasses - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: MostPopularClasses - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ranking := make([]domain.ClassPopularity, 0, limit)
	for rows.Next() {
		var entry domain.ClassPopularity
		if err := rows.Scan(&entry.Name, &entry.BookingCount); err != nil {
			return nil, fmt.Errorf("%w: MostPopularClasses - scan row: %v", ErrScanRow, err)
		}
		ranking = append(ranking, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: MostPopularClasses - rows error: %v", ErrScanRow, err)
	}

	return ranking, nil
}
