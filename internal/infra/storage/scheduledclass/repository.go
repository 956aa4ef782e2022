package scheduledclass

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/rockm4n/GymMate/internal/domain"
	"github.com/rockm4n/GymMate/pkg/dbmetrics"
	"github.com/rockm4n/GymMate/pkg/psqlbuilder"
)

// classColumns select a scheduled class with its class definition,
// optional instructor and current bookings count.
var classColumns = []string{
	"sc.id",
	"sc.start_time",
	"sc.end_time",
	"sc.capacity",
	"sc.status",
	"sc.created_at",
	"c.id",
	"c.name",
	"c.color",
	"c.duration_minutes",
	"i.id",
	"i.full_name",
	"(SELECT COUNT(*) FROM bookings b WHERE b.scheduled_class_id = sc.id) AS bookings_count",
}

// Repository provides access to scheduled classes storage
type Repository struct {
	db DBExecutor
}

// NewRepository creates a scheduled classes repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches one scheduled class with aggregates
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduledClass, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(classColumns...).
		From("scheduled_classes sc").
		Join("classes c ON c.id = sc.class_id").
		LeftJoin("instructors i ON i.id = sc.instructor_id").
		Where(squirrel.Eq{"sc.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanClass(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// LockByID locks the scheduled class row (SELECT ... FOR UPDATE) and
// returns it with aggregates. Must run inside a transaction: the lock
// keeps the capacity check and the booking insert indivisible, so two
// concurrent requests for the last open spot cannot both succeed.
func (r *Repository) LockByID(ctx context.Context, id uuid.UUID) (*domain.ScheduledClass, error) {
	if !dbmetrics.IsInTransaction(ctx) {
		return nil, fmt.Errorf("%w: LockByID - requires an active transaction", ErrExecQuery)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(classColumns...).
		From("scheduled_classes sc").
		Join("classes c ON c.id = sc.class_id").
		LeftJoin("instructors i ON i.id = sc.instructor_id").
		Where(squirrel.Eq{"sc.id": id}).
		Suffix("FOR UPDATE OF sc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LockByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanClass(executor.QueryRowContext(ctx, query, args...), "LockByID")
}

// ListInWindow lists scheduled classes starting within [startTime, endTime],
// ordered by start time. Used for the weekly schedule view; public data,
// no auth involved.
func (r *Repository) ListInWindow(ctx context.Context, startTime, endTime time.Time) ([]*domain.ScheduledClass, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(classColumns...).
		From("scheduled_classes sc").
		Join("classes c ON c.id = sc.class_id").
		LeftJoin("instructors i ON i.id = sc.instructor_id").
		Where(squirrel.GtOrEq{"sc.start_time": startTime}).
		Where(squirrel.LtOrEq{"sc.start_time": endTime}).
		OrderBy("sc.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListInWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	classes := make([]*domain.ScheduledClass, 0)
	for rows.Next() {
		class, err := scanClassFields(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListInWindow - scan row: %v", ErrScanRow, err)
		}
		classes = append(classes, class)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListInWindow - rows error: %v", ErrScanRow, err)
	}

	return classes, nil
}

func (r *Repository) scanClass(row *sql.Row, method string) (*domain.ScheduledClass, error) {
	class, err := scanClassFields(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan scheduled class: %v", ErrScanRow, method, err)
	}
	return class, nil
}

// scanClassFields maps one result row onto a domain.ScheduledClass,
// normalizing the nullable capacity and instructor columns.
func scanClassFields(scan func(dest ...interface{}) error) (*domain.ScheduledClass, error) {
	var (
		class          domain.ScheduledClass
		capacity       sql.NullInt64
		instructorID   *uuid.UUID
		instructorName sql.NullString
	)

	err := scan(
		&class.ID,
		&class.StartTime,
		&class.EndTime,
		&capacity,
		&class.Status,
		&class.CreatedAt,
		&class.ClassID,
		&class.ClassName,
		&class.ClassColor,
		&class.DurationMinutes,
		&instructorID,
		&instructorName,
		&class.BookingsCount,
	)
	if err != nil {
		return nil, err
	}

	if capacity.Valid {
		cap := int(capacity.Int64)
		class.Capacity = &cap
	}
	class.InstructorID = instructorID
	if instructorName.Valid {
		class.InstructorName = &instructorName.String
	}

	return &class, nil
}
