package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/rockm4n/GymMate/internal/domain"
	"github.com/rockm4n/GymMate/pkg/dbmetrics"
	"github.com/rockm4n/GymMate/pkg/psqlbuilder"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint hit.
const uniqueViolation = "23505"

// bookingColumns are the columns selected for a full booking read,
// including the denormalized class data used for history display.
var bookingColumns = []string{
	"b.id",
	"b.user_id",
	"b.scheduled_class_id",
	"b.created_at",
	"sc.start_time",
	"sc.end_time",
	"c.name",
	"c.color",
	"i.full_name",
}

// Repository provides access to bookings storage
type Repository struct {
	db DBExecutor
}

// NewRepository creates a bookings repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a booking. If the context carries an active transaction
// it is used, which is how the capacity-checked creation path keeps the
// check and the insert indivisible.
// The (user_id, scheduled_class_id) unique constraint acts as a backstop:
// a violation surfaces as ErrDuplicateBooking.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("user_id", "scheduled_class_id").
		Values(booking.UserID, booking.ScheduledClassID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateBooking
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	return booking, nil
}

// GetByID fetches a booking with its denormalized class data
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("scheduled_classes sc ON sc.id = b.scheduled_class_id").
		Join("classes c ON c.id = sc.class_id").
		LeftJoin("instructors i ON i.id = sc.instructor_id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ScheduledClassID,
		&booking.CreatedAt,
		&booking.ClassStartTime,
		&booking.ClassEndTime,
		&booking.ClassName,
		&booking.ClassColor,
		&booking.InstructorName,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return &booking, nil
}

// GetByUserID lists a user's bookings, newest class first.
// The filter compares the class start against the caller-captured now:
// UPCOMING keeps classes starting at or after now, PAST the rest.
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID, filter domain.BookingsFilter, now time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("scheduled_classes sc ON sc.id = b.scheduled_class_id").
		Join("classes c ON c.id = sc.class_id").
		LeftJoin("instructors i ON i.id = sc.instructor_id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("sc.start_time DESC")

	switch filter {
	case domain.BookingsFilterUpcoming:
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"sc.start_time": now})
	case domain.BookingsFilterPast:
		selectBuilder = selectBuilder.Where(squirrel.Lt{"sc.start_time": now})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ExistsForUserAndClass reports whether the user already holds a booking
// for the scheduled class
func (r *Repository) ExistsForUserAndClass(ctx context.Context, userID, scheduledClassID uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"user_id": userID, "scheduled_class_id": scheduledClassID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsForUserAndClass - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsForUserAndClass - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// CountByClass counts bookings held on the scheduled class. Called inside
// the creation transaction after the class row is locked, so the count is
// stable for the remainder of the transaction.
func (r *Repository) CountByClass(ctx context.Context, scheduledClassID uuid.UUID) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"scheduled_class_id": scheduledClassID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByClass - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByClass - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}

// Delete removes a booking. A missing row surfaces as ErrBookingNotFound,
// which is how a concurrent deletion of the same booking is reported.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings scans query results into a slice of bookings
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.ScheduledClassID,
			&booking.CreatedAt,
			&booking.ClassStartTime,
			&booking.ClassEndTime,
			&booking.ClassName,
			&booking.ClassColor,
			&booking.InstructorName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
