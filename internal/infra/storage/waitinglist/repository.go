package waitinglist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/rockm4n/GymMate/internal/domain"
	"github.com/rockm4n/GymMate/pkg/dbmetrics"
	"github.com/rockm4n/GymMate/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

// Repository provides access to waiting list storage
type Repository struct {
	db DBExecutor
}

// NewRepository creates a waiting list repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a waiting-list entry. The (user_id, scheduled_class_id)
// unique constraint backstops the read-then-act duplicate check and
// surfaces as ErrDuplicateEntry.
func (r *Repository) Create(ctx context.Context, entry *domain.WaitingListEntry) (*domain.WaitingListEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("waiting_list").
		Columns("user_id", "scheduled_class_id").
		Values(entry.UserID, entry.ScheduledClassID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	return entry, nil
}

// ExistsForUserAndClass reports whether the user already holds an entry
// for the scheduled class
func (r *Repository) ExistsForUserAndClass(ctx context.Context, userID, scheduledClassID uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("waiting_list").
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

// OldestByClass returns the longest-waiting entry for the scheduled class.
// Used by the promotion-on-vacancy path.
func (r *Repository) OldestByClass(ctx context.Context, scheduledClassID uuid.UUID) (*domain.WaitingListEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_id", "scheduled_class_id", "created_at").
		From("waiting_list").
		Where(squirrel.Eq{"scheduled_class_id": scheduledClassID}).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: OldestByClass - build select query: %v", ErrBuildQuery, err)
	}

	var entry domain.WaitingListEntry
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.ScheduledClassID,
		&entry.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: OldestByClass - scan entry: %v", ErrScanRow, err)
	}

	return &entry, nil
}

// Delete removes a waiting-list entry
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("waiting_list").
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
		return ErrEntryNotFound
	}

	return nil
}
