package join_waiting_list

import (
	"context"
	"errors"
	"fmt"

	"github.com/rockm4n/GymMate/internal/domain"
	classRepo "github.com/rockm4n/GymMate/internal/infra/storage/scheduledclass"
	waitlistRepo "github.com/rockm4n/GymMate/internal/infra/storage/waitinglist"
)

// UseCase adds users to the waiting list of a full class
type UseCase struct {
	classRepo    ScheduledClassRepository
	bookingRepo  BookingRepository
	waitlistRepo WaitingListRepository
	logger       Logger
	metrics      Metrics
}

// NewUseCase creates the waiting-list-join use case
func NewUseCase(
	classRepo ScheduledClassRepository,
	bookingRepo BookingRepository,
	waitlistRepo WaitingListRepository,
	logger Logger,
	metrics Metrics,
) *UseCase {
	return &UseCase{
		classRepo:    classRepo,
		bookingRepo:  bookingRepo,
		waitlistRepo: waitlistRepo,
		logger:       logger,
		metrics:      metrics,
	}
}

// Execute adds the user to the class waiting list. The preconditions are
// read-then-act rather than locked; the unique constraint on
// (user_id, scheduled_class_id) backstops the duplicate check.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("JoinWaitingList: user=%s, class=%s", req.UserID, req.ScheduledClassID)

	resp, err := uc.execute(ctx, req)
	if err != nil {
		uc.metrics.IncWaitlistJoins(outcomeForError(err))
		return nil, err
	}

	uc.metrics.IncWaitlistJoins("success")
	uc.logger.Info("JoinWaitingList: created entry %s for user %s on class %s", resp.ID, req.UserID, req.ScheduledClassID)
	return resp, nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("JoinWaitingList: validation failed: %v", err)
		return nil, err
	}

	// 1. The class must exist.
	class, err := uc.classRepo.GetByID(ctx, req.ScheduledClassID)
	if err != nil {
		if errors.Is(err, classRepo.ErrClassNotFound) {
			uc.logger.Warn("JoinWaitingList: class %s not found", req.ScheduledClassID)
			return nil, ErrClassNotFound
		}
		uc.logger.Error("JoinWaitingList: failed to fetch class %s: %v", req.ScheduledClassID, err)
		return nil, fmt.Errorf("%w: failed to fetch class: %v", ErrInternal, err)
	}

	// 2. Cancelled and completed classes never accept a waiting list.
	if !class.IsScheduled() {
		uc.logger.Warn("JoinWaitingList: class %s not scheduled, status=%s", class.ID, class.Status)
		return nil, ErrClassNotFull
	}

	// 3. Holders of a booking have nothing to wait for.
	alreadyBooked, err := uc.bookingRepo.ExistsForUserAndClass(ctx, req.UserID, req.ScheduledClassID)
	if err != nil {
		uc.logger.Error("JoinWaitingList: failed to check existing booking: %v", err)
		return nil, fmt.Errorf("%w: failed to check existing booking: %v", ErrInternal, err)
	}
	if alreadyBooked {
		uc.logger.Warn("JoinWaitingList: user %s already booked class %s", req.UserID, class.ID)
		return nil, ErrAlreadyBooked
	}

	// 4. The list opens only once the class is at or over capacity.
	// Unlimited classes are never full.
	if !domain.IsFull(class.BookingsCount, class.Capacity) {
		uc.logger.Warn("JoinWaitingList: class %s not full, %d booked", class.ID, class.BookingsCount)
		return nil, ErrClassNotFull
	}

	// 5. One entry per (user, class).
	alreadyWaiting, err := uc.waitlistRepo.ExistsForUserAndClass(ctx, req.UserID, req.ScheduledClassID)
	if err != nil {
		uc.logger.Error("JoinWaitingList: failed to check existing entry: %v", err)
		return nil, fmt.Errorf("%w: failed to check existing entry: %v", ErrInternal, err)
	}
	if alreadyWaiting {
		uc.logger.Warn("JoinWaitingList: user %s already on waiting list for class %s", req.UserID, class.ID)
		return nil, ErrAlreadyOnWaitingList
	}

	// 6. Insert. The unique constraint backstops step 5.
	entry, err := uc.waitlistRepo.Create(ctx, &domain.WaitingListEntry{
		UserID:           req.UserID,
		ScheduledClassID: req.ScheduledClassID,
	})
	if err != nil {
		if errors.Is(err, waitlistRepo.ErrDuplicateEntry) {
			return nil, ErrAlreadyOnWaitingList
		}
		uc.logger.Error("JoinWaitingList: failed to create entry: %v", err)
		return nil, fmt.Errorf("%w: failed to create entry: %v", ErrInternal, err)
	}

	return &Response{
		ID:               entry.ID,
		UserID:           entry.UserID,
		ScheduledClassID: entry.ScheduledClassID,
		CreatedAt:        entry.CreatedAt,
	}, nil
}

// outcomeForError maps a use case error onto a metrics outcome label
func outcomeForError(err error) string {
	switch {
	case errors.Is(err, ErrClassNotFound):
		return "not_found"
	case errors.Is(err, ErrClassNotFull):
		return "not_full"
	case errors.Is(err, ErrAlreadyBooked):
		return "already_booked"
	case errors.Is(err, ErrAlreadyOnWaitingList):
		return "already_waiting"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}
