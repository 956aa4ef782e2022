package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/rockm4n/GymMate/internal/domain"
	bookingRepo "github.com/rockm4n/GymMate/internal/infra/storage/booking"
	classRepo "github.com/rockm4n/GymMate/internal/infra/storage/scheduledclass"
)

// UseCase creates bookings with race-safe capacity enforcement
type UseCase struct {
	classRepo   ScheduledClassRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
	metrics     Metrics
}

// NewUseCase creates the booking-creation use case
func NewUseCase(
	classRepo ScheduledClassRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
	metrics Metrics,
) *UseCase {
	return &UseCase{
		classRepo:   classRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
		metrics:     metrics,
	}
}

// Execute creates a booking for the user on the scheduled class.
// The class row is locked for the duration of a serializable transaction,
// so the capacity check and the insert are indivisible: when two requests
// race for the last open spot, exactly one succeeds and the other gets
// ErrClassFull.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, class=%s", req.UserID, req.ScheduledClassID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking
	var class *domain.ScheduledClass

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Lock the class row; every concurrent creation for this class
		//    queues up behind this lock.
		locked, err := uc.classRepo.LockByID(txCtx, req.ScheduledClassID)
		if err != nil {
			if errors.Is(err, classRepo.ErrClassNotFound) {
				uc.logger.Warn("CreateBooking: class %s not found", req.ScheduledClassID)
				return ErrClassNotFound
			}
			uc.logger.Error("CreateBooking: failed to lock class %s: %v", req.ScheduledClassID, err)
			return fmt.Errorf("%w: failed to lock class: %v", ErrInternal, err)
		}
		class = locked

		// 2. Only classes in "scheduled" status accept bookings.
		if !class.IsScheduled() {
			uc.logger.Warn("CreateBooking: class %s not available, status=%s", class.ID, class.Status)
			return ErrClassNotAvailable
		}

		// 3. One booking per (user, class).
		alreadyBooked, err := uc.bookingRepo.ExistsForUserAndClass(txCtx, req.UserID, req.ScheduledClassID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check existing booking: %v", err)
			return fmt.Errorf("%w: failed to check existing booking: %v", ErrInternal, err)
		}
		if alreadyBooked {
			uc.logger.Warn("CreateBooking: user %s already booked class %s", req.UserID, class.ID)
			return ErrAlreadyBooked
		}

		// 4. Capacity check under the lock. Nil capacity means unlimited.
		count, err := uc.bookingRepo.CountByClass(txCtx, req.ScheduledClassID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count bookings: %v", err)
			return fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
		}
		if domain.IsFull(count, class.Capacity) {
			uc.logger.Warn("CreateBooking: class %s full, %d spots taken", class.ID, count)
			return ErrClassFull
		}

		// 5. Insert. The unique constraint backstops step 3.
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:           req.UserID,
			ScheduledClassID: req.ScheduledClassID,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
				return ErrAlreadyBooked
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		uc.metrics.IncBookingsCreated(outcomeForError(err))
		return nil, err
	}

	uc.metrics.IncBookingsCreated("success")
	uc.logger.Info("CreateBooking: created booking %s for user %s on class %s", result.ID, req.UserID, class.ID)

	return &Response{
		ID:               result.ID,
		UserID:           result.UserID,
		ScheduledClassID: result.ScheduledClassID,
		CreatedAt:        result.CreatedAt,
		ClassName:        class.ClassName,
		ClassStartTime:   class.StartTime,
		ClassEndTime:     class.EndTime,
		InstructorName:   class.InstructorName,
	}, nil
}

// outcomeForError maps a use case error onto a metrics outcome label
func outcomeForError(err error) string {
	switch {
	case errors.Is(err, ErrClassFull):
		return "class_full"
	case errors.Is(err, ErrAlreadyBooked):
		return "already_booked"
	case errors.Is(err, ErrClassNotFound):
		return "not_found"
	case errors.Is(err, ErrClassNotAvailable):
		return "not_available"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}
