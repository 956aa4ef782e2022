package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rockm4n/GymMate/internal/domain"
	bookingRepo "github.com/rockm4n/GymMate/internal/infra/storage/booking"
	waitlistRepo "github.com/rockm4n/GymMate/internal/infra/storage/waitinglist"
)

// UseCase cancels bookings, gated by ownership and the cancellation window
type UseCase struct {
	bookingRepo  BookingRepository
	waitlistRepo WaitingListRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
	metrics      Metrics

	// autoPromote moves the oldest waiting-list entry into the freed spot
	// within the same transaction. Config-gated, off by default.
	autoPromote bool
}

// NewUseCase creates the cancellation use case
func NewUseCase(
	bookingRepo BookingRepository,
	waitlistRepo WaitingListRepository,
	txManager TransactionManager,
	autoPromote bool,
	logger Logger,
	metrics Metrics,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		waitlistRepo: waitlistRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		metrics:      metrics,
		autoPromote:  autoPromote,
	}
}

// Execute cancels the booking. The eligibility check is read-then-act:
// ownership is verified before the window check, and a booking that
// disappears between the read and the delete surfaces as not found.
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelBooking: user=%s, booking=%s", req.UserID, req.BookingID)

	if err := uc.execute(ctx, req); err != nil {
		uc.metrics.IncBookingsCancelled(outcomeForError(err))
		return err
	}

	uc.metrics.IncBookingsCancelled("success")
	uc.logger.Info("CancelBooking: cancelled booking %s", req.BookingID)
	return nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) error {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return err
	}

	now := uc.timeProvider.Now()

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking %s not found", req.BookingID)
			return ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to fetch booking %s: %v", req.BookingID, err)
		return fmt.Errorf("%w: failed to fetch booking: %v", ErrInternal, err)
	}

	// Ownership comes before the window check, so a foreign booking is
	// reported as unauthorized rather than leaking its timing.
	if booking.UserID != req.UserID {
		uc.logger.Warn("CancelBooking: booking %s not owned by user %s", req.BookingID, req.UserID)
		return ErrUnauthorized
	}

	// Strictly before start − 8h; exactly at the deadline is too late.
	if !domain.IsCancellable(booking.ClassStartTime, now, true) {
		uc.logger.Warn("CancelBooking: booking %s past cancellation deadline (start=%s)",
			req.BookingID, booking.ClassStartTime.Format(domain.DateFormat+" "+domain.TimeFormat))
		return ErrTooLateToCancel
	}

	if !uc.autoPromote {
		return uc.deleteBooking(ctx, req.BookingID)
	}

	return uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.deleteBooking(txCtx, req.BookingID); err != nil {
			return err
		}
		uc.promoteOldestEntry(txCtx, booking.ScheduledClassID)
		return nil
	})
}

func (uc *UseCase) deleteBooking(ctx context.Context, id uuid.UUID) error {
	if err := uc.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking %s already deleted", id)
			return ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to delete booking %s: %v", id, err)
		return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
	}
	return nil
}

// promoteOldestEntry converts the longest-waiting entry for the class into
// a booking. Failures are logged and swallowed: the cancellation itself
// must not be rolled back because the promotion side could not happen.
func (uc *UseCase) promoteOldestEntry(ctx context.Context, scheduledClassID uuid.UUID) {
	entry, err := uc.waitlistRepo.OldestByClass(ctx, scheduledClassID)
	if err != nil {
		if !errors.Is(err, waitlistRepo.ErrEntryNotFound) {
			uc.logger.Error("CancelBooking: failed to fetch waiting list for class %s: %v", scheduledClassID, err)
		}
		return
	}

	if _, err := uc.bookingRepo.Create(ctx, &domain.Booking{
		UserID:           entry.UserID,
		ScheduledClassID: entry.ScheduledClassID,
	}); err != nil && !errors.Is(err, bookingRepo.ErrDuplicateBooking) {
		uc.logger.Error("CancelBooking: failed to promote entry %s: %v", entry.ID, err)
		return
	}

	if err := uc.waitlistRepo.Delete(ctx, entry.ID); err != nil {
		uc.logger.Error("CancelBooking: failed to remove promoted entry %s: %v", entry.ID, err)
		return
	}

	uc.logger.Info("CancelBooking: promoted user %s from waiting list on class %s", entry.UserID, scheduledClassID)
}

// outcomeForError maps a use case error onto a metrics outcome label
func outcomeForError(err error) string {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		return "not_found"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrTooLateToCancel):
		return "too_late"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}
