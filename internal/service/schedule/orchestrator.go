package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rockm4n/GymMate/internal/domain"
	"github.com/rockm4n/GymMate/internal/service/schedule/models"
)

// User-facing notices (Polish, matching the product locale)
const (
	msgBookingSuccess  = "Zapisano na zajęcia"
	msgBookingFailed   = "Nie udało się zapisać na zajęcia"
	msgCancelSuccess   = "Rezerwacja została anulowana"
	msgCancelFailed    = "Nie udało się anulować rezerwacji"
	msgWaitlistSuccess = "Dodano do listy rezerwowej"
	msgWaitlistFailed  = "Nie udało się dołączyć do listy rezerwowej"
)

// Orchestrator owns one schedule-viewing session: the current-week cursor,
// the latest projected snapshot and the dispatch of booking actions.
// Fetch cycles are generation-tagged; a completion that arrives after the
// cursor has moved on is discarded instead of overwriting newer state.
type Orchestrator struct {
	fetcher   WeekFetcher
	booker    ClassBooker
	canceller BookingCanceller
	joiner    WaitingListJoiner
	notifier  Notifier
	logger    Logger

	mu         sync.Mutex
	userID     *uuid.UUID
	weekAnchor time.Time
	generation uint64
	loading    bool
	snapshot   *models.WeekSchedule
	lastErr    error
}

// NewOrchestrator creates a session anchored on the week containing now
func NewOrchestrator(
	fetcher WeekFetcher,
	booker ClassBooker,
	canceller BookingCanceller,
	joiner WaitingListJoiner,
	notifier Notifier,
	logger Logger,
	userID *uuid.UUID,
	now time.Time,
) *Orchestrator {
	return &Orchestrator{
		fetcher:    fetcher,
		booker:     booker,
		canceller:  canceller,
		joiner:     joiner,
		notifier:   notifier,
		logger:     logger,
		userID:     userID,
		weekAnchor: domain.WeekStart(now),
	}
}

// WeekAnchor returns the Monday of the week currently shown
func (o *Orchestrator) WeekAnchor() time.Time {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.weekAnchor
}

// State returns the latest snapshot, the last fetch error and whether a
// fetch cycle is still in flight. The error is terminal until the next
// explicit Refetch or navigation.
func (o *Orchestrator) State() (*models.WeekSchedule, error, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshot, o.lastErr, o.loading
}

// Refetch reloads the current week
func (o *Orchestrator) Refetch(ctx context.Context) error {
	return o.fetch(ctx)
}

// NextWeek moves the cursor seven days forward and reloads
func (o *Orchestrator) NextWeek(ctx context.Context) error {
	o.mu.Lock()
	o.weekAnchor = domain.NextWeek(o.weekAnchor)
	o.mu.Unlock()
	return o.fetch(ctx)
}

// PreviousWeek moves the cursor seven days back and reloads
func (o *Orchestrator) PreviousWeek(ctx context.Context) error {
	o.mu.Lock()
	o.weekAnchor = domain.PreviousWeek(o.weekAnchor)
	o.mu.Unlock()
	return o.fetch(ctx)
}

// Book dispatches a booking for the class, notifies the outcome and
// refetches the week on success.
func (o *Orchestrator) Book(ctx context.Context, scheduledClassID uuid.UUID) error {
	userID, err := o.requireUser()
	if err != nil {
		return err
	}

	if err := o.booker.Book(ctx, userID, scheduledClassID); err != nil {
		o.logger.Warn("Orchestrator: booking class %s failed: %v", scheduledClassID, err)
		o.notifier.NotifyError(msgBookingFailed)
		return err
	}

	o.notifier.NotifySuccess(msgBookingSuccess)
	return o.fetch(ctx)
}

// CancelBooking removes the booking from the local snapshot immediately,
// then dispatches the cancellation. Either outcome ends in a refetch, so
// an optimistic removal that turns out to be wrong is reconciled with
// server state instead of lingering.
func (o *Orchestrator) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	userID, err := o.requireUser()
	if err != nil {
		return err
	}

	o.applyOptimisticCancel(bookingID)

	if err := o.canceller.Cancel(ctx, userID, bookingID); err != nil {
		o.logger.Warn("Orchestrator: cancelling booking %s failed: %v", bookingID, err)
		o.notifier.NotifyError(msgCancelFailed)
		if fetchErr := o.fetch(ctx); fetchErr != nil {
			o.logger.Error("Orchestrator: reconciling refetch failed: %v", fetchErr)
		}
		return err
	}

	o.notifier.NotifySuccess(msgCancelSuccess)
	return o.fetch(ctx)
}

// JoinWaitingList dispatches a waiting-list join, notifies the outcome
// and refetches the week on success.
func (o *Orchestrator) JoinWaitingList(ctx context.Context, scheduledClassID uuid.UUID) error {
	userID, err := o.requireUser()
	if err != nil {
		return err
	}

	if err := o.joiner.Join(ctx, userID, scheduledClassID); err != nil {
		o.logger.Warn("Orchestrator: joining waiting list for class %s failed: %v", scheduledClassID, err)
		o.notifier.NotifyError(msgWaitlistFailed)
		return err
	}

	o.notifier.NotifySuccess(msgWaitlistSuccess)
	return o.fetch(ctx)
}

func (o *Orchestrator) requireUser() (uuid.UUID, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.userID == nil {
		return uuid.Nil, ErrUnauthenticated
	}
	return *o.userID, nil
}

// fetch runs one generation-tagged cycle: loading, then snapshot or
// error. A completion whose generation no longer matches is a leftover
// from an abandoned week and is dropped.
func (o *Orchestrator) fetch(ctx context.Context) error {
	o.mu.Lock()
	o.generation++
	gen := o.generation
	anchor := o.weekAnchor
	userID := o.userID
	o.loading = true
	o.mu.Unlock()

	snap, err := o.fetcher.GetWeek(ctx, anchor, userID)

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation {
		o.logger.Info("Orchestrator: discarding stale fetch for week %s", anchor.Format(domain.DateFormat))
		return nil
	}

	o.loading = false
	if err != nil {
		o.lastErr = err
		return err
	}
	o.snapshot = snap
	o.lastErr = nil
	return nil
}

// applyOptimisticCancel flips the cancelled booking's class back to the
// anonymous shape in the local snapshot
func (o *Orchestrator) applyOptimisticCancel(bookingID uuid.UUID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.snapshot == nil {
		return
	}
	for i := range o.snapshot.Classes {
		vm := &o.snapshot.Classes[i]
		if vm.BookingID == nil || *vm.BookingID != bookingID {
			continue
		}
		vm.UserStatus = domain.UserStatusAvailable
		vm.BookingID = nil
		if vm.BookedSpots > 0 {
			vm.BookedSpots--
		}
		vm.IsFull = domain.IsFull(vm.BookedSpots, vm.Capacity)
		vm.IsCancellable = false
		scheduled := vm.Status == string(domain.ClassStatusScheduled)
		vm.IsBookable = scheduled && domain.IsBookable(vm.IsFull, vm.HasStarted, vm.UserStatus)
		vm.IsWaitlistable = scheduled && domain.IsWaitlistable(vm.IsFull, vm.HasStarted, vm.UserStatus)
		return
	}
}
