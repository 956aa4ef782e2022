package join_waiting_list

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rockm4n/GymMate/internal/domain"
	classRepo "github.com/rockm4n/GymMate/internal/infra/storage/scheduledclass"
	waitlistRepo "github.com/rockm4n/GymMate/internal/infra/storage/waitinglist"
	"github.com/rockm4n/GymMate/pkg/ptr"
)

type fakeClassRepo struct {
	classes map[uuid.UUID]*domain.ScheduledClass
}

func newFakeClassRepo(classes ...*domain.ScheduledClass) *fakeClassRepo {
	r := &fakeClassRepo{classes: make(map[uuid.UUID]*domain.ScheduledClass)}
	for _, c := range classes {
		r.classes[c.ID] = c
	}
	return r
}

func (r *fakeClassRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.ScheduledClass, error) {
	c, ok := r.classes[id]
	if !ok {
		return nil, classRepo.ErrClassNotFound
	}
	return c, nil
}

type fakeBookingRepo struct {
	booked map[uuid.UUID]uuid.UUID // userID -> scheduledClassID
}

func (r *fakeBookingRepo) ExistsForUserAndClass(_ context.Context, userID, scheduledClassID uuid.UUID) (bool, error) {
	classID, ok := r.booked[userID]
	return ok && classID == scheduledClassID, nil
}

type fakeWaitlistRepo struct {
	entries   []*domain.WaitingListEntry
	createErr error
}

func (r *fakeWaitlistRepo) Create(_ context.Context, entry *domain.WaitingListEntry) (*domain.WaitingListEntry, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, e := range r.entries {
		if e.UserID == entry.UserID && e.ScheduledClassID == entry.ScheduledClassID {
			return nil, waitlistRepo.ErrDuplicateEntry
		}
	}
	created := *entry
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	r.entries = append(r.entries, &created)
	return &created, nil
}

func (r *fakeWaitlistRepo) ExistsForUserAndClass(_ context.Context, userID, scheduledClassID uuid.UUID) (bool, error) {
	for _, e := range r.entries {
		if e.UserID == userID && e.ScheduledClassID == scheduledClassID {
			return true, nil
		}
	}
	return false, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingMetrics struct {
	outcomes []string
}

func (m *recordingMetrics) IncWaitlistJoins(outcome string) {
	m.outcomes = append(m.outcomes, outcome)
}

var classStart = time.Date(2024, 1, 20, 14, 0, 0, 0, time.UTC)

func newClass(capacity *int, bookingsCount int) *domain.ScheduledClass {
	return &domain.ScheduledClass{
		ID:            uuid.New(),
		StartTime:     classStart,
		EndTime:       classStart.Add(time.Hour),
		Capacity:      capacity,
		Status:        domain.ClassStatusScheduled,
		ClassID:       uuid.New(),
		ClassName:     "Crossfit",
		BookingsCount: bookingsCount,
	}
}

func newUseCase(cr *fakeClassRepo, br *fakeBookingRepo, wr *fakeWaitlistRepo) *UseCase {
	if br.booked == nil {
		br.booked = make(map[uuid.UUID]uuid.UUID)
	}
	return NewUseCase(cr, br, wr, nopLogger{}, &recordingMetrics{})
}

func TestExecute_JoinsFullClass(t *testing.T) {
	class := newClass(ptr.Ptr(10), 10)
	waitlist := &fakeWaitlistRepo{}
	userID := uuid.New()

	uc := newUseCase(newFakeClassRepo(class), &fakeBookingRepo{}, waitlist)

	resp, err := uc.Execute(context.Background(), &Request{UserID: userID, ScheduledClassID: class.ID})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, userID, resp.UserID)
	require.Len(t, waitlist.entries, 1)
}

func TestExecute_JoinsOverbookedClass(t *testing.T) {
	// capacity reduced after bookings were made
	class := newClass(ptr.Ptr(5), 7)

	uc := newUseCase(newFakeClassRepo(class), &fakeBookingRepo{}, &fakeWaitlistRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: uuid.New(), ScheduledClassID: class.ID})

	require.NoError(t, err)
}

func TestExecute_ClassNotFound(t *testing.T) {
	uc := newUseCase(newFakeClassRepo(), &fakeBookingRepo{}, &fakeWaitlistRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: uuid.New(), ScheduledClassID: uuid.New()})

	require.ErrorIs(t, err, ErrClassNotFound)
}

func TestExecute_ClassWithOpenSpots(t *testing.T) {
	class := newClass(ptr.Ptr(10), 9)

	uc := newUseCase(newFakeClassRepo(class), &fakeBookingRepo{}, &fakeWaitlistRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: uuid.New(), ScheduledClassID: class.ID})

	require.ErrorIs(t, err, ErrClassNotFull)
}

func TestExecute_UnlimitedClassNeverFull(t *testing.T) {
	class := newClass(nil, 100)

	uc := newUseCase(newFakeClassRepo(class), &fakeBookingRepo{}, &fakeWaitlistRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: uuid.New(), ScheduledClassID: class.ID})

	require.ErrorIs(t, err, ErrClassNotFull)
}

func TestExecute_NonScheduledClass(t *testing.T) {
	for _, status := range []domain.ClassStatus{domain.ClassStatusCancelled, domain.ClassStatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			class := newClass(ptr.Ptr(10), 10)
			class.Status = status

			uc := newUseCase(newFakeClassRepo(class), &fakeBookingRepo{}, &fakeWaitlistRepo{})

			_, err := uc.Execute(context.Background(), &Request{UserID: uuid.New(), ScheduledClassID: class.ID})

			require.ErrorIs(t, err, ErrClassNotFull)
		})
	}
}

func TestExecute_AlreadyBooked(t *testing.T) {
	class := newClass(ptr.Ptr(10), 10)
	userID := uuid.New()
	bookings := &fakeBookingRepo{booked: map[uuid.UUID]uuid.UUID{userID: class.ID}}

	uc := newUseCase(newFakeClassRepo(class), bookings, &fakeWaitlistRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: userID, ScheduledClassID: class.ID})

	require.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestExecute_AlreadyOnWaitingList(t *testing.T) {
	class := newClass(ptr.Ptr(10), 10)
	userID := uuid.New()
	waitlist := &fakeWaitlistRepo{entries: []*domain.WaitingListEntry{
		{ID: uuid.New(), UserID: userID, ScheduledClassID: class.ID},
	}}

	uc := newUseCase(newFakeClassRepo(class), &fakeBookingRepo{}, waitlist)

	_, err := uc.Execute(context.Background(), &Request{UserID: userID, ScheduledClassID: class.ID})

	require.ErrorIs(t, err, ErrAlreadyOnWaitingList)
	require.Len(t, waitlist.entries, 1)
}

func TestExecute_DuplicateInsertBackstop(t *testing.T) {
	class := newClass(ptr.Ptr(10), 10)
	waitlist := &fakeWaitlistRepo{createErr: waitlistRepo.ErrDuplicateEntry}

	uc := newUseCase(newFakeClassRepo(class), &fakeBookingRepo{}, waitlist)

	_, err := uc.Execute(context.Background(), &Request{UserID: uuid.New(), ScheduledClassID: class.ID})

	require.ErrorIs(t, err, ErrAlreadyOnWaitingList)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(newFakeClassRepo(), &fakeBookingRepo{}, &fakeWaitlistRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: uuid.Nil, ScheduledClassID: uuid.New()})
	require.ErrorIs(t, err, ErrInvalidInput)
}
