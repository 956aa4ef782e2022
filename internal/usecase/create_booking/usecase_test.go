package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rockm4n/GymMate/internal/domain"
	bookingRepo "github.com/rockm4n/GymMate/internal/infra/storage/booking"
	classRepo "github.com/rockm4n/GymMate/internal/infra/storage/scheduledclass"
	"github.com/rockm4n/GymMate/pkg/ptr"
)

type fakeClassRepo struct {
	classes map[uuid.UUID]*domain.ScheduledClass
	lockErr error
}

func newFakeClassRepo(classes ...*domain.ScheduledClass) *fakeClassRepo {
	r := &fakeClassRepo{classes: make(map[uuid.UUID]*domain.ScheduledClass)}
	for _, c := range classes {
		r.classes[c.ID] = c
	}
	return r
}

func (r *fakeClassRepo) LockByID(_ context.Context, id uuid.UUID) (*domain.ScheduledClass, error) {
	if r.lockErr != nil {
		return nil, r.lockErr
	}
	c, ok := r.classes[id]
	if !ok {
		return nil, classRepo.ErrClassNotFound
	}
	return c, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*domain.Booking

	createErr error
	existsErr error
	countErr  error
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, b := range r.bookings {
		if b.UserID == booking.UserID && b.ScheduledClassID == booking.ScheduledClassID {
			return nil, bookingRepo.ErrDuplicateBooking
		}
	}
	created := *booking
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	r.bookings = append(r.bookings, &created)
	return &created, nil
}

func (r *fakeBookingRepo) ExistsForUserAndClass(_ context.Context, userID, scheduledClassID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.existsErr != nil {
		return false, r.existsErr
	}
	for _, b := range r.bookings {
		if b.UserID == userID && b.ScheduledClassID == scheduledClassID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) CountByClass(_ context.Context, scheduledClassID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countErr != nil {
		return 0, r.countErr
	}
	count := 0
	for _, b := range r.bookings {
		if b.ScheduledClassID == scheduledClassID {
			count++
		}
	}
	return count, nil
}

// serialTxManager imitates the database row lock: transactions touching
// the bookings table run one at a time.
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingMetrics struct {
	mu       sync.Mutex
	outcomes []string
}

func (m *recordingMetrics) IncBookingsCreated(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

var classStart = time.Date(2024, 1, 20, 14, 0, 0, 0, time.UTC)

func newClass(capacity *int) *domain.ScheduledClass {
	return &domain.ScheduledClass{
		ID:              uuid.New(),
		StartTime:       classStart,
		EndTime:         classStart.Add(time.Hour),
		Capacity:        capacity,
		Status:          domain.ClassStatusScheduled,
		ClassID:         uuid.New(),
		ClassName:       "Joga",
		ClassColor:      "#4F46E5",
		DurationMinutes: 60,
	}
}

func newUseCase(cr *fakeClassRepo, br *fakeBookingRepo) *UseCase {
	return NewUseCase(cr, br, &serialTxManager{}, nopLogger{}, &recordingMetrics{})
}

func TestExecute_CreatesBooking(t *testing.T) {
	class := newClass(ptr.Ptr(10))
	classes := newFakeClassRepo(class)
	bookings := &fakeBookingRepo{}
	userID := uuid.New()

	uc := newUseCase(classes, bookings)

	resp, err := uc.Execute(context.Background(), &Request{UserID: userID, ScheduledClassID: class.ID})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, class.ID, resp.ScheduledClassID)
	assert.Equal(t, "Joga", resp.ClassName)
	assert.Equal(t, class.StartTime, resp.ClassStartTime)
	require.Len(t, bookings.bookings, 1)
}

func TestExecute_ClassNotFound(t *testing.T) {
	uc := newUseCase(newFakeClassRepo(), &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: uuid.New(), ScheduledClassID: uuid.New()})

	require.ErrorIs(t, err, ErrClassNotFound)
}

func TestExecute_ClassNotAvailable(t *testing.T) {
	for _, status := range []domain.ClassStatus{domain.ClassStatusCancelled, domain.ClassStatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			class := newClass(ptr.Ptr(10))
			class.Status = status

			uc := newUseCase(newFakeClassRepo(class), &fakeBookingRepo{})

			_, err := uc.Execute(context.Background(), &Request{UserID: uuid.New(), ScheduledClassID: class.ID})

			require.ErrorIs(t, err, ErrClassNotAvailable)
		})
	}
}

func TestExecute_AlreadyBooked(t *testing.T) {
	class := newClass(ptr.Ptr(10))
	userID := uuid.New()
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: uuid.New(), UserID: userID, ScheduledClassID: class.ID},
	}}

	uc := newUseCase(newFakeClassRepo(class), bookings)

	_, err := uc.Execute(context.Background(), &Request{UserID: userID, ScheduledClassID: class.ID})

	require.ErrorIs(t, err, ErrAlreadyBooked)
	require.Len(t, bookings.bookings, 1)
}

func TestExecute_ClassFull(t *testing.T) {
	class := newClass(ptr.Ptr(1))
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: uuid.New(), UserID: uuid.New(), ScheduledClassID: class.ID},
	}}

	uc := newUseCase(newFakeClassRepo(class), bookings)

	_, err := uc.Execute(context.Background(), &Request{UserID: uuid.New(), ScheduledClassID: class.ID})

	require.ErrorIs(t, err, ErrClassFull)
}

func TestExecute_UnlimitedCapacityNeverFull(t *testing.T) {
	class := newClass(nil)
	bookings := &fakeBookingRepo{}
	for i := 0; i < 50; i++ {
		bookings.bookings = append(bookings.bookings, &domain.Booking{
			ID: uuid.New(), UserID: uuid.New(), ScheduledClassID: class.ID,
		})
	}

	uc := newUseCase(newFakeClassRepo(class), bookings)

	_, err := uc.Execute(context.Background(), &Request{UserID: uuid.New(), ScheduledClassID: class.ID})

	require.NoError(t, err)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(newFakeClassRepo(), &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: uuid.Nil, ScheduledClassID: uuid.New()})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: uuid.New(), ScheduledClassID: uuid.Nil})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_LastSpotRace(t *testing.T) {
	class := newClass(ptr.Ptr(1))
	classes := newFakeClassRepo(class)
	bookings := &fakeBookingRepo{}

	uc := newUseCase(classes, bookings)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), &Request{
				UserID:           uuid.New(),
				ScheduledClassID: class.ID,
			})
		}(i)
	}
	wg.Wait()

	var successes, full int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrClassFull):
			full++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, full)
	require.Len(t, bookings.bookings, 1)
}
