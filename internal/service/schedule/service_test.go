package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rockm4n/GymMate/internal/domain"
	"github.com/rockm4n/GymMate/pkg/ptr"
)

type fakeClassRepo struct {
	classes []*domain.ScheduledClass
	err     error

	gotStart time.Time
	gotEnd   time.Time
}

func (r *fakeClassRepo) ListInWindow(_ context.Context, start, end time.Time) ([]*domain.ScheduledClass, error) {
	r.gotStart = start
	r.gotEnd = end
	return r.classes, r.err
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error

	called bool
	gotNow time.Time
}

func (r *fakeBookingRepo) GetByUserID(_ context.Context, _ uuid.UUID, _ domain.BookingsFilter, now time.Time) ([]*domain.Booking, error) {
	r.called = true
	r.gotNow = now
	return r.bookings, r.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(cr *fakeClassRepo, br *fakeBookingRepo, now time.Time) *Service {
	s := NewService(cr, br, nopLogger{})
	s.timeProvider = &fixedTimeProvider{now: now}
	return s
}

func TestGetWeek_NormalizesAnchorToMondayWindow(t *testing.T) {
	classes := &fakeClassRepo{}
	svc := newService(classes, &fakeBookingRepo{}, now)

	// Wednesday anchor
	anchor := time.Date(2024, 1, 17, 15, 30, 0, 0, time.UTC)
	week, err := svc.GetWeek(context.Background(), anchor, nil)

	require.NoError(t, err)
	monday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, week.WeekStart)
	assert.Equal(t, monday, classes.gotStart)
	assert.Equal(t, monday.AddDate(0, 0, 7).Add(-time.Millisecond), week.WeekEnd)
	assert.Equal(t, week.WeekEnd, classes.gotEnd)
}

func TestGetWeek_AnonymousUserSkipsBookingsFetch(t *testing.T) {
	classes := &fakeClassRepo{classes: []*domain.ScheduledClass{
		scheduledClass(now.Add(24*time.Hour), ptr.Ptr(10), 2),
	}}
	bookings := &fakeBookingRepo{}
	svc := newService(classes, bookings, now)

	week, err := svc.GetWeek(context.Background(), now, nil)

	require.NoError(t, err)
	assert.False(t, bookings.called)
	require.Len(t, week.Classes, 1)
	assert.Equal(t, domain.UserStatusAvailable, week.Classes[0].UserStatus)
}

func TestGetWeek_ProjectsUserBookings(t *testing.T) {
	class := scheduledClass(now.Add(24*time.Hour), ptr.Ptr(10), 2)
	userID := uuid.New()
	booking := &domain.Booking{ID: uuid.New(), UserID: userID, ScheduledClassID: class.ID}

	classes := &fakeClassRepo{classes: []*domain.ScheduledClass{class}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{booking}}
	svc := newService(classes, bookings, now)

	week, err := svc.GetWeek(context.Background(), now, &userID)

	require.NoError(t, err)
	assert.True(t, bookings.called)
	assert.Equal(t, now, bookings.gotNow)
	require.Len(t, week.Classes, 1)
	assert.Equal(t, domain.UserStatusBooked, week.Classes[0].UserStatus)
}

func TestGetWeek_UnauthenticatedBookingsFetchDegrades(t *testing.T) {
	class := scheduledClass(now.Add(24*time.Hour), ptr.Ptr(10), 2)
	userID := uuid.New()

	classes := &fakeClassRepo{classes: []*domain.ScheduledClass{class}}
	bookings := &fakeBookingRepo{err: ErrUnauthenticated}
	svc := newService(classes, bookings, now)

	week, err := svc.GetWeek(context.Background(), now, &userID)

	require.NoError(t, err)
	require.Len(t, week.Classes, 1)
	assert.Equal(t, domain.UserStatusAvailable, week.Classes[0].UserStatus)
}

func TestGetWeek_ClassFetchFailureFailsQuery(t *testing.T) {
	classes := &fakeClassRepo{err: errors.New("connection refused")}
	svc := newService(classes, &fakeBookingRepo{}, now)

	_, err := svc.GetWeek(context.Background(), now, nil)

	require.ErrorIs(t, err, ErrInternal)
}

func TestGetWeek_BookingsFetchFailureFailsQuery(t *testing.T) {
	userID := uuid.New()
	classes := &fakeClassRepo{}
	bookings := &fakeBookingRepo{err: errors.New("connection refused")}
	svc := newService(classes, bookings, now)

	_, err := svc.GetWeek(context.Background(), now, &userID)

	require.ErrorIs(t, err, ErrInternal)
}
