package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rockm4n/GymMate/internal/domain"
	"github.com/rockm4n/GymMate/pkg/ptr"
)

var now = time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC) // Wednesday

func scheduledClass(start time.Time, capacity *int, booked int) *domain.ScheduledClass {
	return &domain.ScheduledClass{
		ID:              uuid.New(),
		StartTime:       start,
		EndTime:         start.Add(time.Hour),
		Capacity:        capacity,
		Status:          domain.ClassStatusScheduled,
		ClassID:         uuid.New(),
		ClassName:       "Pilates",
		ClassColor:      "#10B981",
		DurationMinutes: 60,
		BookingsCount:   booked,
	}
}

func TestProject_OpenClassForAnonymousUser(t *testing.T) {
	class := scheduledClass(now.Add(24*time.Hour), ptr.Ptr(10), 3)

	views := Project([]*domain.ScheduledClass{class}, nil, now)

	require.Len(t, views, 1)
	vm := views[0]
	assert.Equal(t, domain.UserStatusAvailable, vm.UserStatus)
	assert.Nil(t, vm.BookingID)
	assert.False(t, vm.IsFull)
	assert.False(t, vm.HasStarted)
	assert.True(t, vm.IsBookable)
	assert.False(t, vm.IsCancellable)
	assert.False(t, vm.IsWaitlistable)
	assert.Equal(t, 3, vm.BookedSpots)
}

func TestProject_BookedClass(t *testing.T) {
	class := scheduledClass(now.Add(24*time.Hour), ptr.Ptr(10), 3)
	booking := &domain.Booking{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		ScheduledClassID: class.ID,
		ClassStartTime:   class.StartTime,
	}

	views := Project([]*domain.ScheduledClass{class}, []*domain.Booking{booking}, now)

	require.Len(t, views, 1)
	vm := views[0]
	assert.Equal(t, domain.UserStatusBooked, vm.UserStatus)
	require.NotNil(t, vm.BookingID)
	assert.Equal(t, booking.ID, *vm.BookingID)
	assert.False(t, vm.IsBookable)
	assert.True(t, vm.IsCancellable) // 24h out, window is 8h
	assert.False(t, vm.IsWaitlistable)
}

func TestProject_BookedClassInsideCancellationWindow(t *testing.T) {
	class := scheduledClass(now.Add(6*time.Hour), ptr.Ptr(10), 3)
	booking := &domain.Booking{ID: uuid.New(), ScheduledClassID: class.ID}

	views := Project([]*domain.ScheduledClass{class}, []*domain.Booking{booking}, now)

	require.Len(t, views, 1)
	assert.Equal(t, domain.UserStatusBooked, views[0].UserStatus)
	assert.False(t, views[0].IsCancellable)
}

func TestProject_FullClassIsWaitlistable(t *testing.T) {
	class := scheduledClass(now.Add(24*time.Hour), ptr.Ptr(5), 5)

	views := Project([]*domain.ScheduledClass{class}, nil, now)

	require.Len(t, views, 1)
	vm := views[0]
	assert.True(t, vm.IsFull)
	assert.False(t, vm.IsBookable)
	assert.True(t, vm.IsWaitlistable)
}

func TestProject_UnlimitedClassNeverFull(t *testing.T) {
	class := scheduledClass(now.Add(24*time.Hour), nil, 80)

	views := Project([]*domain.ScheduledClass{class}, nil, now)

	require.Len(t, views, 1)
	assert.False(t, views[0].IsFull)
	assert.True(t, views[0].IsBookable)
	assert.False(t, views[0].IsWaitlistable)
}

func TestProject_StartedClassHasNoActions(t *testing.T) {
	class := scheduledClass(now.Add(-time.Minute), ptr.Ptr(10), 3)

	views := Project([]*domain.ScheduledClass{class}, nil, now)

	require.Len(t, views, 1)
	assert.True(t, views[0].HasStarted)
	assert.False(t, views[0].IsBookable)
	assert.False(t, views[0].IsWaitlistable)
}

func TestProject_ClassStartingExactlyNowHasNotStarted(t *testing.T) {
	class := scheduledClass(now, ptr.Ptr(10), 3)

	views := Project([]*domain.ScheduledClass{class}, nil, now)

	require.Len(t, views, 1)
	assert.False(t, views[0].HasStarted)
	assert.True(t, views[0].IsBookable)
}

func TestProject_CancelledClassNotActionable(t *testing.T) {
	class := scheduledClass(now.Add(24*time.Hour), ptr.Ptr(10), 3)
	class.Status = domain.ClassStatusCancelled

	views := Project([]*domain.ScheduledClass{class}, nil, now)

	require.Len(t, views, 1)
	assert.False(t, views[0].IsBookable)
	assert.False(t, views[0].IsWaitlistable)
}

func TestProject_BookingForOtherClassDoesNotLeak(t *testing.T) {
	first := scheduledClass(now.Add(24*time.Hour), ptr.Ptr(10), 3)
	second := scheduledClass(now.Add(26*time.Hour), ptr.Ptr(10), 3)
	booking := &domain.Booking{ID: uuid.New(), ScheduledClassID: first.ID}

	views := Project([]*domain.ScheduledClass{first, second}, []*domain.Booking{booking}, now)

	require.Len(t, views, 2)
	assert.Equal(t, domain.UserStatusBooked, views[0].UserStatus)
	assert.Equal(t, domain.UserStatusAvailable, views[1].UserStatus)
}

func TestProject_EmptyInput(t *testing.T) {
	views := Project(nil, nil, now)
	assert.Empty(t, views)
}
