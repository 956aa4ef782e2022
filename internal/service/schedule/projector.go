package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/rockm4n/GymMate/internal/domain"
	"github.com/rockm4n/GymMate/internal/service/schedule/models"
)

// Project derives view models from one snapshot of classes and the acting
// user's bookings, evaluated against a single captured now. Every flag in
// one projection pass agrees on the same instant and the same bookings,
// so two classes in one response never contradict each other.
//
// UserStatus comes out BOOKED or AVAILABLE; the WAITING_LIST variant is
// reserved for explicit waiting-list views and is never assigned here.
func Project(classes []*domain.ScheduledClass, bookings []*domain.Booking, now time.Time) []models.ClassViewModel {
	byClass := make(map[uuid.UUID]*domain.Booking, len(bookings))
	for _, b := range bookings {
		byClass[b.ScheduledClassID] = b
	}

	views := make([]models.ClassViewModel, 0, len(classes))
	for _, c := range classes {
		userStatus := domain.UserStatusAvailable
		var bookingID *uuid.UUID
		if b, ok := byClass[c.ID]; ok {
			userStatus = domain.UserStatusBooked
			id := b.ID
			bookingID = &id
		}

		isFull := domain.IsFull(c.BookingsCount, c.Capacity)
		hasStarted := domain.HasStarted(c.StartTime, now)
		hasBooking := userStatus == domain.UserStatusBooked

		views = append(views, models.ClassViewModel{
			ID:              c.ID,
			ClassName:       c.ClassName,
			ClassColor:      c.ClassColor,
			StartTime:       c.StartTime,
			EndTime:         c.EndTime,
			DurationMinutes: c.DurationMinutes,
			InstructorName:  c.InstructorName,
			Capacity:        c.Capacity,
			BookedSpots:     c.BookingsCount,
			Status:          string(c.Status),
			UserStatus:      userStatus,
			BookingID:       bookingID,
			IsFull:          isFull,
			HasStarted:      hasStarted,
			IsBookable:      c.IsScheduled() && domain.IsBookable(isFull, hasStarted, userStatus),
			IsCancellable:   domain.IsCancellable(c.StartTime, now, hasBooking),
			IsWaitlistable:  c.IsScheduled() && domain.IsWaitlistable(isFull, hasStarted, userStatus),
		})
	}
	return views
}
