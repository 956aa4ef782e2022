package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rockm4n/GymMate/internal/domain"
)

// Request models

// GetUserBookingsRequest asks for a user's booking history, optionally
// narrowed to UPCOMING or PAST classes
type GetUserBookingsRequest struct {
	UserID uuid.UUID `json:"userId"`
	Status *string   `json:"status,omitempty"`
}

// Response models

// BookingViewModel is one history row, preformatted for display in the
// product locale (Polish dates, local wall-clock time range)
type BookingViewModel struct {
	ID               uuid.UUID `json:"id"`
	ScheduledClassID uuid.UUID `json:"scheduledClassId"`
	ClassName        string    `json:"className"`
	ClassColor       string    `json:"classColor"`
	InstructorName   *string   `json:"instructorName,omitempty"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Date      string    `json:"date"`      // "20 stycznia 2024"
	TimeRange string    `json:"timeRange"` // "15:00 - 16:00"

	IsCancellable bool `json:"isCancellable"`
	IsHistorical  bool `json:"isHistorical"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse is the full history payload
type BookingListResponse struct {
	Bookings []BookingViewModel `json:"bookings"`
}

// Polish month names in the genitive case used by dates
var polishMonths = [...]string{
	time.January:   "stycznia",
	time.February:  "lutego",
	time.March:     "marca",
	time.April:     "kwietnia",
	time.May:       "maja",
	time.June:      "czerwca",
	time.July:      "lipca",
	time.August:    "sierpnia",
	time.September: "września",
	time.October:   "października",
	time.November:  "listopada",
	time.December:  "grudnia",
}

// FormatDatePL renders t in the display location as "20 stycznia 2024"
func FormatDatePL(t time.Time, loc *time.Location) string {
	local := t.In(loc)
	return fmt.Sprintf("%d %s %d", local.Day(), polishMonths[local.Month()], local.Year())
}

// FormatTimeRange renders a start/end pair in the display location as
// "15:00 - 16:00"
func FormatTimeRange(start, end time.Time, loc *time.Location) string {
	return start.In(loc).Format(domain.TimeFormat) + " - " + end.In(loc).Format(domain.TimeFormat)
}

// FromDomainBooking converts a domain booking into a display row. The
// cancellable and historical flags are evaluated against the caller's
// captured now so one response never contradicts itself.
func FromDomainBooking(b *domain.Booking, now time.Time, loc *time.Location) *BookingViewModel {
	if b == nil {
		return nil
	}
	return &BookingViewModel{
		ID:               b.ID,
		ScheduledClassID: b.ScheduledClassID,
		ClassName:        b.ClassName,
		ClassColor:       b.ClassColor,
		InstructorName:   b.InstructorName,
		StartTime:        b.ClassStartTime,
		EndTime:          b.ClassEndTime,
		Date:             FormatDatePL(b.ClassStartTime, loc),
		TimeRange:        FormatTimeRange(b.ClassStartTime, b.ClassEndTime, loc),
		IsCancellable:    b.IsCancellable(now),
		IsHistorical:     b.IsHistorical(now),
		CreatedAt:        b.CreatedAt,
	}
}

// FromDomainBookingList converts a history slice, preserving order
func FromDomainBookingList(bookings []*domain.Booking, now time.Time, loc *time.Location) *BookingListResponse {
	resp := &BookingListResponse{Bookings: make([]BookingViewModel, 0, len(bookings))}
	for _, b := range bookings {
		if vm := FromDomainBooking(b, now, loc); vm != nil {
			resp.Bookings = append(resp.Bookings, *vm)
		}
	}
	return resp
}

// ToDomainFilter validates and converts the optional status string
func (r *GetUserBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	if r.Status == nil {
		return domain.BookingsFilterNone, nil
	}
	filter := domain.BookingsFilter(*r.Status)
	if !filter.Valid() {
		return domain.BookingsFilterNone, fmt.Errorf("unknown status %q", *r.Status)
	}
	return filter, nil
}
