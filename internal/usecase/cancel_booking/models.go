package cancel_booking

import "github.com/google/uuid"

// Request carries the input for booking cancellation
type Request struct {
	UserID    uuid.UUID // acting member, must own the booking
	BookingID uuid.UUID
}
