package cancel_booking

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest rejects malformed input before any storage access
func validateRequest(req *Request) error {
	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if req.BookingID == uuid.Nil {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	return nil
}
