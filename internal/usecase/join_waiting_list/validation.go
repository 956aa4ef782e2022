package join_waiting_list

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest rejects malformed input before any storage access
func validateRequest(req *Request) error {
	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if req.ScheduledClassID == uuid.Nil {
		return fmt.Errorf("%w: scheduledClassID is required", ErrInvalidInput)
	}
	return nil
}
