package create_booking

import (
	"time"

	"github.com/google/uuid"

	createBooking "github.com/rockm4n/GymMate/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ScheduledClassID string `json:"scheduledClassId"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	ScheduledClassID uuid.UUID `json:"scheduledClassId"`
	ClassName        string    `json:"className"`
	StartTime        string    `json:"startTime"`
	EndTime          string    `json:"endTime"`
	InstructorName   *string   `json:"instructorName,omitempty"`
	CreatedAt        string    `json:"createdAt"`
}

// ToUseCaseRequest parses the class id and pairs it with the caller
func (r *CreateBookingRequest) ToUseCaseRequest(userID uuid.UUID) (*createBooking.Request, error) {
	scheduledClassID, err := uuid.Parse(r.ScheduledClassID)
	if err != nil {
		return nil, err
	}
	return &createBooking.Request{
		UserID:           userID,
		ScheduledClassID: scheduledClassID,
	}, nil
}

// FromUseCaseResponse converts the use case result into the HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		UserID:           resp.UserID,
		ScheduledClassID: resp.ScheduledClassID,
		ClassName:        resp.ClassName,
		StartTime:        resp.ClassStartTime.Format(time.RFC3339),
		EndTime:          resp.ClassEndTime.Format(time.RFC3339),
		InstructorName:   resp.InstructorName,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
