package join_waiting_list

import (
	"time"

	"github.com/google/uuid"

	joinWaitingList "github.com/rockm4n/GymMate/internal/usecase/join_waiting_list"
)

// JoinWaitingListRequest HTTP request model
type JoinWaitingListRequest struct {
	ScheduledClassID string `json:"scheduledClassId"`
}

// WaitingListEntryResponse HTTP response model
type WaitingListEntryResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	ScheduledClassID uuid.UUID `json:"scheduledClassId"`
	CreatedAt        string    `json:"createdAt"`
}

// ToUseCaseRequest parses the class id and pairs it with the caller
func (r *JoinWaitingListRequest) ToUseCaseRequest(userID uuid.UUID) (*joinWaitingList.Request, error) {
	scheduledClassID, err := uuid.Parse(r.ScheduledClassID)
	if err != nil {
		return nil, err
	}
	return &joinWaitingList.Request{
		UserID:           userID,
		ScheduledClassID: scheduledClassID,
	}, nil
}

// FromUseCaseResponse converts the use case result into the HTTP response
func FromUseCaseResponse(resp *joinWaitingList.Response) *WaitingListEntryResponse {
	return &WaitingListEntryResponse{
		ID:               resp.ID,
		UserID:           resp.UserID,
		ScheduledClassID: resp.ScheduledClassID,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
