package join_waiting_list

import (
	"errors"
	"net/http"

	"github.com/rockm4n/GymMate/internal/api/handlers"
	"github.com/rockm4n/GymMate/internal/api/middleware"
	joinWaitingList "github.com/rockm4n/GymMate/internal/usecase/join_waiting_list"
)

const (
	msgMissingUser        = "brak identyfikatora użytkownika"
	msgInvalidRequestBody = "nieprawidłowe dane żądania"
	msgInvalidClassID     = "nieprawidłowy identyfikator zajęć"
	msgClassNotFound      = "zajęcia nie zostały znalezione"
	msgClassNotFull       = "zajęcia mają jeszcze wolne miejsca"
	msgAlreadyBooked      = "jesteś już zapisany na te zajęcia"
	msgAlreadyOnList      = "jesteś już na liście rezerwowej"
)

type Handler struct {
	useCase JoinWaitingListUseCase
	logger  Logger
}

func NewHandler(useCase JoinWaitingListUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/waiting-list-entries
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req JoinWaitingListRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /waiting-list-entries - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /waiting-list-entries - invalid class id %q: %v", req.ScheduledClassID, err)
		handlers.RespondBadRequest(w, msgInvalidClassID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, joinWaitingList.ErrClassNotFound):
			h.logger.Warn("POST /waiting-list-entries - class not found: user=%s, class=%s", userID, useCaseReq.ScheduledClassID)
			handlers.RespondNotFound(w, msgClassNotFound)

		case errors.Is(err, joinWaitingList.ErrClassNotFull):
			h.logger.Warn("POST /waiting-list-entries - class not full: user=%s, class=%s", userID, useCaseReq.ScheduledClassID)
			handlers.RespondConflict(w, msgClassNotFull)

		case errors.Is(err, joinWaitingList.ErrAlreadyBooked):
			h.logger.Warn("POST /waiting-list-entries - already booked: user=%s, class=%s", userID, useCaseReq.ScheduledClassID)
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, joinWaitingList.ErrAlreadyOnWaitingList):
			h.logger.Warn("POST /waiting-list-entries - already on list: user=%s, class=%s", userID, useCaseReq.ScheduledClassID)
			handlers.RespondConflict(w, msgAlreadyOnList)

		case errors.Is(err, joinWaitingList.ErrInvalidInput):
			h.logger.Warn("POST /waiting-list-entries - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /waiting-list-entries - failed to join: user=%s, class=%s, error=%v",
				userID, useCaseReq.ScheduledClassID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /waiting-list-entries - entry created: entry=%s, user=%s, class=%s",
		result.ID, userID, result.ScheduledClassID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
