package create_booking

import (
	"errors"
	"net/http"

	"github.com/rockm4n/GymMate/internal/api/handlers"
	"github.com/rockm4n/GymMate/internal/api/middleware"
	createBooking "github.com/rockm4n/GymMate/internal/usecase/create_booking"
)

const (
	msgMissingUser        = "brak identyfikatora użytkownika"
	msgInvalidRequestBody = "nieprawidłowe dane żądania"
	msgInvalidClassID     = "nieprawidłowy identyfikator zajęć"
	msgClassNotFound      = "zajęcia nie zostały znalezione"
	msgClassNotAvailable  = "zapisy na te zajęcia są niedostępne"
	msgClassFull          = "brak wolnych miejsc na te zajęcia"
	msgAlreadyBooked      = "jesteś już zapisany na te zajęcia"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - invalid class id %q: %v", req.ScheduledClassID, err)
		handlers.RespondBadRequest(w, msgInvalidClassID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrClassNotFound):
			h.logger.Warn("POST /bookings - class not found: user=%s, class=%s", userID, useCaseReq.ScheduledClassID)
			handlers.RespondNotFound(w, msgClassNotFound)

		case errors.Is(err, createBooking.ErrClassNotAvailable):
			h.logger.Warn("POST /bookings - class not available: user=%s, class=%s", userID, useCaseReq.ScheduledClassID)
			handlers.RespondConflict(w, msgClassNotAvailable)

		case errors.Is(err, createBooking.ErrClassFull):
			h.logger.Warn("POST /bookings - class full: user=%s, class=%s", userID, useCaseReq.ScheduledClassID)
			handlers.RespondConflict(w, msgClassFull)

		case errors.Is(err, createBooking.ErrAlreadyBooked):
			h.logger.Warn("POST /bookings - already booked: user=%s, class=%s", userID, useCaseReq.ScheduledClassID)
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - failed to create booking: user=%s, class=%s, error=%v",
				userID, useCaseReq.ScheduledClassID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - booking created: booking=%s, user=%s, class=%s",
		result.ID, userID, result.ScheduledClassID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
