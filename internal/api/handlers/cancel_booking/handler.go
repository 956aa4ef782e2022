package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/rockm4n/GymMate/internal/api/handlers"
	"github.com/rockm4n/GymMate/internal/api/middleware"
	cancelBooking "github.com/rockm4n/GymMate/internal/usecase/cancel_booking"
)

const (
	msgMissingUser      = "brak identyfikatora użytkownika"
	msgInvalidBookingID = "nieprawidłowy identyfikator rezerwacji"
	msgBookingNotFound  = "rezerwacja nie została znaleziona"
	msgNotOwner         = "nie możesz anulować cudzej rezerwacji"
	msgTooLateToCancel  = "rezerwację można anulować najpóźniej 8 godzin przed rozpoczęciem zajęć"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("DELETE /bookings/{bookingId} - invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	err = h.useCase.Execute(r.Context(), &cancelBooking.Request{
		UserID:    userID,
		BookingID: bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/%s - booking not found: user=%s", bookingID, userID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, cancelBooking.ErrUnauthorized):
			h.logger.Warn("DELETE /bookings/%s - not owner: user=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, cancelBooking.ErrTooLateToCancel):
			h.logger.Warn("DELETE /bookings/%s - too late to cancel: user=%s", bookingID, userID)
			handlers.RespondConflict(w, msgTooLateToCancel)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/%s - invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("DELETE /bookings/%s - failed to cancel: user=%s, error=%v", bookingID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/%s - booking cancelled: user=%s", bookingID, userID)
	handlers.RespondNoContent(w)
}
