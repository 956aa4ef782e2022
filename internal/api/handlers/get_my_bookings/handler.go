package get_my_bookings

import (
	"errors"
	"net/http"

	"github.com/rockm4n/GymMate/internal/api/handlers"
	"github.com/rockm4n/GymMate/internal/api/middleware"
	bookingsService "github.com/rockm4n/GymMate/internal/service/bookings"
	"github.com/rockm4n/GymMate/internal/service/bookings/models"
)

const (
	msgMissingUser    = "brak identyfikatora użytkownika"
	msgInvalidStatus  = "nieprawidłowy filtr statusu, dozwolone wartości to UPCOMING i PAST"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/my?status=UPCOMING|PAST
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	req := &models.GetUserBookingsRequest{UserID: userID}
	if raw := r.URL.Query().Get("status"); raw != "" {
		req.Status = &raw
	}

	result, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /bookings/my - invalid status filter: user=%s, err=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("GET /bookings/my - failed to fetch bookings: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/my - served %d bookings for user=%s", len(result.Bookings), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
