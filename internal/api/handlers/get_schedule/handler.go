package get_schedule

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rockm4n/GymMate/internal/api/handlers"
	"github.com/rockm4n/GymMate/internal/api/middleware"
)

const msgInvalidWeek = "nieprawidłowy parametr week, oczekiwano daty w formacie RFC 3339"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule?week=RFC3339
//
// The route is public; a valid X-User-ID header enriches the projection
// with the caller's bookings.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	anchor := time.Now()
	if raw := r.URL.Query().Get("week"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /schedule - invalid week %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidWeek)
			return
		}
		anchor = parsed
	}

	var userID *uuid.UUID
	if id, ok := middleware.UserIDFromContext(r.Context()); ok {
		userID = &id
	}

	week, err := h.service.GetWeek(r.Context(), anchor, userID)
	if err != nil {
		h.logger.Error("GET /schedule - failed to fetch week: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule - served week %s with %d classes",
		week.WeekStart.Format("2006-01-02"), len(week.Classes))
	handlers.RespondJSON(w, http.StatusOK, week)
}
