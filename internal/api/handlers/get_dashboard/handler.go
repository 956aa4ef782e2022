package get_dashboard

import (
	"net/http"

	"github.com/rockm4n/GymMate/internal/api/handlers"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetDashboard(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/dashboard - failed to compute KPIs: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/dashboard - served dashboard (occupancy=%.1f%%, waiting=%d)",
		result.TodayOccupancyRate, result.WaitingListCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
