package get_dashboard

import (
	"context"

	"github.com/rockm4n/GymMate/internal/service/admin/models"
)

type AdminService interface {
	GetDashboard(ctx context.Context) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
