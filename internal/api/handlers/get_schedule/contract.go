package get_schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rockm4n/GymMate/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWeek(ctx context.Context, anchor time.Time, userID *uuid.UUID) (*models.WeekSchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
