package get_provider_schedule

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetAllByProvider(ctx context.Context, providerID int64) (*models.ConfigListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
