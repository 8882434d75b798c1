package update_provider_schedule

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
