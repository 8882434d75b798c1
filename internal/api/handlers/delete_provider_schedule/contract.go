package delete_provider_schedule

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	Delete(ctx context.Context, req *models.DeleteConfigRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
