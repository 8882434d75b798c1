package get_provider_calendar

import (
	"context"

	calendar "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_provider_calendar"
)

type GetProviderCalendarUseCase interface {
	Execute(ctx context.Context, req *calendar.Request) (*calendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
