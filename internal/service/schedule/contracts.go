package schedule

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/providerservice"
)

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	Upsert(ctx context.Context, config *domain.ProviderScheduleConfig) (*domain.ProviderScheduleConfig, error)
	GetByProviderAndService(ctx context.Context, providerID int64, serviceType *string) (*domain.ProviderScheduleConfig, error)
	GetConfigWithHierarchy(ctx context.Context, providerID int64, serviceType string) (*domain.ProviderScheduleConfig, error)
	GetAllByProvider(ctx context.Context, providerID int64) ([]*domain.ProviderScheduleConfig, error)
	DeleteByProviderAndService(ctx context.Context, providerID int64, serviceType *string) error
}

// ProviderServiceClient интерфейс клиента для ProviderService
type ProviderServiceClient interface {
	GetProvider(ctx context.Context, providerID int64) (*providerservice.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
