package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/schedule"
	providerClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/providerservice"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

// Service сервис для работы с конфигурацией расписания сервисного центра
type Service struct {
	configRepo     ConfigRepository
	providerClient ProviderServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	configRepo ConfigRepository,
	providerClient ProviderServiceClient,
	logger Logger,
) *Service {
	return &Service{
		configRepo:     configRepo,
		providerClient: providerClient,
		logger:         logger,
	}
}

// Upsert создает или обновляет конфигурацию расписания
// Доступно только менеджерам сервисного центра
// Длительности услуг хранятся в разрезе конкретного центра: запись для одного
// центра никогда не влияет на расписание другого
func (s *Service) Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Upsert: upserting config for provider=%d, service=%v by user=%d",
		req.ProviderID, req.ServiceType, req.UserID)

	// 1. Валидируем входные данные
	if err := s.validateConfigData(req); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сервисный центр для проверки прав доступа и каталога услуг
	provider, err := s.providerClient.GetProvider(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			s.logger.Warn("Upsert: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("Upsert: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. Проверяем права доступа (только менеджер центра)
	if !provider.IsManager(req.UserID) {
		s.logger.Warn("Upsert: user=%d is not a manager of provider=%d", req.UserID, req.ProviderID)
		return nil, ErrAccessDenied
	}

	// 4. Если указан serviceType, проверяем его наличие в каталоге центра
	if req.ServiceType != nil {
		if provider.FindService(*req.ServiceType) == nil {
			s.logger.Warn("Upsert: service %q not found in provider=%d catalog",
				*req.ServiceType, req.ProviderID)
			return nil, ErrServiceNotFound
		}
	}

	// 5. Создаем или обновляем конфигурацию
	domainConfig := req.ToDomainConfig()
	savedConfig, err := s.configRepo.Upsert(ctx, domainConfig)
	if err != nil {
		s.logger.Error("Upsert: repository error: %v", err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved config id=%d (duration=%d min)",
		savedConfig.ID, savedConfig.DurationMinutes)
	return models.FromDomainConfig(savedConfig), nil
}

// GetAllByProvider получает все конфигурации расписания сервисного центра
// Публичный метод - доступен всем
func (s *Service) GetAllByProvider(ctx context.Context, providerID int64) (*models.ConfigListResponse, error) {
	s.logger.Info("GetAllByProvider: fetching configs for provider=%d", providerID)

	configs, err := s.configRepo.GetAllByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("GetAllByProvider: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetAllByProvider - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllByProvider: successfully fetched %d configs for provider=%d", len(configs), providerID)
	return models.FromDomainConfigList(configs), nil
}

// GetForService получает конфигурацию для услуги с учетом иерархии приоритетов
// Приоритет: конфигурация услуги > конфигурация центра по умолчанию
func (s *Service) GetForService(ctx context.Context, providerID int64, serviceType string) (*models.ConfigResponse, error) {
	s.logger.Info("GetForService: fetching config for provider=%d, service=%s", providerID, serviceType)

	config, err := s.configRepo.GetConfigWithHierarchy(ctx, providerID, serviceType)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("GetForService: no config for provider=%d, service=%s", providerID, serviceType)
			return nil, ErrConfigNotFound
		}
		s.logger.Error("GetForService: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetForService - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(config), nil
}

// Delete удаляет конфигурацию расписания
// Доступно только менеджерам сервисного центра
func (s *Service) Delete(ctx context.Context, req *models.DeleteConfigRequest) error {
	s.logger.Info("Delete: deleting config for provider=%d, service=%v by user=%d",
		req.ProviderID, req.ServiceType, req.UserID)

	// Проверяем права доступа
	provider, err := s.providerClient.GetProvider(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			s.logger.Warn("Delete: provider id=%d not found", req.ProviderID)
			return ErrProviderNotFound
		}
		s.logger.Error("Delete: failed to get provider id=%d: %v", req.ProviderID, err)
		return fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	if !provider.IsManager(req.UserID) {
		s.logger.Warn("Delete: user=%d is not a manager of provider=%d", req.UserID, req.ProviderID)
		return ErrAccessDenied
	}

	if err := s.configRepo.DeleteByProviderAndService(ctx, req.ProviderID, req.ServiceType); err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Delete: config for provider=%d, service=%v not found", req.ProviderID, req.ServiceType)
			return ErrConfigNotFound
		}
		s.logger.Error("Delete: repository error for provider=%d: %v", req.ProviderID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted config for provider=%d, service=%v", req.ProviderID, req.ServiceType)
	return nil
}

// BuildDurationTable собирает таблицу длительностей услуг сервисного центра
//
// Источники в порядке возрастания приоритета:
//  1. Каталог услуг центра из ProviderService (длительности из карточек услуг)
//  2. Сохранённые конфигурации расписания (переопределения менеджера)
//
// Значение по умолчанию берётся из конфигурации центра без привязки к услуге,
// если такой нет - стандартные 60 минут
func (s *Service) BuildDurationTable(ctx context.Context, providerID int64, provider *providerClient.Provider) (*domain.DurationTable, error) {
	configs, err := s.configRepo.GetAllByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("BuildDurationTable: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: BuildDurationTable - repository error: %v", ErrInternal, err)
	}

	// Значение по умолчанию из конфигурации центра (service_type IS NULL)
	defaultMinutes := domain.DefaultServiceDurationMinutes
	for _, cfg := range configs {
		if cfg.IsDefault() {
			defaultMinutes = cfg.DurationMinutes
			break
		}
	}

	table := domain.NewDurationTable(defaultMinutes)

	// Длительности из каталога услуг центра
	if provider != nil {
		for _, svc := range provider.Services {
			if svc.DurationMinutes != nil {
				table.Register(svc.Name, *svc.DurationMinutes)
			}
		}
	}

	// Переопределения менеджера имеют приоритет над каталогом
	for _, cfg := range configs {
		if cfg.ServiceType != nil {
			table.Register(*cfg.ServiceType, cfg.DurationMinutes)
		}
	}

	s.logger.Info("BuildDurationTable: built table for provider=%d (%d services, default=%d min)",
		providerID, table.Len(), table.DefaultMinutes())
	return table, nil
}

// validateConfigData проверяет бизнес-ограничения конфигурации
func (s *Service) validateConfigData(req *models.UpsertConfigRequest) error {
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	if req.ServiceType != nil && len(*req.ServiceType) > domain.MaxServiceTypeLength {
		return fmt.Errorf("%w: serviceType is too long", ErrInvalidInput)
	}

	if req.MaxBookingsPerDay != nil {
		if *req.MaxBookingsPerDay < 0 || *req.MaxBookingsPerDay > domain.MaxBookingsPerDayLimit {
			return fmt.Errorf("%w: maxBookingsPerDay must be between 0 and %d",
				ErrInvalidInput, domain.MaxBookingsPerDayLimit)
		}
	}

	if req.AdvanceBookingDays != nil {
		if *req.AdvanceBookingDays < domain.MinAdvanceBookingDays || *req.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
			return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
				ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
		}
	}

	if req.MinBookingNoticeMinutes != nil {
		if *req.MinBookingNoticeMinutes < domain.MinBookingNoticeMinutes || *req.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
			return fmt.Errorf("%w: minBookingNoticeMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinBookingNoticeMinutes, domain.MaxBookingNoticeMinutes)
		}
	}

	return nil
}
