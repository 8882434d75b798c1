package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/schedule"
	garageClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/garageservice"
	providerClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/providerservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	configRepo       ConfigRepository
	durationResolver DurationResolver
	providerClient   ProviderServiceClient
	garageClient     GarageServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	durationResolver DurationResolver,
	providerClient ProviderServiceClient,
	garageClient GarageServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		configRepo:       configRepo,
		durationResolver: durationResolver,
		providerClient:   providerClient,
		garageClient:     garageClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, provider=%d, service=%s, date=%s, time=%s",
		req.UserID, req.ProviderID, req.ServiceType, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сервисный центр
	provider, err := uc.providerClient.GetProvider(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			uc.logger.Warn("CreateBooking: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("CreateBooking: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. Проверяем, что услуга есть в каталоге центра
	service := provider.FindService(req.ServiceType)
	if service == nil {
		service = provider.FindService(domain.BaseServiceType(req.ServiceType))
	}
	if service == nil {
		uc.logger.Warn("CreateBooking: service %q not found in provider=%d catalog",
			req.ServiceType, req.ProviderID)
		return nil, ErrServiceNotFound
	}

	// 4. Текущее время в часовом поясе сервисного центра
	// Все сравнения дат и времени ведутся в нём
	loc := provider.Location()
	now := uc.timeProvider.Now().In(loc)

	// 5. Собираем таблицу длительностей и определяем длительность услуги
	table, err := uc.durationResolver.BuildDurationTable(ctx, req.ProviderID, provider)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to build duration table: %v", err)
		return nil, fmt.Errorf("%w: failed to build duration table: %v", ErrInternal, err)
	}
	durationMinutes := table.Resolve(req.ServiceType)

	// 6. Получаем выбранный автомобиль пользователя (graceful degradation:
	// без выбранного автомобиля или при недоступности GarageService
	// бронирование создаётся без снимка данных автомобиля)
	vehicle, err := uc.garageClient.GetSelectedVehicleWithGracefulDegradation(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, garageClient.ErrVehicleNotFound) || errors.Is(err, garageClient.ErrServiceDegraded) {
			uc.logger.Warn("CreateBooking: no vehicle snapshot for user id=%d: %v", req.UserID, err)
			vehicle = nil
		} else {
			uc.logger.Error("CreateBooking: failed to get selected vehicle for user id=%d: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: failed to get selected vehicle: %v", ErrInternal, err)
		}
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем конфигурацию расписания с учетом иерархии
		config, err := uc.configRepo.GetConfigWithHierarchy(txCtx, req.ProviderID, req.ServiceType)
		if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("CreateBooking: failed to get config: %v", err)
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}

		// Если конфигурация не найдена, используем дефолтные значения
		if config == nil {
			config = &domain.ProviderScheduleConfig{
				DurationMinutes:         domain.DefaultServiceDurationMinutes,
				MaxBookingsPerDay:       domain.DefaultMaxBookingsPerDay,
				AdvanceBookingDays:      domain.DefaultAdvanceBookingDays,
				MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
			}
			uc.logger.Info("CreateBooking: using default config for provider=%d, service=%s",
				req.ProviderID, req.ServiceType)
		} else {
			uc.logger.Info("CreateBooking: using config id=%d", config.ID)
		}

		// 7.2. Валидация даты с учетом конфигурации
		if err := validateDate(req.Date, now, config.AdvanceBookingDays); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 7.3. Рабочие часы на указанную дату
		// День недели определяется в часовом поясе центра
		weekday := req.Date.In(loc).Weekday()
		workingHours := provider.WorkingHours.ForWeekday(weekday)
		if err := validateWorkingHours(workingHours, req.StartTime, durationMinutes); err != nil {
			uc.logger.Warn("CreateBooking: working hours validation failed: %v", err)
			return err
		}

		// 7.4. Валидация времени бронирования (minBookingNoticeMinutes)
		if err := validateBookingTime(req.Date, req.StartTime, now, config.MinBookingNoticeMinutes); err != nil {
			uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
			return err
		}

		// 7.5. Получаем все активные бронирования на эту дату с блокировкой (FOR UPDATE)
		filter := domain.ProviderBookingsFilter{
			ProviderID:      req.ProviderID,
			StartDate:       ptr.Ptr(req.Date),
			EndDate:         ptr.Ptr(req.Date),
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByProviderWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.6. Проверяем пересечение интервалов
		// Одно рабочее место: любое пересечение с активным бронированием блокирует слот
		overlaps, err := hasOverlappingBooking(req.StartTime, durationMinutes, bookings, table)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to check overlapping bookings: %v", ErrInternal, err)
		}
		if overlaps {
			uc.logger.Warn("CreateBooking: slot %s (%d min) overlaps an active booking",
				req.StartTime, durationMinutes)
			return ErrSlotNotAvailable
		}

		// 7.7. Проверяем лимит бронирований на день
		if config.HasDailyLimit() {
			count, err := uc.bookingRepo.CountByProviderAndDate(txCtx, req.ProviderID, req.Date)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to count daily bookings: %v", err)
				return fmt.Errorf("%w: failed to count daily bookings: %v", ErrInternal, err)
			}
			if count >= config.MaxBookingsPerDay {
				uc.logger.Warn("CreateBooking: daily limit reached, %d/%d bookings",
					count, config.MaxBookingsPerDay)
				return ErrDailyLimitReached
			}
		}

		// 7.8. Создаем бронирование со снимком данных услуги и автомобиля
		// Новые бронирования ожидают подтверждения менеджером
		booking := &domain.Booking{
			UserID:          req.UserID,
			ProviderID:      req.ProviderID,
			ServiceType:     req.ServiceType,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: durationMinutes,
			Status:          domain.StatusPending,
			ServicePrice:    service.Price,
			Notes:           req.Notes,
		}

		if vehicle != nil {
			booking.VehicleBrand = &vehicle.Brand
			booking.VehicleModel = &vehicle.Model
			booking.VehicleLicensePlate = &vehicle.LicensePlate
		}

		// 7.9. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (status=%s)", result.ID, result.Status)

	// Конвертируем в response
	return &Response{
		ID:                  result.ID,
		UserID:              result.UserID,
		ProviderID:          result.ProviderID,
		ServiceType:         result.ServiceType,
		BookingDate:         result.BookingDate,
		StartTime:           result.StartTime,
		DurationMinutes:     result.DurationMinutes,
		Status:              string(result.Status),
		ServicePrice:        result.ServicePrice,
		VehicleBrand:        result.VehicleBrand,
		VehicleModel:        result.VehicleModel,
		VehicleLicensePlate: result.VehicleLicensePlate,
		Notes:               result.Notes,
		CreatedAt:           result.CreatedAt,
		UpdatedAt:           result.UpdatedAt,
	}, nil
}
