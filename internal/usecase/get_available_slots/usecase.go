package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/schedule"
	providerClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/providerservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// UseCase use case для получения слотов сервисного центра на дату
//
// Доступность считается с нуля на каждый запрос: базовая сетка слотов
// строится из рабочих часов центра, затем активные бронирования помечают
// пересекающиеся слоты занятыми. Отмена бронирования автоматически
// освобождает слот при следующем запросе
type UseCase struct {
	bookingRepo      BookingRepository
	configRepo       ConfigRepository
	durationResolver DurationResolver
	providerClient   ProviderServiceClient
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	durationResolver DurationResolver,
	providerClient ProviderServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		configRepo:       configRepo,
		durationResolver: durationResolver,
		providerClient:   providerClient,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, provider=%d, service=%s, date=%s",
		req.UserID, req.ProviderID, req.ServiceType, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сервисный центр
	provider, err := uc.providerClient.GetProvider(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			uc.logger.Warn("GetAvailableSlots: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. Проверяем, что услуга есть в каталоге центра
	if provider.FindService(req.ServiceType) == nil &&
		provider.FindService(domain.BaseServiceType(req.ServiceType)) == nil {
		uc.logger.Warn("GetAvailableSlots: service %q not found in provider=%d catalog",
			req.ServiceType, req.ProviderID)
		return nil, ErrServiceNotFound
	}

	// 4. Текущее время в часовом поясе сервисного центра
	loc := provider.Location()
	now := uc.timeProvider.Now().In(loc)

	// 5. Собираем таблицу длительностей
	table, err := uc.durationResolver.BuildDurationTable(ctx, req.ProviderID, provider)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build duration table: %v", err)
		return nil, fmt.Errorf("%w: failed to build duration table: %v", ErrInternal, err)
	}
	durationMinutes := table.Resolve(req.ServiceType)

	// 6. Получаем конфигурацию расписания с учетом иерархии
	config, err := uc.configRepo.GetConfigWithHierarchy(ctx, req.ProviderID, req.ServiceType)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтные значения
	if config == nil {
		config = &domain.ProviderScheduleConfig{
			DurationMinutes:         domain.DefaultServiceDurationMinutes,
			MaxBookingsPerDay:       domain.DefaultMaxBookingsPerDay,
			AdvanceBookingDays:      domain.DefaultAdvanceBookingDays,
			MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
		}
		uc.logger.Info("GetAvailableSlots: using default config for provider=%d, service=%s",
			req.ProviderID, req.ServiceType)
	} else {
		uc.logger.Info("GetAvailableSlots: using config id=%d", config.ID)
	}

	// 7. Валидация даты с учетом конфигурации
	if err := validateDate(req.Date, now, config.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 8. Рабочие часы на указанную дату (день недели в поясе центра)
	weekday := req.Date.In(loc).Weekday()
	workingHours := provider.WorkingHours.ForWeekday(weekday)
	if !workingHours.IsOpen || workingHours.OpenTime == nil || workingHours.CloseTime == nil {
		uc.logger.Info("GetAvailableSlots: provider is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:        req.Date,
			ProviderID:  req.ProviderID,
			ServiceType: req.ServiceType,
			Slots:       []Slot{},
		}, nil
	}

	openTime, err := types.NewTimeStringFromString(*workingHours.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid open time: %v", ErrInternal, err)
	}
	closeTime, err := types.NewTimeStringFromString(*workingHours.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid close time: %v", ErrInternal, err)
	}

	// 9. Генерируем базовую сетку слотов на день
	baseSlots, err := domain.GenerateWeeklySlots(int(weekday), openTime, closeTime, req.ServiceType, durationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 10. Получаем все активные бронирования на эту дату
	filter := domain.ProviderBookingsFilter{
		ProviderID:      req.ProviderID,
		StartDate:       ptr.Ptr(req.Date),
		EndDate:         ptr.Ptr(req.Date),
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByProviderWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 11. Помечаем занятые слоты по пересечению интервалов
	computed := domain.ComputeAvailability(bookings, baseSlots, table, loc)

	// 12. На сегодняшнюю дату убираем слоты, нарушающие minBookingNoticeMinutes
	slots, err := uc.filterByNotice(computed, req, now, config.MinBookingNoticeMinutes)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: %d slots for provider=%d, service=%s, date=%s",
		len(slots), req.ProviderID, req.ServiceType, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:        req.Date,
		ProviderID:  req.ProviderID,
		ServiceType: req.ServiceType,
		Slots:       slots,
	}, nil
}

// filterByNotice конвертирует слоты в ответ, отбрасывая на сегодняшнюю дату
// слоты, начинающиеся раньше now + minBookingNoticeMinutes
func (uc *UseCase) filterByNotice(
	computed []domain.TimeSlot,
	req *Request,
	now time.Time,
	minBookingNoticeMinutes int,
) ([]Slot, error) {
	var minAllowedTime types.TimeString
	today := isSameDay(req.Date, now)

	if today {
		currentTime := types.NewTimeString(now)
		allowed, err := currentTime.AddMinutes(minBookingNoticeMinutes)
		if err != nil {
			// Окно уведомления выходит за пределы суток - на сегодня слотов не осталось
			uc.logger.Info("GetAvailableSlots: notice window %d min from %s passes midnight, no slots left today",
				minBookingNoticeMinutes, currentTime)
			return []Slot{}, nil
		}
		minAllowedTime = allowed
	}

	slots := make([]Slot, 0, len(computed))
	for _, s := range computed {
		if today && s.StartTime.IsBefore(minAllowedTime) {
			continue
		}
		slots = append(slots, Slot{
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			DurationMinutes: s.DurationMinutes,
			IsAvailable:     s.IsAvailable,
		})
	}

	return slots, nil
}
