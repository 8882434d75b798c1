package get_provider_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	providerClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/providerservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// UseCase use case для построения календарной сетки сервисного центра
//
// Все три режима - чистые проекции одного и того же набора данных:
// события получаются из бронирований через MapBookingsToEvents, свободные
// слоты - из рабочих часов через ComputeAvailability. Сетка пересобирается
// на каждый запрос, локальное состояние не хранится
type UseCase struct {
	bookingRepo      BookingRepository
	durationResolver DurationResolver
	providerClient   ProviderServiceClient
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	durationResolver DurationResolver,
	providerClient ProviderServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		durationResolver: durationResolver,
		providerClient:   providerClient,
		logger:           logger,
	}
}

// Execute строит календарную сетку для запрошенного режима
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetProviderCalendar: provider=%d, view=%s, date=%s, user=%d",
		req.ProviderID, req.View, req.Date.Format(domain.DateFormat), req.UserID)

	// 1. Валидация входных данных
	if req.ProviderID <= 0 {
		return nil, fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := ParseViewMode(string(req.View)); err != nil {
		uc.logger.Warn("GetProviderCalendar: invalid view=%s", req.View)
		return nil, err
	}

	// 2. Получаем сервисный центр и проверяем права менеджера
	provider, err := uc.providerClient.GetProvider(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			uc.logger.Warn("GetProviderCalendar: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("GetProviderCalendar: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	if !provider.IsManager(req.UserID) {
		uc.logger.Warn("GetProviderCalendar: user=%d is not a manager of provider=%d",
			req.UserID, req.ProviderID)
		return nil, ErrAccessDenied
	}

	// 3. Часовой пояс центра: даты, дни недели и границы диапазона считаем в нём
	loc := provider.Location()

	// 4. Определяем диапазон дат для выбранного режима
	startDate, endDate := dateRange(req.View, req.Date, loc)

	// 5. Собираем таблицу длительностей
	table, err := uc.durationResolver.BuildDurationTable(ctx, req.ProviderID, provider)
	if err != nil {
		uc.logger.Error("GetProviderCalendar: failed to build duration table: %v", err)
		return nil, fmt.Errorf("%w: failed to build duration table: %v", ErrInternal, err)
	}

	// 6. Получаем бронирования диапазона (без отменённых)
	filter := domain.ProviderBookingsFilter{
		ProviderID:      req.ProviderID,
		StartDate:       ptr.Ptr(startDate),
		EndDate:         ptr.Ptr(endDate),
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByProviderWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetProviderCalendar: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Проецируем бронирования в события календаря
	events := domain.MapBookingsToEvents(bookings, table)

	// 8. Свободные слоты из рабочих часов (для дневного и недельного режимов)
	var slots []domain.TimeSlot
	if req.View != ViewMonth {
		slots, err = uc.buildFreeSlots(provider, bookings, table, loc)
		if err != nil {
			uc.logger.Error("GetProviderCalendar: failed to build slots: %v", err)
			return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
		}
	}

	// 9. Строим сетку выбранного режима
	resp := &Response{
		ProviderID: req.ProviderID,
		View:       req.View,
	}

	switch req.View {
	case ViewDay:
		grid, err := buildDayGrid(req.Date, events, slots, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to build day grid: %v", ErrInternal, err)
		}
		resp.Day = grid

	case ViewWeek:
		grid, err := buildWeekGrid(startDate, events, slots, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to build week grid: %v", ErrInternal, err)
		}
		resp.Week = grid

	case ViewMonth:
		resp.Month = buildMonthGrid(req.Date, events, loc)
	}

	uc.logger.Info("GetProviderCalendar: built %s grid for provider=%d with %d events",
		req.View, req.ProviderID, len(events))
	return resp, nil
}

// dateRange возвращает границы диапазона дат для режима отображения
func dateRange(view ViewMode, date time.Time, loc *time.Location) (time.Time, time.Time) {
	d := date.In(loc)
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)

	switch view {
	case ViewWeek:
		start := weekStartFor(date, loc)
		return start, start.AddDate(0, 0, daysPerWeek-1)
	case ViewMonth:
		start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, -1)
	default:
		return day, day
	}
}

// buildFreeSlots строит базовую сетку слотов из рабочих часов центра на все
// дни недели и помечает занятые по активным бронированиям диапазона
func (uc *UseCase) buildFreeSlots(
	provider *providerClient.Provider,
	bookings []*domain.Booking,
	table *domain.DurationTable,
	loc *time.Location,
) ([]domain.TimeSlot, error) {
	baseSlots := make([]domain.TimeSlot, 0)

	for dayOfWeek := 0; dayOfWeek < daysPerWeek; dayOfWeek++ {
		day := provider.WorkingHours.ForWeekday(time.Weekday(dayOfWeek))
		if !day.IsOpen || day.OpenTime == nil || day.CloseTime == nil {
			continue
		}

		openTime, err := types.NewTimeStringFromString(*day.OpenTime)
		if err != nil {
			return nil, err
		}
		closeTime, err := types.NewTimeStringFromString(*day.CloseTime)
		if err != nil {
			return nil, err
		}

		daySlots, err := domain.GenerateWeeklySlots(dayOfWeek, openTime, closeTime, "", table.DefaultMinutes())
		if err != nil {
			return nil, err
		}

		baseSlots = append(baseSlots, daySlots...)
	}

	return domain.ComputeAvailability(bookings, baseSlots, table, loc), nil
}
