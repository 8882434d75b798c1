package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/providerservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceType) == "" {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}

	if len(req.ServiceType) > domain.MaxServiceTypeLength {
		return fmt.Errorf("%w: serviceType is too long", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(bookingDate time.Time, now time.Time, advanceBookingDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	// Проверяем, что дата не превышает ограничение advanceBookingDays
	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	bookingDateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())

	if bookingDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateBookingTime проверяет, что бронирование не нарушает minBookingNoticeMinutes
// now должно быть приведено к часовому поясу сервисного центра
func validateBookingTime(
	bookingDate time.Time,
	startTime types.TimeString,
	now time.Time,
	minBookingNoticeMinutes int,
) error {
	// Если дата бронирования не сегодня, проверка не нужна
	if !isSameDay(bookingDate, now) {
		return nil
	}

	// Вычисляем минимальное допустимое время
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minBookingNoticeMinutes)
	if err != nil {
		return fmt.Errorf("%w: failed to calculate min allowed time: %v", ErrInternal, err)
	}

	// Проверяем, что время начала не раньше минимального
	if startTime.IsBefore(minAllowedTime) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minBookingNoticeMinutes)
	}

	return nil
}

// validateWorkingHours проверяет, что интервал бронирования помещается в рабочие часы
func validateWorkingHours(day providerservice.DaySchedule, startTime types.TimeString, durationMinutes int) error {
	if !day.IsOpen || day.OpenTime == nil || day.CloseTime == nil {
		return ErrProviderClosed
	}

	openTime, err := types.NewTimeStringFromString(*day.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: invalid open time: %v", ErrInternal, err)
	}
	closeTime, err := types.NewTimeStringFromString(*day.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: invalid close time: %v", ErrInternal, err)
	}

	if startTime.IsBefore(openTime) {
		return ErrOutsideWorkingHours
	}

	endTime, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return ErrOutsideWorkingHours
	}

	if endTime.IsAfter(closeTime) {
		return ErrOutsideWorkingHours
	}

	return nil
}

// hasOverlappingBooking проверяет, пересекается ли интервал с активными бронированиями
// Границы интервалов полуоткрытые: бронирования, заканчивающиеся ровно в момент
// начала нового, конфликтом не считаются
func hasOverlappingBooking(
	startTime types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
	table *domain.DurationTable,
) (bool, error) {
	slotEnd, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return false, err
	}

	for _, booking := range bookings {
		// Завершённые и отменённые бронирования слоты не занимают
		if !booking.BlocksSlot() {
			continue
		}

		bookingStart := booking.StartTime
		bookingEnd, err := booking.StartTime.AddMinutes(domain.ResolveBookingDuration(booking, table))
		if err != nil {
			// Если не можем вычислить конец бронирования, пропускаем
			continue
		}

		// Строгие неравенства: соприкасающиеся интервалы не конфликтуют
		if bookingStart.IsBefore(slotEnd) && bookingEnd.IsAfter(startTime) {
			return true, nil
		}
	}

	return false, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
