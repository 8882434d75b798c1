package create_booking

import "errors"

var (
	// ErrProviderNotFound возвращается, когда сервисный центр не найден
	ErrProviderNotFound = errors.New("create_booking: provider not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге центра
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrProviderClosed возвращается, когда сервисный центр закрыт в указанную дату
	ErrProviderClosed = errors.New("create_booking: provider is closed on this date")

	// ErrOutsideWorkingHours возвращается, когда бронирование не помещается в рабочие часы
	ErrOutsideWorkingHours = errors.New("create_booking: booking does not fit working hours")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с другим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrDailyLimitReached возвращается при достижении лимита бронирований на день
	ErrDailyLimitReached = errors.New("create_booking: daily booking limit reached")

	// ErrTooLateToBook возвращается, когда попытка забронировать слот нарушает minBookingNoticeMinutes
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
