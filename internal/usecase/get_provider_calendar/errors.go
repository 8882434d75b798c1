package get_provider_calendar

import "errors"

var (
	// ErrProviderNotFound возвращается, когда сервисный центр не найден
	ErrProviderNotFound = errors.New("get_provider_calendar: provider not found")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером центра
	ErrAccessDenied = errors.New("get_provider_calendar: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_provider_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_provider_calendar: internal error")
)
