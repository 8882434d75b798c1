package garageservice

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда у пользователя нет выбранного автомобиля
	ErrVehicleNotFound = errors.New("user has no selected vehicle")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("garageservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("garageservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что GarageService недоступен и бронирование создаётся без снапшота автомобиля
	ErrServiceDegraded = errors.New("garageservice unavailable: graceful degradation applied")
)
