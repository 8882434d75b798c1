package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID      int64            // ID пользователя
	ProviderID  int64            // ID сервисного центра
	ServiceType string           // Название услуги (например, "Oil Change (Synthetic)")
	Date        time.Time        // Дата бронирования (без времени)
	StartTime   types.TimeString // Время начала (например, "10:00")
	Notes       *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	UserID          int64            // ID пользователя
	ProviderID      int64            // ID сервисного центра
	ServiceType     string           // Название услуги
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования

	// Денормализованные данные
	ServicePrice        *float64 // Цена услуги на момент бронирования
	VehicleBrand        *string  // Марка автомобиля
	VehicleModel        *string  // Модель автомобиля
	VehicleLicensePlate *string  // Госномер
	Notes               *string  // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
