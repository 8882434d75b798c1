package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID      int64     // ID пользователя (для логирования, не влияет на результат)
	ProviderID  int64     // ID сервисного центра
	ServiceType string    // Название услуги
	Date        time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date        time.Time // Дата, на которую запрашивались слоты
	ProviderID  int64     // ID сервисного центра
	ServiceType string    // Название услуги
	Slots       []Slot    // Слоты дня с признаком доступности
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	EndTime         types.TimeString // Время конца слота
	DurationMinutes int              // Длительность слота в минутах
	IsAvailable     bool             // Свободен ли слот
}
