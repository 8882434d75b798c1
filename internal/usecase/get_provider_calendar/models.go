package get_provider_calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// ViewMode режим отображения календаря
// Закрытое перечисление: day, week, month
type ViewMode string

const (
	// ViewDay сетка одного дня с шагом 30 минут
	ViewDay ViewMode = "day"
	// ViewWeek сетка недели (понедельник - воскресенье) с шагом в час
	ViewWeek ViewMode = "week"
	// ViewMonth сетка месяца по неделям
	ViewMonth ViewMode = "month"
)

// ParseViewMode парсит режим отображения из строки
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewDay, ViewWeek, ViewMonth:
		return ViewMode(s), nil
	default:
		return "", fmt.Errorf("%w: unknown view mode %q", ErrInvalidInput, s)
	}
}

// Request модель запроса календаря
type Request struct {
	UserID     int64     // ID менеджера
	ProviderID int64     // ID сервисного центра
	View       ViewMode  // Режим отображения
	Date       time.Time // Опорная дата (любой день нужного дня/недели/месяца)
}

// Event событие календаря (проекция бронирования)
type Event struct {
	ID              int64            // ID бронирования
	Title           string           // Название услуги
	Date            time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность
	Status          string           // Статус бронирования
	Color           string           // Цвет для отображения
}

// DayCell ячейка дневной сетки
type DayCell struct {
	Label   types.TimeString // Метка времени (например, "09:30")
	Events  []Event          // События, начинающиеся ровно в это время
	HasFree bool             // Есть ли свободный слот с этим временем начала
}

// DayGrid сетка дневного режима: метки каждые 30 минут с 08:00 до 18:00
type DayGrid struct {
	Date  time.Time
	Cells []DayCell
}

// WeekCell ячейка недельной сетки (один день x один час)
type WeekCell struct {
	Date    time.Time // День ячейки
	Events  []Event   // События этого дня, начинающиеся в этот час
	HasFree bool      // Есть ли свободный слот, начинающийся в этот час
}

// WeekRow строка недельной сетки: один час по всем семи дням
type WeekRow struct {
	Label types.TimeString // Час строки (например, "14:00")
	Cells []WeekCell       // 7 ячеек, понедельник - воскресенье
}

// WeekGrid сетка недельного режима: часы с 09:00 до 18:00, неделя с понедельника
type WeekGrid struct {
	WeekStart time.Time   // Понедельник выбранной недели
	Days      []time.Time // 7 дней недели по порядку
	Rows      []WeekRow
}

// MonthCell ячейка месячной сетки
// Пустые ячейки выравнивания имеют Day == 0
type MonthCell struct {
	Day           int     // День месяца, 0 для пустой ячейки
	Events        []Event // Видимые события дня (не больше maxVisibleMonthEvents)
	OverflowCount int     // Сколько событий скрыто за счёт усечения
}

// MonthGrid сетка месячного режима
// Первая колонка - воскресенье, количество строк зависит от месяца
type MonthGrid struct {
	Year          int
	Month         time.Month
	LeadingBlanks int         // Пустые ячейки до первого числа
	Weeks         int         // Количество строк сетки
	Cells         []MonthCell // Weeks * 7 ячеек по порядку
}

// Response модель ответа: заполнено ровно одно поле, соответствующее View
type Response struct {
	ProviderID int64
	View       ViewMode
	Day        *DayGrid   `json:",omitempty"`
	Week       *WeekGrid  `json:",omitempty"`
	Month      *MonthGrid `json:",omitempty"`
}
