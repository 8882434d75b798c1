package providerservice

import "time"

// DaySchedule расписание работы провайдера на один день недели
type DaySchedule struct {
	IsOpen    bool    `json:"is_open"`
	OpenTime  *string `json:"open_time,omitempty"`  // HH:MM
	CloseTime *string `json:"close_time,omitempty"` // HH:MM
}

// WeekSchedule расписание работы провайдера на неделю
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ForWeekday возвращает расписание на указанный день недели
func (w *WeekSchedule) ForWeekday(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// Service услуга из каталога провайдера
type Service struct {
	Name            string   `json:"name"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
}

// Provider модель провайдера из ProviderService
type Provider struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Timezone     string       `json:"timezone"` // IANA, например "Europe/Moscow"
	ManagerIDs   []int64      `json:"manager_ids"`
	WorkingHours WeekSchedule `json:"working_hours"`
	Services     []Service    `json:"services"`
}

// IsManager проверяет, является ли пользователь менеджером провайдера
func (p *Provider) IsManager(userID int64) bool {
	for _, id := range p.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Location возвращает часовой пояс провайдера
// При пустом или неизвестном значении используется UTC
func (p *Provider) Location() *time.Location {
	if p.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// FindService ищет услугу в каталоге по точному названию
func (p *Provider) FindService(name string) *Service {
	for i := range p.Services {
		if p.Services[i].Name == name {
			return &p.Services[i]
		}
	}
	return nil
}

// ErrorResponse модель ошибки от ProviderService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
