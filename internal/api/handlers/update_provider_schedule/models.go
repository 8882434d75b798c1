package update_provider_schedule

import "github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"

// UpsertScheduleRequest HTTP запрос на создание или обновление конфигурации расписания
// serviceType == null задаёт настройки по умолчанию для всех услуг центра
type UpsertScheduleRequest struct {
	ServiceType             *string `json:"serviceType,omitempty"`
	DurationMinutes         int     `json:"durationMinutes"`
	MaxBookingsPerDay       *int    `json:"maxBookingsPerDay,omitempty"`
	AdvanceBookingDays      *int    `json:"advanceBookingDays,omitempty"`
	MinBookingNoticeMinutes *int    `json:"minBookingNoticeMinutes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpsertScheduleRequest) ToServiceRequest(userID, providerID int64) *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		UserID:                  userID,
		ProviderID:              providerID,
		ServiceType:             r.ServiceType,
		DurationMinutes:         r.DurationMinutes,
		MaxBookingsPerDay:       r.MaxBookingsPerDay,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
	}
}
