package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модели

// UpsertConfigRequest запрос на создание или обновление конфигурации расписания
// ServiceType == nil задаёт значения по умолчанию для всего сервисного центра
type UpsertConfigRequest struct {
	UserID                  int64   `json:"userId"`
	ProviderID              int64   `json:"providerId"`
	ServiceType             *string `json:"serviceType,omitempty"` // NULL = для всех услуг
	DurationMinutes         int     `json:"durationMinutes"`
	MaxBookingsPerDay       *int    `json:"maxBookingsPerDay,omitempty"`       // 0 = без ограничений
	AdvanceBookingDays      *int    `json:"advanceBookingDays,omitempty"`      // 0 = без ограничений
	MinBookingNoticeMinutes *int    `json:"minBookingNoticeMinutes,omitempty"` // Минимальное время до начала
}

// DeleteConfigRequest запрос на удаление конфигурации
type DeleteConfigRequest struct {
	UserID      int64   `json:"userId"`
	ProviderID  int64   `json:"providerId"`
	ServiceType *string `json:"serviceType,omitempty"`
}

// Response модели

// ConfigResponse ответ с данными конфигурации расписания
type ConfigResponse struct {
	ID                      int64     `json:"id"`
	ProviderID              int64     `json:"providerId"`
	ServiceType             *string   `json:"serviceType,omitempty"`
	DurationMinutes         int       `json:"durationMinutes"`
	MaxBookingsPerDay       int       `json:"maxBookingsPerDay"`
	AdvanceBookingDays      int       `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int       `json:"minBookingNoticeMinutes"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// ConfigListResponse ответ со списком конфигураций
type ConfigListResponse struct {
	Configs []ConfigResponse `json:"configs"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.ProviderScheduleConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	return &ConfigResponse{
		ID:                      c.ID,
		ProviderID:              c.ProviderID,
		ServiceType:             c.ServiceType,
		DurationMinutes:         c.DurationMinutes,
		MaxBookingsPerDay:       c.MaxBookingsPerDay,
		AdvanceBookingDays:      c.AdvanceBookingDays,
		MinBookingNoticeMinutes: c.MinBookingNoticeMinutes,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
}

// FromDomainConfigList конвертирует список domain моделей в DTO
func FromDomainConfigList(configs []*domain.ProviderScheduleConfig) *ConfigListResponse {
	if configs == nil {
		return &ConfigListResponse{
			Configs: []ConfigResponse{},
		}
	}

	resp := &ConfigListResponse{
		Configs: make([]ConfigResponse, len(configs)),
	}

	for i, config := range configs {
		if configResp := FromDomainConfig(config); configResp != nil {
			resp.Configs[i] = *configResp
		}
	}

	return resp
}

// ToDomainConfig конвертирует UpsertConfigRequest в domain модель
// Длительность приводится к стандартной сетке при записи
func (r *UpsertConfigRequest) ToDomainConfig() *domain.ProviderScheduleConfig {
	config := &domain.ProviderScheduleConfig{
		ProviderID:              r.ProviderID,
		ServiceType:             r.ServiceType,
		DurationMinutes:         domain.StandardizeDuration(r.DurationMinutes),
		MaxBookingsPerDay:       domain.DefaultMaxBookingsPerDay,
		AdvanceBookingDays:      domain.DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
	}

	if r.MaxBookingsPerDay != nil {
		config.MaxBookingsPerDay = *r.MaxBookingsPerDay
	}
	if r.AdvanceBookingDays != nil {
		config.AdvanceBookingDays = *r.AdvanceBookingDays
	}
	if r.MinBookingNoticeMinutes != nil {
		config.MinBookingNoticeMinutes = *r.MinBookingNoticeMinutes
	}

	return config
}
