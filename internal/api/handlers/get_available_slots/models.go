package get_available_slots

import (
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	IsAvailable     bool   `json:"isAvailable"`
}

// SlotsResponse HTTP ответ со слотами на дату
type SlotsResponse struct {
	ProviderID  int64          `json:"providerId"`
	ServiceType string         `json:"serviceType"`
	Date        string         `json:"date"`
	Slots       []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *availableSlots.Response) *SlotsResponse {
	out := &SlotsResponse{
		ProviderID:  resp.ProviderID,
		ServiceType: resp.ServiceType,
		Date:        resp.Date.Format(domain.DateFormat),
		Slots:       make([]SlotResponse, len(resp.Slots)),
	}

	for i, slot := range resp.Slots {
		out.Slots[i] = SlotResponse{
			StartTime:       slot.StartTime.String(),
			EndTime:         slot.EndTime.String(),
			DurationMinutes: slot.DurationMinutes,
			IsAvailable:     slot.IsAvailable,
		}
	}

	return out
}
