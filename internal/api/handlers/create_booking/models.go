package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	createBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProviderID  int64   `json:"providerId"`
	ServiceType string  `json:"serviceType"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                  int64    `json:"id"`
	UserID              int64    `json:"userId"`
	ProviderID          int64    `json:"providerId"`
	ServiceType         string   `json:"serviceType"`
	BookingDate         string   `json:"bookingDate"`
	StartTime           string   `json:"startTime"`
	DurationMinutes     int      `json:"durationMinutes"`
	Status              string   `json:"status"`
	ServicePrice        *float64 `json:"servicePrice,omitempty"`
	VehicleBrand        *string  `json:"vehicleBrand,omitempty"`
	VehicleModel        *string  `json:"vehicleModel,omitempty"`
	VehicleLicensePlate *string  `json:"vehicleLicensePlate,omitempty"`
	Notes               *string  `json:"notes,omitempty"`
	CreatedAt           string   `json:"createdAt"`
	UpdatedAt           string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:      userID,
		ProviderID:  r.ProviderID,
		ServiceType: r.ServiceType,
		Date:        bookingDate,
		StartTime:   startTime,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                  resp.ID,
		UserID:              resp.UserID,
		ProviderID:          resp.ProviderID,
		ServiceType:         resp.ServiceType,
		BookingDate:         resp.BookingDate.Format(domain.DateFormat),
		StartTime:           resp.StartTime.String(),
		DurationMinutes:     resp.DurationMinutes,
		Status:              resp.Status,
		ServicePrice:        resp.ServicePrice,
		VehicleBrand:        resp.VehicleBrand,
		VehicleModel:        resp.VehicleModel,
		VehicleLicensePlate: resp.VehicleLicensePlate,
		Notes:               resp.Notes,
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           resp.UpdatedAt.Format(time.RFC3339),
	}
}
