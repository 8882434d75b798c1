package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// validTransitions defines the booking status state machine:
// pending -> confirmed (provider accept)
// pending -> cancelled (provider decline / customer cancel)
// confirmed -> completed (provider complete)
// completed and cancelled are terminal.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted},
}

// IsValid returns true if the status is one of the known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true if no transition out of the status exists
func (s BookingStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// CanTransitionTo returns true if the state machine allows moving from s to next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking represents a scheduled or requested service engagement
type Booking struct {
	ID          int64
	UserID      int64
	ProviderID  int64
	ServiceType string // free-text label, may include a parenthetical qualifier
	BookingDate time.Time
	StartTime   types.TimeString
	// DurationMinutes is optional on input; 0 means "not set, resolve from the
	// provider's duration table". Non-zero values are standardized on write.
	DurationMinutes int
	Status          BookingStatus
	ServicePrice    *float64

	// Denormalized vehicle snapshot for history
	VehicleBrand        *string
	VehicleModel        *string
	VehicleLicensePlate *string
	Notes               *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking has not been cancelled
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// BlocksSlot returns true if the booking occupies time in the provider schedule
func (b *Booking) BlocksSlot() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can still be cancelled by the customer
func (b *Booking) CanBeCancelled() bool {
	return b.Status.CanTransitionTo(StatusCancelled)
}

// ProviderBookingsFilter фильтр для получения бронирований провайдера
type ProviderBookingsFilter struct {
	ProviderID      int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
