package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// CalendarEvent is the read-model projection of a booking onto the calendar.
// Events are derived, never persisted: the set is recomputed every time the
// booking list changes.
type CalendarEvent struct {
	ID              int64 // = booking ID
	Title           string
	Date            time.Time
	Time            types.TimeString
	Status          BookingStatus
	Color           string
	DurationMinutes int
	Booking         *Booking
}

// DefaultEventColor is used for service types without a palette entry.
const DefaultEventColor = "#E2E8F0"

// eventPalette назначает пастельный цвет по базовому типу услуги
var eventPalette = map[string]string{
	"Oil Change":          "#FFD6A5",
	"Tire Rotation":       "#A8DADC",
	"Brake Service":       "#FFADAD",
	"Engine Diagnostic":   "#CDB4DB",
	"Wheel Alignment":     "#B5EAD7",
	"Battery Replacement": "#FDFFB6",
	"Full Inspection":     "#C7CEEA",
}

// EventColor returns the display color for a service type. The lookup uses
// the parenthetical-stripped base label; unmapped types get DefaultEventColor.
func EventColor(serviceType string) string {
	if color, ok := eventPalette[BaseServiceType(serviceType)]; ok {
		return color
	}
	return DefaultEventColor
}

// MapBookingsToEvents converts bookings into calendar events.
//
// The mapping is total and length-preserving: no booking is dropped, and id,
// date and time pass through unchanged. Duration is the booking's own value
// (standardized) when set, otherwise resolved from the duration table. Each
// event keeps a reference to its source booking for downstream actions.
func MapBookingsToEvents(bookings []*Booking, table *DurationTable) []CalendarEvent {
	events := make([]CalendarEvent, len(bookings))

	for i, booking := range bookings {
		events[i] = CalendarEvent{
			ID:              booking.ID,
			Title:           booking.ServiceType,
			Date:            booking.BookingDate,
			Time:            booking.StartTime,
			Status:          booking.Status,
			Color:           EventColor(booking.ServiceType),
			DurationMinutes: ResolveBookingDuration(booking, table),
			Booking:         booking,
		}
	}

	return events
}
