package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// TimeSlot represents a recurring weekly availability window of a provider
type TimeSlot struct {
	ID              int64
	DayOfWeek       int // 0-6, Sunday-based
	StartTime       types.TimeString
	EndTime         types.TimeString
	ServiceType     string
	DurationMinutes int // standardized
	IsAvailable     bool
}

// Matches returns true if the slot starts at the given weekday and time
func (s *TimeSlot) Matches(dayOfWeek int, startTime types.TimeString) bool {
	return s.DayOfWeek == dayOfWeek && s.StartTime == startTime
}

// ComputeAvailability projects the current booking set onto the base slots.
//
// A slot is marked unavailable when any booking with a blocking status
// (pending or confirmed) falls on the slot's weekday and its interval
// [start, start+duration) intersects the slot's [start, end). Completed and
// cancelled bookings never block, so a booking that transitions to cancelled
// stops occupying its slot on the next computation.
//
// The projection is a full recompute: the input slice is never mutated, the
// result does not depend on booking order, and repeated calls on the same
// inputs return the same slots.
func ComputeAvailability(bookings []*Booking, baseSlots []TimeSlot, table *DurationTable, loc *time.Location) []TimeSlot {
	if loc == nil {
		loc = time.UTC
	}

	result := make([]TimeSlot, len(baseSlots))
	copy(result, baseSlots)

	for i := range result {
		result[i].IsAvailable = true

		slotStart, err := result[i].StartTime.Minutes()
		if err != nil {
			continue
		}
		slotEnd, err := result[i].EndTime.Minutes()
		if err != nil || slotEnd <= slotStart {
			// Некорректное окно - конец вычисляем из длительности
			slotEnd = slotStart + result[i].DurationMinutes
		}

		for _, booking := range bookings {
			if !booking.BlocksSlot() {
				continue
			}

			if int(booking.BookingDate.In(loc).Weekday()) != result[i].DayOfWeek {
				continue
			}

			bookingStart, err := booking.StartTime.Minutes()
			if err != nil {
				continue
			}
			bookingEnd := bookingStart + ResolveBookingDuration(booking, table)

			// Пересечение полуоткрытых интервалов: касание границами не блокирует
			if bookingStart < slotEnd && bookingEnd > slotStart {
				result[i].IsAvailable = false
				break
			}
		}
	}

	return result
}

// GenerateWeeklySlots builds the base slots for one weekday from an opening
// window. Slots are laid out back to back with the service duration as the
// step; a slot that would cross the closing time is dropped, so
// startTime+duration == endTime holds for every generated slot.
func GenerateWeeklySlots(dayOfWeek int, openTime, closeTime types.TimeString, serviceType string, durationMinutes int) ([]TimeSlot, error) {
	duration := StandardizeDuration(durationMinutes)

	slots := make([]TimeSlot, 0)
	current := openTime

	for current.IsBefore(closeTime) {
		slotEnd, err := current.AddMinutes(duration)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		slots = append(slots, TimeSlot{
			DayOfWeek:       dayOfWeek,
			StartTime:       current,
			EndTime:         slotEnd,
			ServiceType:     serviceType,
			DurationMinutes: duration,
			IsAvailable:     true,
		})

		current = slotEnd
	}

	return slots, nil
}
