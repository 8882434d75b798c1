package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// 2024-03-04 - понедельник
var monday = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

func mondaySlot(start, end types.TimeString, duration int) TimeSlot {
	return TimeSlot{
		DayOfWeek:       1,
		StartTime:       start,
		EndTime:         end,
		ServiceType:     "Oil Change",
		DurationMinutes: duration,
		IsAvailable:     true,
	}
}

func TestComputeAvailability_PendingBookingBlocksSlot(t *testing.T) {
	table := NewDurationTable(60)
	table.Register("Oil Change", 30)

	base := []TimeSlot{mondaySlot("09:00", "09:30", 30)}
	bookings := []*Booking{{
		ServiceType: "Oil Change",
		BookingDate: monday,
		StartTime:   "09:00",
		Status:      StatusPending,
	}}

	result := ComputeAvailability(bookings, base, table, time.UTC)

	require.Len(t, result, 1)
	assert.False(t, result[0].IsAvailable)
}

func TestComputeAvailability_CancelledBookingDoesNotBlock(t *testing.T) {
	table := NewDurationTable(60)
	table.Register("Oil Change", 30)

	base := []TimeSlot{mondaySlot("09:00", "09:30", 30)}
	bookings := []*Booking{{
		ServiceType: "Oil Change",
		BookingDate: monday,
		StartTime:   "09:00",
		Status:      StatusCancelled,
	}}

	result := ComputeAvailability(bookings, base, table, time.UTC)

	require.Len(t, result, 1)
	assert.True(t, result[0].IsAvailable)
}

func TestComputeAvailability_CompletedBookingDoesNotBlock(t *testing.T) {
	table := NewDurationTable(60)

	base := []TimeSlot{mondaySlot("09:00", "10:00", 60)}
	bookings := []*Booking{{
		ServiceType: "Oil Change",
		BookingDate: monday,
		StartTime:   "09:00",
		Status:      StatusCompleted,
	}}

	result := ComputeAvailability(bookings, base, table, time.UTC)
	assert.True(t, result[0].IsAvailable)
}

func TestComputeAvailability_LongBookingBlocksEveryOverlappingSlot(t *testing.T) {
	table := NewDurationTable(60)
	table.Register("Brake Service", 90)

	// Сетка слотов 09:00-11:00 с шагом 30 минут
	base := []TimeSlot{
		mondaySlot("09:00", "09:30", 30),
		mondaySlot("09:30", "10:00", 30),
		mondaySlot("10:00", "10:30", 30),
		mondaySlot("10:30", "11:00", 30),
	}

	// Бронирование 09:00-10:30 должно закрыть первые три слота, но не четвёртый
	bookings := []*Booking{{
		ServiceType: "Brake Service",
		BookingDate: monday,
		StartTime:   "09:00",
		Status:      StatusConfirmed,
	}}

	result := ComputeAvailability(bookings, base, table, time.UTC)

	require.Len(t, result, 4)
	assert.False(t, result[0].IsAvailable)
	assert.False(t, result[1].IsAvailable)
	assert.False(t, result[2].IsAvailable)
	assert.True(t, result[3].IsAvailable)
}

func TestComputeAvailability_TouchingIntervalsDoNotBlock(t *testing.T) {
	table := NewDurationTable(60)
	table.Register("Oil Change", 30)

	base := []TimeSlot{mondaySlot("09:30", "10:00", 30)}
	bookings := []*Booking{{
		ServiceType: "Oil Change",
		BookingDate: monday,
		StartTime:   "09:00", // заканчивается ровно в 09:30
		Status:      StatusConfirmed,
	}}

	result := ComputeAvailability(bookings, base, table, time.UTC)
	assert.True(t, result[0].IsAvailable)
}

func TestComputeAvailability_DifferentWeekdayDoesNotBlock(t *testing.T) {
	table := NewDurationTable(60)

	base := []TimeSlot{mondaySlot("09:00", "10:00", 60)}
	bookings := []*Booking{{
		ServiceType: "Oil Change",
		BookingDate: monday.AddDate(0, 0, 1), // вторник
		StartTime:   "09:00",
		Status:      StatusPending,
	}}

	result := ComputeAvailability(bookings, base, table, time.UTC)
	assert.True(t, result[0].IsAvailable)
}

func TestComputeAvailability_DoesNotMutateInputAndIsIdempotent(t *testing.T) {
	table := NewDurationTable(60)
	table.Register("Oil Change", 30)

	base := []TimeSlot{mondaySlot("09:00", "09:30", 30)}
	bookings := []*Booking{{
		ServiceType: "Oil Change",
		BookingDate: monday,
		StartTime:   "09:00",
		Status:      StatusPending,
	}}

	first := ComputeAvailability(bookings, base, table, time.UTC)
	second := ComputeAvailability(bookings, base, table, time.UTC)

	assert.True(t, base[0].IsAvailable, "input slice must not be mutated")
	assert.Equal(t, first, second)

	// Отмена бронирования освобождает слот при следующем пересчёте
	bookings[0].Status = StatusCancelled
	third := ComputeAvailability(bookings, base, table, time.UTC)
	assert.True(t, third[0].IsAvailable)
}

func TestComputeAvailability_UsesProviderTimezoneForWeekday(t *testing.T) {
	table := NewDurationTable(60)

	// 2024-03-04 23:00 UTC - это уже вторник в Москве (UTC+3)
	moscow := time.FixedZone("MSK", 3*60*60)
	bookingDate := time.Date(2024, 3, 4, 23, 0, 0, 0, time.UTC)

	base := []TimeSlot{
		mondaySlot("09:00", "10:00", 60),
		{DayOfWeek: 2, StartTime: "09:00", EndTime: "10:00", ServiceType: "Oil Change", DurationMinutes: 60, IsAvailable: true},
	}
	bookings := []*Booking{{
		ServiceType: "Oil Change",
		BookingDate: bookingDate,
		StartTime:   "09:00",
		Status:      StatusPending,
	}}

	result := ComputeAvailability(bookings, base, table, moscow)

	assert.True(t, result[0].IsAvailable, "monday slot stays free")
	assert.False(t, result[1].IsAvailable, "tuesday slot is blocked in provider tz")
}

func TestGenerateWeeklySlots(t *testing.T) {
	slots, err := GenerateWeeklySlots(1, "09:00", "11:00", "Oil Change", 30)
	require.NoError(t, err)

	require.Len(t, slots, 4)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:30"), slots[0].EndTime)
	assert.Equal(t, types.TimeString("10:30"), slots[3].StartTime)
	assert.Equal(t, types.TimeString("11:00"), slots[3].EndTime)

	for _, slot := range slots {
		end, err := slot.StartTime.AddMinutes(slot.DurationMinutes)
		require.NoError(t, err)
		assert.Equal(t, slot.EndTime, end, "startTime+duration must equal endTime")
		assert.True(t, slot.IsAvailable)
	}
}

func TestGenerateWeeklySlots_DropsSlotCrossingCloseTime(t *testing.T) {
	// 09:00-10:00 при длительности 45: помещается только 09:00-09:45
	slots, err := GenerateWeeklySlots(2, "09:00", "10:00", "Wheel Alignment", 45)
	require.NoError(t, err)

	require.Len(t, slots, 1)
	assert.Equal(t, types.TimeString("09:45"), slots[0].EndTime)
}
