package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapBookingsToEvents_PreservesLengthAndFields(t *testing.T) {
	table := NewDurationTable(60)
	table.Register("Oil Change", 30)

	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	bookings := []*Booking{
		{ID: 1, ServiceType: "Oil Change", BookingDate: date, StartTime: "09:00", Status: StatusPending},
		{ID: 2, ServiceType: "Oil Change (Synthetic)", BookingDate: date, StartTime: "10:00", Status: StatusConfirmed},
		{ID: 3, ServiceType: "Unknown Work", BookingDate: date, StartTime: "11:00", Status: StatusCompleted},
	}

	events := MapBookingsToEvents(bookings, table)

	require.Len(t, events, len(bookings))
	for i, event := range events {
		assert.Equal(t, bookings[i].ID, event.ID)
		assert.Equal(t, bookings[i].BookingDate, event.Date)
		assert.Equal(t, bookings[i].StartTime, event.Time)
		assert.Equal(t, bookings[i].Status, event.Status)
		assert.Equal(t, bookings[i].ServiceType, event.Title)
		assert.Same(t, bookings[i], event.Booking)
	}
}

func TestMapBookingsToEvents_ResolvesDuration(t *testing.T) {
	table := NewDurationTable(60)
	table.Register("Oil Change", 30)

	bookings := []*Booking{
		// Без длительности - из таблицы
		{ID: 1, ServiceType: "Oil Change", StartTime: "09:00", Status: StatusPending},
		// С длительностью - стандартизируется
		{ID: 2, ServiceType: "Oil Change", StartTime: "10:00", Status: StatusPending, DurationMinutes: 50},
		// Незнакомый тип - дефолт таблицы
		{ID: 3, ServiceType: "Rustproofing", StartTime: "11:00", Status: StatusPending},
	}

	events := MapBookingsToEvents(bookings, table)

	assert.Equal(t, 30, events[0].DurationMinutes)
	assert.Equal(t, 45, events[1].DurationMinutes)
	assert.Equal(t, 60, events[2].DurationMinutes)
}

func TestMapBookingsToEvents_AssignsColors(t *testing.T) {
	table := NewDurationTable(60)

	bookings := []*Booking{
		{ID: 1, ServiceType: "Tire Rotation", StartTime: "09:00", Status: StatusPending},
		{ID: 2, ServiceType: "Tire Rotation (Winter)", StartTime: "10:00", Status: StatusPending},
		{ID: 3, ServiceType: "Rustproofing", StartTime: "11:00", Status: StatusPending},
	}

	events := MapBookingsToEvents(bookings, table)

	assert.Equal(t, EventColor("Tire Rotation"), events[0].Color)
	// Квалификатор в скобках не влияет на цвет
	assert.Equal(t, events[0].Color, events[1].Color)
	assert.Equal(t, DefaultEventColor, events[2].Color)
}

func TestMapBookingsToEvents_EmptyInput(t *testing.T) {
	events := MapBookingsToEvents(nil, NewDurationTable(60))
	assert.Empty(t, events)
	assert.NotNil(t, events)
}

func TestEventColor(t *testing.T) {
	assert.NotEqual(t, DefaultEventColor, EventColor("Oil Change"))
	assert.Equal(t, EventColor("Oil Change"), EventColor("Oil Change (Synthetic)"))
	assert.Equal(t, DefaultEventColor, EventColor("Something Else"))
}
