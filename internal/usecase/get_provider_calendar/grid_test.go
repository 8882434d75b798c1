package get_provider_calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// 2024-03-04 - понедельник
var monday = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

func pendingEvent(id int64, service string, date time.Time, start types.TimeString, duration int) domain.CalendarEvent {
	return domain.CalendarEvent{
		ID:              id,
		Title:           service,
		Date:            date,
		Time:            start,
		Status:          domain.StatusPending,
		Color:           domain.EventColor(service),
		DurationMinutes: duration,
	}
}

func TestTimeLabels_DayGrid(t *testing.T) {
	labels, err := timeLabels(dayGridStart, dayGridEnd, dayGridStep)

	require.NoError(t, err)
	require.Len(t, labels, 20)
	assert.Equal(t, types.TimeString("08:00"), labels[0])
	assert.Equal(t, types.TimeString("17:30"), labels[len(labels)-1])
}

func TestTimeLabels_WeekGrid(t *testing.T) {
	labels, err := timeLabels(weekGridStart, weekGridEnd, weekGridStep)

	require.NoError(t, err)
	require.Len(t, labels, 9)
	assert.Equal(t, types.TimeString("09:00"), labels[0])
	assert.Equal(t, types.TimeString("17:00"), labels[len(labels)-1])
}

func TestWeekStartFor_AlwaysMonday(t *testing.T) {
	for offset := 0; offset < 7; offset++ {
		date := monday.AddDate(0, 0, offset)
		start := weekStartFor(date, time.UTC)

		assert.Equal(t, time.Monday, start.Weekday(), "date=%s", date.Format(domain.DateFormat))
		assert.Equal(t, monday.Format(domain.DateFormat), start.Format(domain.DateFormat))
	}
}

func TestBuildDayGrid_EventMatchedByExactStartTime(t *testing.T) {
	events := []domain.CalendarEvent{
		pendingEvent(1, "Tire Rotation", monday, "09:30", 30),
	}

	grid, err := buildDayGrid(monday, events, nil, time.UTC)
	require.NoError(t, err)

	var cell *DayCell
	for i := range grid.Cells {
		if grid.Cells[i].Label == "09:30" {
			cell = &grid.Cells[i]
			break
		}
	}

	require.NotNil(t, cell)
	require.Len(t, cell.Events, 1)
	assert.Equal(t, int64(1), cell.Events[0].ID)
	assert.Equal(t, "#A8DADC", cell.Events[0].Color)
	assert.False(t, cell.HasFree)

	// Соседняя ячейка остаётся пустой
	for _, c := range grid.Cells {
		if c.Label == "10:00" {
			assert.Empty(t, c.Events)
		}
	}
}

func TestBuildDayGrid_FreeSlotIndicator(t *testing.T) {
	slots := []domain.TimeSlot{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:30", DurationMinutes: 30, IsAvailable: true},
		{DayOfWeek: 1, StartTime: "09:30", EndTime: "10:00", DurationMinutes: 30, IsAvailable: false},
	}

	grid, err := buildDayGrid(monday, nil, slots, time.UTC)
	require.NoError(t, err)

	for _, cell := range grid.Cells {
		switch cell.Label {
		case "09:00":
			assert.True(t, cell.HasFree)
		case "09:30":
			assert.False(t, cell.HasFree)
		}
	}
}

func TestBuildWeekGrid_EventMatchedByHourPrefix(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	events := []domain.CalendarEvent{
		pendingEvent(7, "Brake Service", tuesday, "14:15", 90),
	}

	grid, err := buildWeekGrid(monday, events, nil, time.UTC)
	require.NoError(t, err)
	require.Len(t, grid.Days, 7)
	assert.Equal(t, time.Monday, grid.WeekStart.Weekday())

	var row *WeekRow
	for i := range grid.Rows {
		if grid.Rows[i].Label == "14:00" {
			row = &grid.Rows[i]
			break
		}
	}

	require.NotNil(t, row)
	// Вторник - вторая колонка
	require.Len(t, row.Cells[1].Events, 1)
	assert.Equal(t, int64(7), row.Cells[1].Events[0].ID)
	assert.Empty(t, row.Cells[0].Events)
}

func TestBuildMonthGrid_ThirtyDayMonthStartingWednesday(t *testing.T) {
	// Апрель 2026: 30 дней, 1 апреля - среда
	date := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	grid := buildMonthGrid(date, nil, time.UTC)

	assert.Equal(t, 3, grid.LeadingBlanks)
	assert.Equal(t, 5, grid.Weeks)
	require.Len(t, grid.Cells, 35)

	// Пустые ячейки выравнивания до первого числа
	for i := 0; i < grid.LeadingBlanks; i++ {
		assert.Equal(t, 0, grid.Cells[i].Day)
	}
	assert.Equal(t, 1, grid.Cells[3].Day)
	assert.Equal(t, 30, grid.Cells[32].Day)

	// Хвостовые пустые ячейки после последнего числа
	assert.Equal(t, 0, grid.Cells[33].Day)
	assert.Equal(t, 0, grid.Cells[34].Day)
}

func TestBuildMonthGrid_TruncatesToFourEventsWithOverflow(t *testing.T) {
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	events := make([]domain.CalendarEvent, 6)
	for i := range events {
		events[i] = pendingEvent(int64(i+1), "Oil Change", date, "09:00", 30)
	}

	grid := buildMonthGrid(date, events, time.UTC)

	cell := grid.Cells[grid.LeadingBlanks]
	require.Equal(t, 1, cell.Day)
	assert.Len(t, cell.Events, 4)
	assert.Equal(t, 2, cell.OverflowCount)
}

func TestBuildDayGrid_PendingBookingOccupiesSlotEndToEnd(t *testing.T) {
	table := domain.NewDurationTable(60)
	table.Register("Tire Rotation", 30)

	bookings := []*domain.Booking{{
		ID:          42,
		ServiceType: "Tire Rotation",
		BookingDate: monday,
		StartTime:   "09:30",
		Status:      domain.StatusPending,
	}}

	base := []domain.TimeSlot{
		{DayOfWeek: 1, StartTime: "09:30", EndTime: "10:00", DurationMinutes: 30, IsAvailable: true},
	}

	events := domain.MapBookingsToEvents(bookings, table)
	slots := domain.ComputeAvailability(bookings, base, table, time.UTC)

	grid, err := buildDayGrid(monday, events, slots, time.UTC)
	require.NoError(t, err)

	for _, cell := range grid.Cells {
		if cell.Label == "09:30" {
			require.Len(t, cell.Events, 1)
			assert.Equal(t, int64(42), cell.Events[0].ID)
			assert.Equal(t, 30, cell.Events[0].DurationMinutes)
			assert.Equal(t, "#A8DADC", cell.Events[0].Color)
			assert.False(t, cell.HasFree)
		}
	}
}
