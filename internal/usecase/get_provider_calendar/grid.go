package get_provider_calendar

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Параметры сеток
// Дневная сетка: метки каждые 30 минут с 08:00 до 18:00
// Недельная сетка: метки каждый час с 09:00 до 18:00
const (
	dayGridStart = "08:00"
	dayGridEnd   = "18:00"
	dayGridStep  = 30

	weekGridStart = "09:00"
	weekGridEnd   = "18:00"
	weekGridStep  = 60

	// Максимум видимых событий в ячейке месяца, остальное уходит в счётчик
	maxVisibleMonthEvents = 4

	daysPerWeek = 7
)

// timeLabels генерирует метки времени [start, end) с фиксированным шагом
func timeLabels(start, end string, stepMinutes int) ([]types.TimeString, error) {
	startTime, err := types.NewTimeStringFromString(start)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(end)
	if err != nil {
		return nil, err
	}

	labels := make([]types.TimeString, 0)
	current := startTime

	for current.IsBefore(endTime) {
		labels = append(labels, current)
		next, err := current.AddMinutes(stepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return labels, nil
}

// toEvent конвертирует domain событие в DTO
func toEvent(e domain.CalendarEvent) Event {
	return Event{
		ID:              e.ID,
		Title:           e.Title,
		Date:            e.Date,
		StartTime:       e.Time,
		DurationMinutes: e.DurationMinutes,
		Status:          string(e.Status),
		Color:           e.Color,
	}
}

// sameDate проверяет совпадение календарных дат в указанном часовом поясе
func sameDate(a, b time.Time, loc *time.Location) bool {
	y1, m1, d1 := a.In(loc).Date()
	y2, m2, d2 := b.In(loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// weekStartFor возвращает понедельник недели, содержащей date
func weekStartFor(date time.Time, loc *time.Location) time.Time {
	d := date.In(loc)
	// Monday = 0 ... Sunday = 6
	offset := (int(d.Weekday()) + 6) % daysPerWeek
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, -offset)
}

// buildDayGrid строит дневную сетку: события сопоставляются по точному
// совпадению времени начала с меткой, признак свободного слота - по
// совпадению пары (день недели, время начала)
func buildDayGrid(
	date time.Time,
	events []domain.CalendarEvent,
	slots []domain.TimeSlot,
	loc *time.Location,
) (*DayGrid, error) {
	labels, err := timeLabels(dayGridStart, dayGridEnd, dayGridStep)
	if err != nil {
		return nil, err
	}

	dayOfWeek := int(date.In(loc).Weekday())

	cells := make([]DayCell, len(labels))
	for i, label := range labels {
		cell := DayCell{
			Label:  label,
			Events: []Event{},
		}

		for _, event := range events {
			if sameDate(event.Date, date, loc) && event.Time == label {
				cell.Events = append(cell.Events, toEvent(event))
			}
		}

		// Индикатор свободного слота показываем только в пустых ячейках
		if len(cell.Events) == 0 {
			for i := range slots {
				if slots[i].IsAvailable && slots[i].Matches(dayOfWeek, label) {
					cell.HasFree = true
					break
				}
			}
		}

		cells[i] = cell
	}

	return &DayGrid{
		Date:  date,
		Cells: cells,
	}, nil
}

// buildWeekGrid строит недельную сетку: строки - часы, колонки - дни недели
// с понедельника; события сопоставляются по дате и часу начала
func buildWeekGrid(
	weekStart time.Time,
	events []domain.CalendarEvent,
	slots []domain.TimeSlot,
	loc *time.Location,
) (*WeekGrid, error) {
	labels, err := timeLabels(weekGridStart, weekGridEnd, weekGridStep)
	if err != nil {
		return nil, err
	}

	days := make([]time.Time, daysPerWeek)
	for i := range days {
		days[i] = weekStart.AddDate(0, 0, i)
	}

	rows := make([]WeekRow, len(labels))
	for r, label := range labels {
		hour := label.Hour()

		row := WeekRow{
			Label: label,
			Cells: make([]WeekCell, daysPerWeek),
		}

		for d, day := range days {
			cell := WeekCell{
				Date:   day,
				Events: []Event{},
			}

			for _, event := range events {
				if sameDate(event.Date, day, loc) && event.Time.Hour() == hour {
					cell.Events = append(cell.Events, toEvent(event))
				}
			}

			if len(cell.Events) == 0 {
				dayOfWeek := int(day.In(loc).Weekday())
				for i := range slots {
					if slots[i].IsAvailable && slots[i].DayOfWeek == dayOfWeek && slots[i].StartTime.Hour() == hour {
						cell.HasFree = true
						break
					}
				}
			}

			row.Cells[d] = cell
		}

		rows[r] = row
	}

	return &WeekGrid{
		WeekStart: weekStart,
		Days:      days,
		Rows:      rows,
	}, nil
}

// buildMonthGrid строит месячную сетку
//
// Первая колонка - воскресенье: количество пустых ячеек в начале равно
// дню недели первого числа. Количество строк зависит от месяца:
// weeks = ceil((leadingBlanks + daysInMonth) / 7)
func buildMonthGrid(
	date time.Time,
	events []domain.CalendarEvent,
	loc *time.Location,
) *MonthGrid {
	d := date.In(loc)
	firstOfMonth := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, loc)
	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()

	leadingBlanks := int(firstOfMonth.Weekday()) // Sunday = 0
	weeks := (leadingBlanks + daysInMonth + daysPerWeek - 1) / daysPerWeek

	cells := make([]MonthCell, weeks*daysPerWeek)

	for day := 1; day <= daysInMonth; day++ {
		dayEvents := make([]Event, 0)
		overflow := 0

		dayDate := time.Date(d.Year(), d.Month(), day, 0, 0, 0, 0, loc)
		for _, event := range events {
			if !sameDate(event.Date, dayDate, loc) {
				continue
			}
			if len(dayEvents) < maxVisibleMonthEvents {
				dayEvents = append(dayEvents, toEvent(event))
			} else {
				overflow++
			}
		}

		cells[leadingBlanks+day-1] = MonthCell{
			Day:           day,
			Events:        dayEvents,
			OverflowCount: overflow,
		}
	}

	return &MonthGrid{
		Year:          d.Year(),
		Month:         d.Month(),
		LeadingBlanks: leadingBlanks,
		Weeks:         weeks,
		Cells:         cells,
	}
}
