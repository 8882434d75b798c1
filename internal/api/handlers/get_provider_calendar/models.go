package get_provider_calendar

import (
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	calendar "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_provider_calendar"
)

// EventResponse HTTP модель события календаря
type EventResponse struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	Color           string `json:"color"`
}

// DayCellResponse ячейка дневной сетки
type DayCellResponse struct {
	Label   string          `json:"label"`
	Events  []EventResponse `json:"events"`
	HasFree bool            `json:"hasFree"`
}

// DayGridResponse дневная сетка календаря
type DayGridResponse struct {
	Date  string            `json:"date"`
	Cells []DayCellResponse `json:"cells"`
}

// WeekCellResponse ячейка недельной сетки
type WeekCellResponse struct {
	Date    string          `json:"date"`
	Events  []EventResponse `json:"events"`
	HasFree bool            `json:"hasFree"`
}

// WeekRowResponse строка недельной сетки (один час)
type WeekRowResponse struct {
	Label string             `json:"label"`
	Cells []WeekCellResponse `json:"cells"`
}

// WeekGridResponse недельная сетка календаря
type WeekGridResponse struct {
	WeekStart string            `json:"weekStart"`
	Days      []string          `json:"days"`
	Rows      []WeekRowResponse `json:"rows"`
}

// MonthCellResponse ячейка месячной сетки, day == 0 для пустых ячеек выравнивания
type MonthCellResponse struct {
	Day           int             `json:"day"`
	Events        []EventResponse `json:"events"`
	OverflowCount int             `json:"overflowCount"`
}

// MonthGridResponse месячная сетка календаря
type MonthGridResponse struct {
	Year          int                 `json:"year"`
	Month         int                 `json:"month"`
	LeadingBlanks int                 `json:"leadingBlanks"`
	Weeks         int                 `json:"weeks"`
	Cells         []MonthCellResponse `json:"cells"`
}

// CalendarResponse HTTP ответ календаря: заполнено ровно одно поле сетки
type CalendarResponse struct {
	ProviderID int64              `json:"providerId"`
	View       string             `json:"view"`
	Day        *DayGridResponse   `json:"day,omitempty"`
	Week       *WeekGridResponse  `json:"week,omitempty"`
	Month      *MonthGridResponse `json:"month,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *calendar.Response) *CalendarResponse {
	out := &CalendarResponse{
		ProviderID: resp.ProviderID,
		View:       string(resp.View),
	}

	if resp.Day != nil {
		out.Day = fromDayGrid(resp.Day)
	}
	if resp.Week != nil {
		out.Week = fromWeekGrid(resp.Week)
	}
	if resp.Month != nil {
		out.Month = fromMonthGrid(resp.Month)
	}

	return out
}

func fromEvents(events []calendar.Event) []EventResponse {
	out := make([]EventResponse, len(events))
	for i, e := range events {
		out[i] = EventResponse{
			ID:              e.ID,
			Title:           e.Title,
			Date:            e.Date.Format(domain.DateFormat),
			StartTime:       e.StartTime.String(),
			DurationMinutes: e.DurationMinutes,
			Status:          e.Status,
			Color:           e.Color,
		}
	}
	return out
}

func fromDayGrid(grid *calendar.DayGrid) *DayGridResponse {
	out := &DayGridResponse{
		Date:  grid.Date.Format(domain.DateFormat),
		Cells: make([]DayCellResponse, len(grid.Cells)),
	}
	for i, cell := range grid.Cells {
		out.Cells[i] = DayCellResponse{
			Label:   cell.Label.String(),
			Events:  fromEvents(cell.Events),
			HasFree: cell.HasFree,
		}
	}
	return out
}

func fromWeekGrid(grid *calendar.WeekGrid) *WeekGridResponse {
	out := &WeekGridResponse{
		WeekStart: grid.WeekStart.Format(domain.DateFormat),
		Days:      make([]string, len(grid.Days)),
		Rows:      make([]WeekRowResponse, len(grid.Rows)),
	}
	for i, day := range grid.Days {
		out.Days[i] = day.Format(domain.DateFormat)
	}
	for i, row := range grid.Rows {
		cells := make([]WeekCellResponse, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = WeekCellResponse{
				Date:    cell.Date.Format(domain.DateFormat),
				Events:  fromEvents(cell.Events),
				HasFree: cell.HasFree,
			}
		}
		out.Rows[i] = WeekRowResponse{
			Label: row.Label.String(),
			Cells: cells,
		}
	}
	return out
}

func fromMonthGrid(grid *calendar.MonthGrid) *MonthGridResponse {
	out := &MonthGridResponse{
		Year:          grid.Year,
		Month:         int(grid.Month),
		LeadingBlanks: grid.LeadingBlanks,
		Weeks:         grid.Weeks,
		Cells:         make([]MonthCellResponse, len(grid.Cells)),
	}
	for i, cell := range grid.Cells {
		out.Cells[i] = MonthCellResponse{
			Day:           cell.Day,
			Events:        fromEvents(cell.Events),
			OverflowCount: cell.OverflowCount,
		}
	}
	return out
}
