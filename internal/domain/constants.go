package domain

// Default configuration values
const (
	DefaultServiceDurationMinutes  = 60
	DefaultMaxBookingsPerDay       = 0  // 0 = unlimited
	DefaultAdvanceBookingDays      = 0  // 0 = unlimited
	DefaultMinBookingNoticeMinutes = 60 // 1 hour
)

// Business validation constants
const (
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 365 // 1 year
	MinBookingNoticeMinutes     = 0
	MaxBookingNoticeMinutes     = 10080 // 1 week
	MaxBookingsPerDayLimit      = 200
	MaxServiceTypeLength        = 120
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации в репозитории
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// BlockingStatuses статусы, при которых бронирование занимает слот в расписании
// Завершённые и отменённые бронирования слоты не блокируют
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
