package update_booking_status

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// Action действие менеджера над бронированием
type Action string

const (
	// ActionAccept подтверждает ожидающее бронирование
	ActionAccept Action = "accept"
	// ActionDecline отклоняет ожидающее бронирование
	ActionDecline Action = "decline"
	// ActionComplete отмечает подтверждённое бронирование выполненным
	ActionComplete Action = "complete"
)

// TargetStatus возвращает статус, в который переводит действие
func (a Action) TargetStatus() (domain.BookingStatus, bool) {
	switch a {
	case ActionAccept:
		return domain.StatusConfirmed, true
	case ActionDecline:
		return domain.StatusCancelled, true
	case ActionComplete:
		return domain.StatusCompleted, true
	default:
		return "", false
	}
}

// Request модель запроса на смену статуса бронирования
type Request struct {
	UserID    int64   // ID менеджера
	BookingID int64   // ID бронирования
	Action    Action  // Действие: accept, decline, complete
	Reason    *string // Причина отклонения (только для decline)
}

// Response модель ответа со сменённым статусом
type Response struct {
	BookingID int64  // ID бронирования
	Status    string // Новый статус
}
