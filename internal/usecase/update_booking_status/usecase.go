package update_booking_status

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	providerClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/providerservice"
)

// UseCase use case для смены статуса бронирования менеджером
//
// Переходы проверяются на сервере по графу статусов:
//
//	pending   -> confirmed (accept)
//	pending   -> cancelled (decline)
//	confirmed -> completed (complete)
//
// Любой другой переход отклоняется, завершённые и отменённые
// бронирования менять нельзя
type UseCase struct {
	bookingRepo    BookingRepository
	providerClient ProviderServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	providerClient ProviderServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		providerClient: providerClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет смену статуса бронирования
// Чтение и запись выполняются в одной транзакции с блокировкой строки,
// чтобы конкурирующие действия менеджеров не затирали друг друга
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: booking=%d, action=%s, user=%d",
		req.BookingID, req.Action, req.UserID)

	// 1. Валидация входных данных
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	targetStatus, ok := req.Action.TargetStatus()
	if !ok {
		uc.logger.Warn("UpdateBookingStatus: unknown action=%s", req.Action)
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	// 2. Смена статуса в транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBookingStatus: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBookingStatus: repository error for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		// 2.2. Проверяем права доступа (только менеджер центра)
		if err := uc.checkManagerAccess(txCtx, booking.ProviderID, req.UserID); err != nil {
			return err
		}

		// 2.3. Проверяем допустимость перехода
		if !booking.Status.CanTransitionTo(targetStatus) {
			uc.logger.Warn("UpdateBookingStatus: transition %s -> %s rejected for booking id=%d",
				booking.Status, targetStatus, req.BookingID)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, targetStatus)
		}

		// 2.4. Применяем переход
		// Отклонение фиксирует причину и время отмены
		if req.Action == ActionDecline {
			reason := "declined by provider"
			if req.Reason != nil && *req.Reason != "" {
				reason = *req.Reason
			}
			if err := uc.bookingRepo.Cancel(txCtx, req.BookingID, reason); err != nil {
				uc.logger.Error("UpdateBookingStatus: failed to decline booking id=%d: %v", req.BookingID, err)
				return fmt.Errorf("%w: failed to decline booking: %v", ErrInternal, err)
			}
			return nil
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, req.BookingID, targetStatus); err != nil {
			uc.logger.Error("UpdateBookingStatus: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBookingStatus: booking id=%d is now %s", req.BookingID, targetStatus)
	return &Response{
		BookingID: req.BookingID,
		Status:    string(targetStatus),
	}, nil
}

// checkManagerAccess проверяет, что пользователь является менеджером сервисного центра
func (uc *UseCase) checkManagerAccess(ctx context.Context, providerID int64, userID int64) error {
	provider, err := uc.providerClient.GetProvider(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			uc.logger.Warn("UpdateBookingStatus: provider id=%d not found", providerID)
			return ErrProviderNotFound
		}
		uc.logger.Error("UpdateBookingStatus: failed to get provider id=%d: %v", providerID, err)
		return fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	if !provider.IsManager(userID) {
		uc.logger.Warn("UpdateBookingStatus: user=%d is not a manager of provider=%d", userID, providerID)
		return ErrAccessDenied
	}

	return nil
}
