package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidProviderID  = "некорректный ID сервисного центра"
	msgMissingServiceType = "не указана услуга"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgProviderNotFound   = "сервисный центр не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidBookingDate = "некорректная дата"
	msgDateTooFar         = "дата слишком далеко в будущем"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/available-slots?serviceType=&date=
// Публичный endpoint - аутентификация не требуется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/available-slots - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	query := r.URL.Query()

	serviceType := query.Get("serviceType")
	if serviceType == "" {
		h.logger.Warn("GET /providers/{id}/available-slots - Missing serviceType: provider_id=%d", providerID)
		handlers.RespondBadRequest(w, msgMissingServiceType)
		return
	}

	// Дата опциональна - по умолчанию сегодня
	date := time.Now()
	if dateStr := query.Get("date"); dateStr != "" {
		date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /providers/{id}/available-slots - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	// userID опционален - endpoint публичный, но если пользователь
	// аутентифицирован, используем его ID для логирования
	userID, _ := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &availableSlots.Request{
		UserID:      userID,
		ProviderID:  providerID,
		ServiceType: serviceType,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, availableSlots.ErrProviderNotFound):
			h.logger.Warn("GET /providers/{id}/available-slots - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, availableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /providers/{id}/available-slots - Service not found: provider_id=%d, service=%s",
				providerID, serviceType)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, availableSlots.ErrInvalidDate):
			h.logger.Warn("GET /providers/{id}/available-slots - Invalid date: provider_id=%d", providerID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, availableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /providers/{id}/available-slots - Date too far in future: provider_id=%d", providerID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, availableSlots.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/available-slots - Invalid input: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		default:
			h.logger.Error("GET /providers/{id}/available-slots - Failed to get slots: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/available-slots - Retrieved %d slots: provider_id=%d, service=%s",
		len(result.Slots), providerID, serviceType)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
