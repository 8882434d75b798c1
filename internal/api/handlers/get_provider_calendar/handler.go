package get_provider_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	calendar "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_provider_calendar"
)

const (
	msgInvalidProviderID = "некорректный ID сервисного центра"
	msgInvalidView       = "некорректный режим отображения, ожидается day, week или month"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgProviderNotFound  = "сервисный центр не найден"
)

type Handler struct {
	useCase GetProviderCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetProviderCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/calendar?view=&date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/calendar - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /providers/{id}/calendar - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()

	// Режим отображения: по умолчанию week
	viewStr := query.Get("view")
	if viewStr == "" {
		viewStr = string(calendar.ViewWeek)
	}
	view, err := calendar.ParseViewMode(viewStr)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/calendar - Invalid view mode: %s", viewStr)
		handlers.RespondBadRequest(w, msgInvalidView)
		return
	}

	// Опорная дата: по умолчанию сегодня
	date := time.Now()
	if dateStr := query.Get("date"); dateStr != "" {
		date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /providers/{id}/calendar - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &calendar.Request{
		UserID:     userID,
		ProviderID: providerID,
		View:       view,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrProviderNotFound):
			h.logger.Warn("GET /providers/{id}/calendar - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, calendar.ErrAccessDenied):
			h.logger.Warn("GET /providers/{id}/calendar - Access denied: provider_id=%d, user_id=%d",
				providerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/calendar - Invalid input: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondBadRequest(w, msgInvalidView)

		default:
			h.logger.Error("GET /providers/{id}/calendar - Failed to build calendar: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/calendar - Calendar built: provider_id=%d, view=%s", providerID, view)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
