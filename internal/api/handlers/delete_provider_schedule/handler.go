package delete_provider_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

const (
	msgInvalidProviderID = "некорректный ID сервисного центра"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgProviderNotFound  = "сервисный центр не найден"
	msgConfigNotFound    = "конфигурация расписания не найдена"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/providers/{providerId}/schedule?serviceType=
// Без параметра serviceType удаляет конфигурацию по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /providers/{id}/schedule - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /providers/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.DeleteConfigRequest{
		UserID:     userID,
		ProviderID: providerID,
	}

	if serviceType := r.URL.Query().Get("serviceType"); serviceType != "" {
		req.ServiceType = &serviceType
	}

	if err := h.service.Delete(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, schedule.ErrConfigNotFound):
			h.logger.Warn("DELETE /providers/{id}/schedule - Config not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, schedule.ErrProviderNotFound):
			h.logger.Warn("DELETE /providers/{id}/schedule - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /providers/{id}/schedule - Access denied: provider_id=%d, user_id=%d",
				providerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /providers/{id}/schedule - Failed to delete config: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /providers/{id}/schedule - Config deleted: provider_id=%d, user_id=%d",
		providerID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
