package get_provider_schedule

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
)

const (
	msgInvalidProviderID = "некорректный ID сервисного центра"
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

// Handle GET /api/v1/providers/{providerId}/schedule
// Публичный endpoint - возвращает конфигурации расписания сервисного центра
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/schedule - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	result, err := h.service.GetAllByProvider(r.Context(), providerID)
	if err != nil {
		h.logger.Error("GET /providers/{id}/schedule - Failed to get configs: provider_id=%d, error=%v",
			providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /providers/{id}/schedule - Retrieved %d configs for provider_id=%d",
		len(result.Configs), providerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
