package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type SettingsHandler struct {
	service usecase.SettingsService
	log     *zap.Logger
}

func NewSettingsHandler(service usecase.SettingsService, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		log:     log.With(zap.String("handler", "settings")),
	}
}

// GetSettings handles GET /api/admin/settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	businessID, ok := utils.GetBusinessIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	settings, err := h.service.GetSettings(r.Context(), businessID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get settings")
		return
	}

	utils.ResponseSuccess(w, "success", settings)
}

// UpdateSettings handles PUT /api/admin/settings
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	businessID, ok := utils.GetBusinessIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), businessID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update settings")
		return
	}

	utils.ResponseSuccess(w, "success", settings)
}
