package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service      usecase.CatalogService
	businessSlug string
	log          *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, config *utils.Config, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:      service,
		businessSlug: config.App.BusinessSlug,
		log:          log.With(zap.String("handler", "catalog")),
	}
}

// ListPublicServices handles GET /api/services (public, active only)
func (h *CatalogHandler) ListPublicServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.ListServicesBySlug(r.Context(), h.businessSlug, true)
	if err != nil {
		handleServiceError(w, h.log, err, "list services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// GetService handles GET /api/services/{id} (public)
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		utils.ResponseBadRequest(w, "Service ID is required", nil)
		return
	}

	service, err := h.service.GetService(r.Context(), serviceID)
	if err != nil {
		handleServiceError(w, h.log, err, "get service")
		return
	}

	utils.ResponseSuccess(w, "success", service)
}

// ==================== STAFF METHODS ====================

// ListServices handles GET /api/admin/services
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	businessID, ok := utils.GetBusinessIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	services, err := h.service.ListServices(r.Context(), businessID.String(), false)
	if err != nil {
		handleServiceError(w, h.log, err, "list services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// CreateService handles POST /api/admin/services
func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	businessID, ok := utils.GetBusinessIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	service, err := h.service.CreateService(r.Context(), businessID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create service")
		return
	}

	utils.ResponseCreated(w, "success", service)
}

// UpdateService handles PUT /api/admin/services/{id}
func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		utils.ResponseBadRequest(w, "Service ID is required", nil)
		return
	}

	var req request.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	service, err := h.service.UpdateService(r.Context(), serviceID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update service")
		return
	}

	utils.ResponseSuccess(w, "success", service)
}

// DeleteService handles DELETE /api/admin/services/{id}
func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		utils.ResponseBadRequest(w, "Service ID is required", nil)
		return
	}

	if err := h.service.DeleteService(r.Context(), serviceID); err != nil {
		handleServiceError(w, h.log, err, "delete service")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateAddon handles POST /api/admin/services/{id}/addons
func (h *CatalogHandler) CreateAddon(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		utils.ResponseBadRequest(w, "Service ID is required", nil)
		return
	}

	var req request.CreateAddonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	addon, err := h.service.CreateAddon(r.Context(), serviceID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create addon")
		return
	}

	utils.ResponseCreated(w, "success", addon)
}

// UpdateAddon handles PUT /api/admin/addons/{id}
func (h *CatalogHandler) UpdateAddon(w http.ResponseWriter, r *http.Request) {
	addonID := chi.URLParam(r, "id")
	if addonID == "" {
		utils.ResponseBadRequest(w, "Addon ID is required", nil)
		return
	}

	var req request.UpdateAddonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	addon, err := h.service.UpdateAddon(r.Context(), addonID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update addon")
		return
	}

	utils.ResponseSuccess(w, "success", addon)
}

// DeleteAddon handles DELETE /api/admin/addons/{id}
func (h *CatalogHandler) DeleteAddon(w http.ResponseWriter, r *http.Request) {
	addonID := chi.URLParam(r, "id")
	if addonID == "" {
		utils.ResponseBadRequest(w, "Addon ID is required", nil)
		return
	}

	if err := h.service.DeleteAddon(r.Context(), addonID); err != nil {
		handleServiceError(w, h.log, err, "delete addon")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
