package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// defaultLookaheadDays bounds the public availability window when the
// caller does not pass a date range.
const defaultLookaheadDays = 60

type AvailabilityHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewAvailabilityHandler(service usecase.AvailabilityService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "availability")),
	}
}

// ListOpenSlots handles GET /api/availability (public)
func (h *AvailabilityHandler) ListOpenSlots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceID := query.Get("service_id")
	if serviceID == "" {
		utils.ResponseBadRequest(w, "service_id is required", nil)
		return
	}

	today := time.Now().Truncate(24 * time.Hour)
	from := utils.ParseDate(query.Get("date_from"), today)
	to := utils.ParseDate(query.Get("date_to"), from.AddDate(0, 0, defaultLookaheadDays))

	slots, err := h.service.ListOpenSlots(r.Context(), serviceID, from, to)
	if err != nil {
		handleServiceError(w, h.log, err, "list availability")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// ==================== STAFF METHODS ====================

// ListSlots handles GET /api/admin/availability
func (h *AvailabilityHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceID := query.Get("service_id")
	if serviceID == "" {
		utils.ResponseBadRequest(w, "service_id is required", nil)
		return
	}

	today := time.Now().Truncate(24 * time.Hour)
	from := utils.ParseDate(query.Get("date_from"), today)
	to := utils.ParseDate(query.Get("date_to"), from.AddDate(0, 0, defaultLookaheadDays))

	slots, err := h.service.ListSlots(r.Context(), serviceID, from, to)
	if err != nil {
		handleServiceError(w, h.log, err, "list slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// CreateSlot handles POST /api/admin/availability
func (h *AvailabilityHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	slot, err := h.service.CreateSlot(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create slot")
		return
	}

	utils.ResponseCreated(w, "success", slot)
}

// GenerateSlots handles POST /api/admin/availability/generate
func (h *AvailabilityHandler) GenerateSlots(w http.ResponseWriter, r *http.Request) {
	var req request.GenerateSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	slots, err := h.service.GenerateSlots(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "generate slots")
		return
	}

	utils.ResponseCreated(w, "success", slots)
}

// BlockSlot handles PUT /api/admin/availability/{id}/block
func (h *AvailabilityHandler) BlockSlot(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, true, "block slot")
}

// UnblockSlot handles PUT /api/admin/availability/{id}/unblock
func (h *AvailabilityHandler) UnblockSlot(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, false, "unblock slot")
}

func (h *AvailabilityHandler) setBlocked(w http.ResponseWriter, r *http.Request, blocked bool, operation string) {
	slotID := chi.URLParam(r, "id")
	if slotID == "" {
		utils.ResponseBadRequest(w, "Slot ID is required", nil)
		return
	}

	slot, err := h.service.SetBlocked(r.Context(), slotID, blocked)
	if err != nil {
		handleServiceError(w, h.log, err, operation)
		return
	}

	utils.ResponseSuccess(w, "success", slot)
}

// DeleteSlot handles DELETE /api/admin/availability/{id}
func (h *AvailabilityHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "id")
	if slotID == "" {
		utils.ResponseBadRequest(w, "Slot ID is required", nil)
		return
	}

	if err := h.service.DeleteSlot(r.Context(), slotID); err != nil {
		handleServiceError(w, h.log, err, "delete slot")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
