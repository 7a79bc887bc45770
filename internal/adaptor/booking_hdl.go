package adaptor

import (
	"context"
	"encoding/json"
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (public)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetBookingByReference handles GET /api/bookings/{reference} (public)
func (h *BookingHandler) GetBookingByReference(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")
	if reference == "" {
		utils.ResponseBadRequest(w, "Booking reference is required", nil)
		return
	}

	booking, err := h.service.GetBookingByReference(r.Context(), reference)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ==================== STAFF METHODS ====================

// ListBookings handles GET /api/admin/bookings
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	businessID, ok := utils.GetBusinessIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.ListBookingsRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 20),
		},
		Status:   query.Get("status"),
		DateFrom: query.Get("date_from"),
		DateTo:   query.Get("date_to"),
	}

	bookings, err := h.service.ListBookings(r.Context(), businessID.String(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/admin/bookings/{id}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ConfirmBooking handles PUT /api/admin/bookings/{id}/confirm
func (h *BookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "confirm booking", h.service.ConfirmBooking)
}

// CompleteBooking handles PUT /api/admin/bookings/{id}/complete
func (h *BookingHandler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "complete booking", h.service.CompleteBooking)
}

// MarkNoShow handles PUT /api/admin/bookings/{id}/no-show
func (h *BookingHandler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "mark no-show", h.service.MarkNoShow)
}

// CancelBooking handles PUT /api/admin/bookings/{id}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.CancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.CancelBooking(r.Context(), bookingID, req.Reason); err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *BookingHandler) transition(w http.ResponseWriter, r *http.Request, operation string, fn func(ctx context.Context, bookingID string) error) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := fn(r.Context(), bookingID); err != nil {
		handleServiceError(w, h.log, err, operation)
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
