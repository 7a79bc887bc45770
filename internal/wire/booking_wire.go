package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings - Customer booking creation
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// GET /api/bookings/{reference} - Booking status lookup
	r.Get("/api/bookings/{reference}", bookingHandler.GetBookingByReference)

	// ==================== STAFF ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Profile, log))

		r.Get("/", bookingHandler.ListBookings)
		r.Get("/{id}", bookingHandler.GetBookingByID)
		r.Put("/{id}/confirm", bookingHandler.ConfirmBooking)
		r.Put("/{id}/cancel", bookingHandler.CancelBooking)
		r.Put("/{id}/complete", bookingHandler.CompleteBooking)
		r.Put("/{id}/no-show", bookingHandler.MarkNoShow)
	})
}
