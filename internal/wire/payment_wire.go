package wire

import (
	"tour-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
) {
	// POST /api/payments - Initiate payment, returns checkout URL
	r.Post("/api/payments", paymentHandler.InitiatePayment)

	// GET|POST /api/payments/return - Gateway sends the customer back
	// here; reconcile and redirect to the confirmation page.
	r.Get("/api/payments/return", paymentHandler.HandleReturn)
	r.Post("/api/payments/return", paymentHandler.HandleReturn)
}
