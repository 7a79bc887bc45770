package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID                string                `json:"id"`
	BookingID         string                `json:"booking_id"`
	Status            entity.PaymentStatus  `json:"status"`
	Channel           entity.PaymentChannel `json:"channel"`
	Amount            float64               `json:"amount"`
	TransactionID     *string               `json:"transaction_id,omitempty"`
	ExchangeReference *string               `json:"exchange_reference,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
}

// InitiatePaymentResponse carries the checkout URL the customer is
// redirected to.
type InitiatePaymentResponse struct {
	PaymentID   string `json:"payment_id"`
	CheckoutURL string `json:"checkout_url"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                payment.ID.String(),
		BookingID:         payment.BookingID.String(),
		Status:            payment.Status,
		Channel:           payment.Channel,
		Amount:            payment.Amount,
		TransactionID:     payment.TransactionID,
		ExchangeReference: payment.ExchangeReference,
		CreatedAt:         payment.CreatedAt,
	}
}
