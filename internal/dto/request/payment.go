package request

type InitiatePaymentRequest struct {
	BookingReference string `json:"booking_reference" validate:"required"`
	Channel          string `json:"channel" validate:"required,oneof=FPX FPX_LINE_OF_CREDIT DUITNOW_DOBW DUITNOW_QR"`
}

// PaymentReturnEvent carries the fields the gateway sends on the browser
// return redirect. Either StatusID or Status may be present; both may be
// empty, in which case reconciliation queries the gateway directly.
type PaymentReturnEvent struct {
	PaymentID         string `json:"payment_id"`
	StatusID          string `json:"status_id"`
	Status            string `json:"status"`
	TransactionID     string `json:"transaction_id"`
	ExchangeReference string `json:"exchange_reference_number"`
}
