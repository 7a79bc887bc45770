package gateway

import "errors"

var (
	// ErrGatewayUnavailable is returned when the payment portal cannot be
	// reached or times out. Reconciliation leaves state unchanged and
	// reports the payment as pending.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrInvalidResponse is returned when the portal answers with a body
	// or status code the client does not understand.
	ErrInvalidResponse = errors.New("payment gateway: invalid response")

	// ErrBillNotFound is returned when the portal does not know the
	// requested payment identifier.
	ErrBillNotFound = errors.New("payment gateway: bill not found")
)
