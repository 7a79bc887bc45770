package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSucceeded  PaymentStatus = "succeeded"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// IsTerminal returns true once the payment outcome is settled. Terminal
// payments are never mutated again; replayed gateway events become no-ops.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusSucceeded || s == PaymentStatusFailed || s == PaymentStatusRefunded
}

type PaymentChannel string

const (
	ChannelFPX             PaymentChannel = "FPX"
	ChannelFPXLineOfCredit PaymentChannel = "FPX_LINE_OF_CREDIT"
	ChannelDuitNowDOBW     PaymentChannel = "DUITNOW_DOBW"
	ChannelDuitNowQR       PaymentChannel = "DUITNOW_QR"
)

type Payment struct {
	Base
	BookingID         uuid.UUID      `db:"booking_id"`
	Status            PaymentStatus  `db:"status"`
	Channel           PaymentChannel `db:"channel"`
	Amount            float64        `db:"amount"`
	GatewayPaymentID  string         `db:"gateway_payment_id"`
	TransactionID     *string        `db:"transaction_id"`
	ExchangeReference *string        `db:"exchange_reference"`
}
