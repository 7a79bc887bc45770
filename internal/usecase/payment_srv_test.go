package usecase

import (
	"context"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/gateway"
	"tour-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGateway struct {
	bills    []gateway.CreateBillRequest
	billResp *gateway.CreateBillResponse
	billErr  error

	status      *gateway.StatusResult
	statusErr   error
	statusCalls int
}

func (f *fakeGateway) CreateBill(_ context.Context, req gateway.CreateBillRequest) (*gateway.CreateBillResponse, error) {
	f.bills = append(f.bills, req)
	if f.billErr != nil {
		return nil, f.billErr
	}
	return f.billResp, nil
}

func (f *fakeGateway) GetStatus(_ context.Context, _ string) (*gateway.StatusResult, error) {
	f.statusCalls++
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return f.status, nil
}

type paymentFixture struct {
	*bookingFixture
	gateway  *fakeGateway
	payments PaymentService
	booking  string // reference of a pending booking
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	bf := newBookingFixture(t)
	booking, err := bf.service.CreateBooking(context.Background(), bf.createRequest(2))
	require.NoError(t, err)

	gw := &fakeGateway{
		billResp: &gateway.CreateBillResponse{
			PaymentID:   "bill_123",
			CheckoutURL: "https://portal.example.com/checkout/bill_123",
		},
	}

	config := &utils.Config{
		App: utils.AppConfig{PublicURL: "https://tours.example.com"},
	}

	return &paymentFixture{
		bookingFixture: bf,
		gateway:        gw,
		payments:       NewPaymentService(bf.repo, gw, config, zap.NewNop()),
		booking:        booking.Reference,
	}
}

func (f *paymentFixture) initiate(t *testing.T) {
	t.Helper()
	_, err := f.payments.InitiatePayment(context.Background(), &request.InitiatePaymentRequest{
		BookingReference: f.booking,
		Channel:          "FPX",
	})
	require.NoError(t, err)
}

func (f *paymentFixture) storedBooking(t *testing.T) *entity.Booking {
	t.Helper()
	booking, err := f.repo.Booking.FindByReference(context.Background(), f.booking)
	require.NoError(t, err)
	require.NotNil(t, booking)
	return booking
}

func (f *paymentFixture) storedPayment(t *testing.T) *entity.Payment {
	t.Helper()
	payment, err := f.repo.Payment.FindByGatewayPaymentID(context.Background(), "bill_123")
	require.NoError(t, err)
	require.NotNil(t, payment)
	return payment
}

func TestInitiatePayment(t *testing.T) {
	f := newPaymentFixture(t)

	resp, err := f.payments.InitiatePayment(context.Background(), &request.InitiatePaymentRequest{
		BookingReference: f.booking,
		Channel:          "DUITNOW_QR",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://portal.example.com/checkout/bill_123", resp.CheckoutURL)

	require.Len(t, f.gateway.bills, 1)
	bill := f.gateway.bills[0]
	assert.Equal(t, f.booking, bill.OrderReference)
	assert.Equal(t, float64(300), bill.Amount)
	assert.Equal(t, 6, bill.ChannelCode)
	assert.Equal(t, "https://tours.example.com/api/payments/return", bill.ReturnURL)

	payment := f.storedPayment(t)
	assert.Equal(t, entity.PaymentStatusPending, payment.Status)
	assert.Equal(t, entity.ChannelDuitNowQR, payment.Channel)
	assert.Equal(t, float64(300), payment.Amount)
}

func TestInitiatePaymentNotPayable(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	booking := f.storedBooking(t)
	require.NoError(t, f.service.ConfirmBooking(ctx, booking.ID.String()))

	_, err := f.payments.InitiatePayment(ctx, &request.InitiatePaymentRequest{
		BookingReference: f.booking,
		Channel:          "FPX",
	})
	assert.ErrorIs(t, err, ErrBookingNotPayable)
	assert.Empty(t, f.gateway.bills)
}

func TestInitiatePaymentUnknownReference(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.payments.InitiatePayment(context.Background(), &request.InitiatePaymentRequest{
		BookingReference: "NTT-ZZZZZZ",
		Channel:          "FPX",
	})
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
}

func TestHandleReturnSuccessConfirmsBooking(t *testing.T) {
	f := newPaymentFixture(t)
	f.initiate(t)

	result, err := f.payments.HandleReturn(context.Background(), &request.PaymentReturnEvent{
		PaymentID:     "bill_123",
		StatusID:      "3",
		TransactionID: "txn_900",
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Equal(t, f.booking, result.Reference)

	payment := f.storedPayment(t)
	assert.Equal(t, entity.PaymentStatusSucceeded, payment.Status)
	require.NotNil(t, payment.TransactionID)
	assert.Equal(t, "txn_900", *payment.TransactionID)

	booking := f.storedBooking(t)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	assert.Nil(t, booking.ExpiresAt)

	// Definitive event status: no fallback query needed.
	assert.Zero(t, f.gateway.statusCalls)
}

func TestHandleReturnFailureKeepsBookingPending(t *testing.T) {
	f := newPaymentFixture(t)
	f.initiate(t)

	result, err := f.payments.HandleReturn(context.Background(), &request.PaymentReturnEvent{
		PaymentID: "bill_123",
		StatusID:  "2",
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, result.Outcome)

	assert.Equal(t, entity.PaymentStatusFailed, f.storedPayment(t).Status)

	// The customer may retry until the expiry sweep claims the booking.
	booking := f.storedBooking(t)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)

	_, err = f.payments.InitiatePayment(context.Background(), &request.InitiatePaymentRequest{
		BookingReference: f.booking,
		Channel:          "FPX",
	})
	assert.NoError(t, err)
}

func TestHandleReturnReplayIsIdempotent(t *testing.T) {
	f := newPaymentFixture(t)
	f.initiate(t)
	ctx := context.Background()

	event := &request.PaymentReturnEvent{PaymentID: "bill_123", StatusID: "3"}
	_, err := f.payments.HandleReturn(ctx, event)
	require.NoError(t, err)

	// Replay with a contradictory status: the stored outcome wins and
	// nothing is re-mutated.
	event.StatusID = "2"
	result, err := f.payments.HandleReturn(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Equal(t, entity.PaymentStatusSucceeded, f.storedPayment(t).Status)
	assert.Equal(t, entity.BookingStatusConfirmed, f.storedBooking(t).Status)
	assert.Zero(t, f.gateway.statusCalls)
}

func TestHandleReturnFallsBackToStatusQuery(t *testing.T) {
	f := newPaymentFixture(t)
	f.initiate(t)

	f.gateway.status = &gateway.StatusResult{
		PaymentID:     "bill_123",
		StatusID:      gateway.StatusCodeSuccess,
		TransactionID: "txn_901",
	}

	// No status on the event: reconciliation asks the portal.
	result, err := f.payments.HandleReturn(context.Background(), &request.PaymentReturnEvent{
		PaymentID: "bill_123",
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Equal(t, 1, f.gateway.statusCalls)

	payment := f.storedPayment(t)
	assert.Equal(t, entity.PaymentStatusSucceeded, payment.Status)
	require.NotNil(t, payment.TransactionID)
	assert.Equal(t, "txn_901", *payment.TransactionID)
}

func TestHandleReturnGatewayDownLeavesStateUntouched(t *testing.T) {
	f := newPaymentFixture(t)
	f.initiate(t)

	f.gateway.statusErr = gateway.ErrGatewayUnavailable

	result, err := f.payments.HandleReturn(context.Background(), &request.PaymentReturnEvent{
		PaymentID: "bill_123",
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomePending, result.Outcome)

	assert.Equal(t, entity.PaymentStatusPending, f.storedPayment(t).Status)
	assert.Equal(t, entity.BookingStatusPending, f.storedBooking(t).Status)
}

func TestHandleReturnPendingStatusLeavesStateUntouched(t *testing.T) {
	f := newPaymentFixture(t)
	f.initiate(t)

	f.gateway.status = &gateway.StatusResult{
		PaymentID: "bill_123",
		StatusID:  gateway.StatusCodePending,
	}

	result, err := f.payments.HandleReturn(context.Background(), &request.PaymentReturnEvent{
		PaymentID: "bill_123",
		StatusID:  "1",
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomePending, result.Outcome)
	assert.Equal(t, entity.PaymentStatusPending, f.storedPayment(t).Status)
	assert.Equal(t, entity.BookingStatusPending, f.storedBooking(t).Status)
}

func TestHandleReturnUnknownPayment(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.payments.HandleReturn(context.Background(), &request.PaymentReturnEvent{
		PaymentID: "bill_999",
		StatusID:  "3",
	})
	assert.ErrorIs(t, err, repository.ErrPaymentNotFound)
}
