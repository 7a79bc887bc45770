package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPaymentService struct {
	lastEvent *request.PaymentReturnEvent
	result    *usecase.ReconcileResult
	err       error
}

func (s *stubPaymentService) InitiatePayment(_ context.Context, _ *request.InitiatePaymentRequest) (*response.InitiatePaymentResponse, error) {
	return nil, s.err
}

func (s *stubPaymentService) HandleReturn(_ context.Context, event *request.PaymentReturnEvent) (*usecase.ReconcileResult, error) {
	s.lastEvent = event
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newPaymentHandler(stub *stubPaymentService) *PaymentHandler {
	config := &utils.Config{
		App: utils.AppConfig{PublicURL: "https://tours.example.com"},
	}
	return NewPaymentHandler(stub, config, zap.NewNop())
}

func TestHandleReturnGetQuery(t *testing.T) {
	stub := &stubPaymentService{
		result: &usecase.ReconcileResult{Reference: "NTT-AB12CD", Outcome: usecase.OutcomeSuccess},
	}
	handler := newPaymentHandler(stub)

	req := httptest.NewRequest(http.MethodGet,
		"/api/payments/return?payment_id=bill_42&status_id=3&transaction_id=txn_7", nil)
	rec := httptest.NewRecorder()

	handler.HandleReturn(rec, req)

	require.NotNil(t, stub.lastEvent)
	assert.Equal(t, "bill_42", stub.lastEvent.PaymentID)
	assert.Equal(t, "3", stub.lastEvent.StatusID)
	assert.Equal(t, "txn_7", stub.lastEvent.TransactionID)

	assert.Equal(t, http.StatusFound, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "https", location.Scheme)
	assert.Equal(t, "tours.example.com", location.Host)
	assert.Equal(t, "/confirmation", location.Path)
	assert.Equal(t, "NTT-AB12CD", location.Query().Get("ref"))
	assert.Equal(t, "success", location.Query().Get("payment"))
}

func TestHandleReturnPostForm(t *testing.T) {
	stub := &stubPaymentService{
		result: &usecase.ReconcileResult{Reference: "NTT-AB12CD", Outcome: usecase.OutcomeFailed},
	}
	handler := newPaymentHandler(stub)

	form := url.Values{}
	form.Set("payment_id", "bill_42")
	form.Set("status_id", "2")
	form.Set("exchange_reference_number", "fpx_777")

	req := httptest.NewRequest(http.MethodPost, "/api/payments/return",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	handler.HandleReturn(rec, req)

	require.NotNil(t, stub.lastEvent)
	assert.Equal(t, "bill_42", stub.lastEvent.PaymentID)
	assert.Equal(t, "2", stub.lastEvent.StatusID)
	assert.Equal(t, "fpx_777", stub.lastEvent.ExchangeReference)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "payment=failed")
}

func TestHandleReturnPostJSON(t *testing.T) {
	stub := &stubPaymentService{
		result: &usecase.ReconcileResult{Reference: "NTT-AB12CD", Outcome: usecase.OutcomePending},
	}
	handler := newPaymentHandler(stub)

	body := `{"payment_id":"bill_42","status":"1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/payments/return", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.HandleReturn(rec, req)

	require.NotNil(t, stub.lastEvent)
	assert.Equal(t, "bill_42", stub.lastEvent.PaymentID)
	assert.Equal(t, "1", stub.lastEvent.Status)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "payment=pending")
}

// A reconciliation failure still lands the customer on the confirmation
// page, shown as pending.
func TestHandleReturnServiceErrorRedirectsPending(t *testing.T) {
	stub := &stubPaymentService{err: repository.ErrPaymentNotFound}
	handler := newPaymentHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/payments/return?payment_id=bill_999", nil)
	rec := httptest.NewRecorder()

	handler.HandleReturn(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "pending", location.Query().Get("payment"))
	assert.Empty(t, location.Query().Get("ref"))
}
