package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tour-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *Client {
	return NewClient(utils.GatewayConfig{
		BaseURL:        baseURL,
		APIKey:         "test-api-key",
		PortalKey:      "test-portal-key",
		TimeoutSeconds: 2,
	}, zap.NewNop())
}

func TestCreateBill(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/bills", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		assert.Equal(t, "test-portal-key", r.Header.Get("X-Portal-Key"))

		var req CreateBillRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "NTT-AB12CD", req.OrderReference)
		assert.Equal(t, 1, req.ChannelCode)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateBillResponse{
			PaymentID:   "bill_42",
			CheckoutURL: "https://portal.example.com/checkout/bill_42",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.CreateBill(context.Background(), CreateBillRequest{
		OrderReference: "NTT-AB12CD",
		Amount:         380,
		ChannelCode:    1,
		CustomerName:   "Aisyah Rahman",
		CustomerEmail:  "aisyah@example.com",
		ReturnURL:      "https://tours.example.com/api/payments/return",
	})
	require.NoError(t, err)
	assert.Equal(t, "bill_42", resp.PaymentID)
	assert.Equal(t, "https://portal.example.com/checkout/bill_42", resp.CheckoutURL)
}

func TestCreateBillServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreateBill(context.Background(), CreateBillRequest{})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestCreateBillMissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"id": ""})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreateBill(context.Background(), CreateBillRequest{})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestCreateBillConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens anymore

	client := newTestClient(server.URL)
	_, err := client.CreateBill(context.Background(), CreateBillRequest{})
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestGetStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/bills/bill_42", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(StatusResult{
			PaymentID:         "bill_42",
			StatusID:          StatusCodeSuccess,
			TransactionID:     "txn_7",
			ExchangeReference: "fpx_777",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.GetStatus(context.Background(), "bill_42")
	require.NoError(t, err)
	assert.Equal(t, ResolutionSucceeded, result.Resolution())
	assert.Equal(t, "txn_7", result.TransactionID)
	assert.Equal(t, "fpx_777", result.ExchangeReference)
}

func TestGetStatusNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GetStatus(context.Background(), "bill_missing")
	assert.ErrorIs(t, err, ErrBillNotFound)
}

func TestGetStatusGatewayDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	_, err := client.GetStatus(context.Background(), "bill_42")
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}
