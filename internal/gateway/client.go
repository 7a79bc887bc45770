package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

// Client talks to the payment portal's REST API. The portal cannot reach
// private deployments with webhooks, so the browser return redirect is the
// primary channel and GetStatus is the fallback for missed redirects.
type Client struct {
	baseURL    string
	apiKey     string
	portalKey  string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(config utils.GatewayConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL:   config.BaseURL,
		apiKey:    config.APIKey,
		portalKey: config.PortalKey,
		httpClient: &http.Client{
			Timeout: config.Timeout(),
		},
		log: log.With(zap.String("client", "gateway")),
	}
}

type CreateBillRequest struct {
	OrderReference string  `json:"order_reference"`
	Amount         float64 `json:"amount"`
	ChannelCode    int     `json:"payment_channel"`
	CustomerName   string  `json:"payer_name"`
	CustomerEmail  string  `json:"payer_email"`
	ReturnURL      string  `json:"return_url"`
}

type CreateBillResponse struct {
	PaymentID   string `json:"id"`
	CheckoutURL string `json:"url"`
}

// StatusResult is the portal's answer to a status query.
type StatusResult struct {
	PaymentID         string `json:"id"`
	StatusID          int    `json:"status_id"`
	TransactionID     string `json:"transaction_id"`
	ExchangeReference string `json:"exchange_reference_number"`
}

// Resolution maps the portal status onto the internal vocabulary.
func (s *StatusResult) Resolution() Resolution {
	return MapStatusCode(s.StatusID)
}

// CreateBill registers a payment intent with the portal and returns the
// checkout URL the customer is sent to.
func (c *Client) CreateBill(ctx context.Context, billReq CreateBillRequest) (*CreateBillResponse, error) {
	body, err := json.Marshal(billReq)
	if err != nil {
		return nil, fmt.Errorf("marshal create bill request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/bills", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create bill request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Portal-Key", c.portalKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Create bill request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// continue
	default:
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("Create bill returned unexpected status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return nil, fmt.Errorf("%w: unexpected status %d", ErrInvalidResponse, resp.StatusCode)
	}

	var billResp CreateBillResponse
	if err := json.NewDecoder(resp.Body).Decode(&billResp); err != nil {
		return nil, fmt.Errorf("%w: decode create bill response: %v", ErrInvalidResponse, err)
	}

	if billResp.PaymentID == "" || billResp.CheckoutURL == "" {
		return nil, fmt.Errorf("%w: create bill response missing id or url", ErrInvalidResponse)
	}

	c.log.Info("Bill created",
		zap.String("order_reference", billReq.OrderReference),
		zap.String("gateway_payment_id", billResp.PaymentID),
	)

	return &billResp, nil
}

// GetStatus queries the portal for the current state of a bill. Used as
// the source of truth when a return event carries no definitive status.
func (c *Client) GetStatus(ctx context.Context, paymentID string) (*StatusResult, error) {
	url := fmt.Sprintf("%s/api/v1/bills/%s", c.baseURL, paymentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create status request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Status query failed",
			zap.Error(err),
			zap.String("gateway_payment_id", paymentID),
		)
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue
	case http.StatusNotFound:
		return nil, ErrBillNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var result StatusResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode status response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}
