package adaptor

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service   usecase.PaymentService
	publicURL string
	log       *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, config *utils.Config, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service:   service,
		publicURL: config.App.PublicURL,
		log:       log.With(zap.String("handler", "payment")),
	}
}

// InitiatePayment handles POST /api/payments (public)
func (h *PaymentHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	var req request.InitiatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.InitiatePayment(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "initiate payment")
		return
	}

	utils.ResponseCreated(w, "success", result)
}

// HandleReturn handles GET|POST /api/payments/return. The gateway sends
// the customer back here after checkout; depending on channel the event
// arrives as query parameters, a form post, or a JSON body. Whatever the
// reconciliation decides, the customer ends up on the confirmation page.
func (h *PaymentHandler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	event, err := h.parseReturnEvent(r)
	if err != nil {
		h.log.Warn("Unparseable return event", zap.Error(err))
		http.Redirect(w, r, h.confirmationURL("", usecase.OutcomePending), http.StatusFound)
		return
	}

	result, err := h.service.HandleReturn(r.Context(), event)
	if err != nil {
		h.log.Error("Return reconciliation failed",
			zap.Error(err),
			zap.String("gateway_payment_id", event.PaymentID),
		)
		http.Redirect(w, r, h.confirmationURL("", usecase.OutcomePending), http.StatusFound)
		return
	}

	http.Redirect(w, r, h.confirmationURL(result.Reference, result.Outcome), http.StatusFound)
}

func (h *PaymentHandler) parseReturnEvent(r *http.Request) (*request.PaymentReturnEvent, error) {
	contentType := r.Header.Get("Content-Type")

	if r.Method == http.MethodPost && strings.HasPrefix(contentType, "application/json") {
		var event request.PaymentReturnEvent
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			return nil, err
		}
		return &event, nil
	}

	// ParseForm merges the query string with a urlencoded body; multipart
	// posts need the extra parse.
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			return nil, err
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, err
	}

	return &request.PaymentReturnEvent{
		PaymentID:         r.FormValue("payment_id"),
		StatusID:          r.FormValue("status_id"),
		Status:            r.FormValue("status"),
		TransactionID:     r.FormValue("transaction_id"),
		ExchangeReference: r.FormValue("exchange_reference_number"),
	}, nil
}

func (h *PaymentHandler) confirmationURL(reference string, outcome usecase.ReturnOutcome) string {
	params := url.Values{}
	if reference != "" {
		params.Set("ref", reference)
	}
	params.Set("payment", string(outcome))
	return h.publicURL + "/confirmation?" + params.Encode()
}
