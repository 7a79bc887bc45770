package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/internal/gateway"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentGateway is the slice of the portal client the payment service
// uses. The concrete implementation lives in internal/gateway.
type PaymentGateway interface {
	CreateBill(ctx context.Context, req gateway.CreateBillRequest) (*gateway.CreateBillResponse, error)
	GetStatus(ctx context.Context, paymentID string) (*gateway.StatusResult, error)
}

// ReturnOutcome is what the return handler redirects on.
type ReturnOutcome string

const (
	OutcomeSuccess ReturnOutcome = "success"
	OutcomePending ReturnOutcome = "pending"
	OutcomeFailed  ReturnOutcome = "failed"
)

// ReconcileResult carries the booking reference and the settled (or
// still-pending) outcome back to the return handler.
type ReconcileResult struct {
	Reference string
	Outcome   ReturnOutcome
}

type PaymentService interface {
	InitiatePayment(ctx context.Context, req *request.InitiatePaymentRequest) (*response.InitiatePaymentResponse, error)
	HandleReturn(ctx context.Context, event *request.PaymentReturnEvent) (*ReconcileResult, error)
}

type paymentService struct {
	repo      *repository.Repository
	gateway   PaymentGateway
	returnURL string
	log       *zap.Logger
}

func NewPaymentService(repo *repository.Repository, gw PaymentGateway, config *utils.Config, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:      repo,
		gateway:   gw,
		returnURL: config.App.PublicURL + "/api/payments/return",
		log:       log.With(zap.String("service", "payment")),
	}
}

// InitiatePayment registers a bill with the portal and records the
// attempt. Only pending bookings that have not expired are payable; a
// failed earlier attempt does not block a retry.
func (s *paymentService) InitiatePayment(ctx context.Context, req *request.InitiatePaymentRequest) (*response.InitiatePaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Initiate payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.repo.Booking.FindByReference(ctx, req.BookingReference)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, repository.ErrBookingNotFound
	}

	if booking.Status != entity.BookingStatusPending || booking.IsExpired(time.Now()) {
		return nil, ErrBookingNotPayable
	}

	channelCode, err := gateway.ChannelCode(req.Channel)
	if err != nil {
		return nil, fmt.Errorf("invalid payment channel %s: %w", req.Channel, err)
	}

	bill, err := s.gateway.CreateBill(ctx, gateway.CreateBillRequest{
		OrderReference: booking.Reference,
		Amount:         booking.TotalAmount,
		ChannelCode:    channelCode,
		CustomerName:   booking.CustomerName,
		CustomerEmail:  booking.CustomerEmail,
		ReturnURL:      s.returnURL,
	})
	if err != nil {
		s.log.Error("Failed to create bill",
			zap.Error(err),
			zap.String("reference", booking.Reference),
		)
		return nil, err
	}

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:        booking.ID,
		Status:           entity.PaymentStatusPending,
		Channel:          entity.PaymentChannel(req.Channel),
		Amount:           booking.TotalAmount,
		GatewayPaymentID: bill.PaymentID,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment attempt: %w", err)
	}

	s.log.Info("Payment initiated",
		zap.String("reference", booking.Reference),
		zap.String("gateway_payment_id", bill.PaymentID),
		zap.String("channel", req.Channel),
		zap.Float64("amount", booking.TotalAmount),
	)

	return &response.InitiatePaymentResponse{
		PaymentID:   payment.ID.String(),
		CheckoutURL: bill.CheckoutURL,
	}, nil
}

// HandleReturn reconciles a gateway return event against local state.
// Replayed events for settled payments re-display the stored outcome
// without mutating anything; unresolved events leave the payment pending
// rather than guessing.
func (s *paymentService) HandleReturn(ctx context.Context, event *request.PaymentReturnEvent) (*ReconcileResult, error) {
	if event.PaymentID == "" {
		return nil, fmt.Errorf("validation failed: payment_id is required")
	}

	payment, err := s.repo.Payment.FindByGatewayPaymentID(ctx, event.PaymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, repository.ErrPaymentNotFound
	}

	booking, err := s.repo.Booking.FindByID(ctx, payment.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, repository.ErrBookingNotFound
	}

	result := &ReconcileResult{Reference: booking.Reference}

	// Terminal payments are never re-mutated: the replayed event only
	// confirms what is already decided.
	if payment.Status.IsTerminal() {
		result.Outcome = outcomeForStatus(payment.Status)
		s.log.Info("Return event replayed for settled payment",
			zap.String("gateway_payment_id", event.PaymentID),
			zap.String("status", string(payment.Status)),
		)
		return result, nil
	}

	resolution, transactionID, exchangeRef := s.resolve(ctx, event, payment)

	switch resolution {
	case gateway.ResolutionSucceeded:
		if err := s.applySuccess(ctx, payment, booking, transactionID, exchangeRef); err != nil {
			return nil, err
		}
		result.Outcome = OutcomeSuccess

	case gateway.ResolutionFailed:
		// The booking stays pending: the customer may retry payment
		// until the expiry sweep claims it.
		if err := s.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusFailed, transactionID, exchangeRef); err != nil {
			return nil, err
		}
		s.log.Info("Payment failed",
			zap.String("gateway_payment_id", event.PaymentID),
			zap.String("reference", booking.Reference),
		)
		result.Outcome = OutcomeFailed

	default:
		// No resolution: state untouched, customer sees "payment
		// pending".
		result.Outcome = OutcomePending
	}

	return result, nil
}

// resolve settles the event to a definitive resolution when possible. The
// inbound status code wins when present; otherwise the portal's status
// API is the source of truth. Gateway failure resolves to pending.
func (s *paymentService) resolve(ctx context.Context, event *request.PaymentReturnEvent, payment *entity.Payment) (gateway.Resolution, *string, *string) {
	var transactionID, exchangeRef *string
	if event.TransactionID != "" {
		transactionID = &event.TransactionID
	}
	if event.ExchangeReference != "" {
		exchangeRef = &event.ExchangeReference
	}

	raw := event.StatusID
	if raw == "" {
		raw = event.Status
	}

	if raw != "" {
		code, err := gateway.ParseStatusCode(raw)
		if err == nil {
			if resolution := gateway.MapStatusCode(code); resolution.IsDefinitive() {
				return resolution, transactionID, exchangeRef
			}
		} else {
			s.log.Warn("Unparseable status on return event",
				zap.String("status", raw),
				zap.String("gateway_payment_id", event.PaymentID),
			)
		}
	}

	// Fallback: ask the portal directly.
	status, err := s.gateway.GetStatus(ctx, payment.GatewayPaymentID)
	if err != nil {
		s.log.Error("Gateway status query failed",
			zap.Error(err),
			zap.String("gateway_payment_id", payment.GatewayPaymentID),
		)
		return gateway.ResolutionPending, transactionID, exchangeRef
	}

	if status.TransactionID != "" {
		transactionID = &status.TransactionID
	}
	if status.ExchangeReference != "" {
		exchangeRef = &status.ExchangeReference
	}

	return status.Resolution(), transactionID, exchangeRef
}

// applySuccess marks the payment succeeded and confirms the booking. This
// path and explicit staff confirmation are the only two ways a booking
// reaches confirmed.
func (s *paymentService) applySuccess(ctx context.Context, payment *entity.Payment, booking *entity.Booking, transactionID, exchangeRef *string) error {
	if err := s.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusSucceeded, transactionID, exchangeRef); err != nil {
		return err
	}

	if booking.Status == entity.BookingStatusPending {
		if err := s.repo.Booking.Confirm(ctx, booking.ID); err != nil {
			return err
		}
	}

	s.log.Info("Payment succeeded, booking confirmed",
		zap.String("gateway_payment_id", payment.GatewayPaymentID),
		zap.String("reference", booking.Reference),
	)

	return nil
}

func outcomeForStatus(status entity.PaymentStatus) ReturnOutcome {
	switch status {
	case entity.PaymentStatusSucceeded:
		return OutcomeSuccess
	case entity.PaymentStatusFailed, entity.PaymentStatusRefunded:
		return OutcomeFailed
	default:
		return OutcomePending
	}
}
