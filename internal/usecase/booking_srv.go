package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxReferenceAttempts bounds the retry loop on reference collisions.
// With 36^6 possible codes a second collision in a row is already
// vanishingly unlikely.
const maxReferenceAttempts = 5

const expiredReason = "payment window expired"

type BookingService interface {
	// Public endpoints
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookingByReference(ctx context.Context, reference string) (*response.BookingResponse, error)

	// Staff endpoints
	ListBookings(ctx context.Context, businessID string, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ConfirmBooking(ctx context.Context, bookingID string) error
	CancelBooking(ctx context.Context, bookingID, reason string) error
	CompleteBooking(ctx context.Context, bookingID string) error
	MarkNoShow(ctx context.Context, bookingID string) error

	// Expiry sweep
	ExpireOverdue(ctx context.Context, batchSize int) (int, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	slotID, err := uuid.Parse(req.SlotID)
	if err != nil {
		return nil, fmt.Errorf("invalid slot ID format %s: %w", req.SlotID, err)
	}

	slot, err := s.repo.Availability.FindByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, repository.ErrSlotNotFound
	}

	service, err := s.repo.Service.FindByID(ctx, slot.ServiceID)
	if err != nil || service == nil {
		return nil, fmt.Errorf("service for slot %s not found", req.SlotID)
	}

	// Resolve addon lines before touching the capacity counter so a bad
	// addon never leaves a reservation behind.
	items, addonsTotal, err := s.resolveAddons(ctx, slot.ServiceID, req.Addons)
	if err != nil {
		return nil, err
	}

	business, err := s.repo.Business.FindByID(ctx, slot.BusinessID)
	if err != nil || business == nil {
		return nil, fmt.Errorf("business for slot %s not found", req.SlotID)
	}

	subtotal := service.BasePrice * float64(req.Pax)

	now := time.Now()
	var expiresAt *time.Time
	if business.AutoCancelEnabled {
		deadline := now.Add(time.Duration(business.AutoCancelMinutes) * time.Minute)
		expiresAt = &deadline
	}

	// Reserve capacity first; the conditional update in the repository is
	// the authoritative overbooking guard.
	if err := s.repo.Availability.ReserveCapacity(ctx, slotID, req.Pax); err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BusinessID:    slot.BusinessID,
		SlotID:        &slotID,
		ServiceID:     slot.ServiceID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Pax:           req.Pax,
		Subtotal:      subtotal,
		AddonsTotal:   addonsTotal,
		TotalAmount:   subtotal + addonsTotal,
		Status:        entity.BookingStatusPending,
		ExpiresAt:     expiresAt,
	}

	// Insert with a fresh reference on every collision. The unique
	// constraint on bookings.reference is the actual uniqueness check.
	var insertErr error
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		booking.Reference = utils.GenerateBookingReference()
		insertErr = s.repo.Booking.Create(ctx, booking)
		if insertErr == nil || !errors.Is(insertErr, repository.ErrDuplicateReference) {
			break
		}
	}

	if insertErr != nil {
		// Compensate the reservation; the booking row never landed.
		if relErr := s.repo.Availability.ReleaseCapacity(ctx, slotID, req.Pax); relErr != nil {
			s.log.Error("Failed to release capacity after booking insert failure",
				zap.Error(relErr),
				zap.String("slot_id", slotID.String()),
			)
		}
		s.log.Error("Failed to create booking",
			zap.Error(insertErr),
			zap.String("slot_id", req.SlotID),
		)
		return nil, fmt.Errorf("create booking: %w", insertErr)
	}

	for _, item := range items {
		item.BookingID = booking.ID
	}
	if err := s.repo.BookingItem.CreateBatch(ctx, items); err != nil {
		// Roll the whole booking back: delete the row and give the
		// capacity back.
		s.repo.Booking.Delete(ctx, booking.ID)
		s.repo.Availability.ReleaseCapacity(ctx, slotID, req.Pax)
		return nil, fmt.Errorf("create booking items: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("slot_id", req.SlotID),
		zap.Int("pax", req.Pax),
		zap.Float64("total_amount", booking.TotalAmount),
	)

	return s.buildBookingResponse(ctx, booking), nil
}

func (s *bookingService) resolveAddons(ctx context.Context, serviceID uuid.UUID, addonReqs []request.BookingAddonRequest) ([]*entity.BookingItem, float64, error) {
	if len(addonReqs) == 0 {
		return nil, 0, nil
	}

	now := time.Now()
	items := make([]*entity.BookingItem, 0, len(addonReqs))
	var total float64

	for _, addonReq := range addonReqs {
		addonID, err := uuid.Parse(addonReq.AddonID)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid addon ID format %s: %w", addonReq.AddonID, err)
		}

		addon, err := s.repo.ServiceAddon.FindByID(ctx, addonID)
		if err != nil {
			return nil, 0, err
		}
		if addon == nil || addon.ServiceID != serviceID || !addon.IsActive {
			return nil, 0, fmt.Errorf("addon %s not available for this service", addonReq.AddonID)
		}

		items = append(items, &entity.BookingItem{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			AddonID:  addon.ID,
			Name:     addon.Name,
			Price:    addon.Price,
			Quantity: addonReq.Quantity,
		})
		total += addon.Price * float64(addonReq.Quantity)
	}

	return items, total, nil
}

func (s *bookingService) GetBookingByReference(ctx context.Context, reference string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, repository.ErrBookingNotFound
	}

	return s.buildBookingResponse(ctx, booking), nil
}

func (s *bookingService) ListBookings(ctx context.Context, businessID string, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	businessUUID, err := uuid.Parse(businessID)
	if err != nil {
		return nil, fmt.Errorf("invalid business ID format %s: %w", businessID, err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	filter := repository.BookingFilter{BusinessID: businessUUID}
	if req.Status != "" {
		status := entity.BookingStatus(req.Status)
		filter.Status = &status
	}
	if req.DateFrom != "" {
		from := utils.ParseDate(req.DateFrom, time.Time{})
		filter.DateFrom = &from
	}
	if req.DateTo != "" {
		// Include the whole end date.
		to := utils.ParseDate(req.DateTo, time.Time{}).Add(24*time.Hour - time.Second)
		filter.DateTo = &to
	}

	bookings, err := s.repo.Booking.FindByBusiness(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("business_id", businessID),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByBusiness(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = *s.buildBookingResponse(ctx, booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return s.buildBookingResponse(ctx, booking), nil
}

// ConfirmBooking is the staff confirmation path; payment reconciliation is
// the other. Only pending bookings can be confirmed.
func (s *bookingService) ConfirmBooking(ctx context.Context, bookingID string) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != entity.BookingStatusPending {
		return ErrInvalidTransition
	}

	if err := s.repo.Booking.Confirm(ctx, booking.ID); err != nil {
		return err
	}

	s.log.Info("Booking confirmed",
		zap.String("booking_id", bookingID),
		zap.String("reference", booking.Reference),
	)

	return nil
}

// CancelBooking releases the booking's capacity exactly once. Cancelling
// an already-cancelled booking reports ErrAlreadyCancelled and changes
// nothing.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID, reason string) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	return s.cancel(ctx, booking, reason)
}

func (s *bookingService) cancel(ctx context.Context, booking *entity.Booking, reason string) error {
	if booking.IsCancelled() {
		return ErrAlreadyCancelled
	}
	if !booking.CanBeCancelled() {
		return ErrInvalidTransition
	}

	if err := s.repo.Booking.Cancel(ctx, booking.ID, reason, time.Now()); err != nil {
		return err
	}

	if booking.SlotID != nil {
		if err := s.repo.Availability.ReleaseCapacity(ctx, *booking.SlotID, booking.Pax); err != nil {
			// The booking is cancelled either way; the counter clamp keeps
			// a later manual correction safe.
			s.log.Error("Failed to release capacity on cancel",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
				zap.String("slot_id", booking.SlotID.String()),
			)
		}
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("reason", reason),
	)

	return nil
}

func (s *bookingService) CompleteBooking(ctx context.Context, bookingID string) error {
	return s.transitionFromConfirmed(ctx, bookingID, entity.BookingStatusCompleted)
}

func (s *bookingService) MarkNoShow(ctx context.Context, bookingID string) error {
	return s.transitionFromConfirmed(ctx, bookingID, entity.BookingStatusNoShow)
}

func (s *bookingService) transitionFromConfirmed(ctx context.Context, bookingID string, target entity.BookingStatus) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != entity.BookingStatusConfirmed {
		return ErrInvalidTransition
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, target); err != nil {
		return err
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("reference", booking.Reference),
		zap.String("status", string(target)),
	)

	return nil
}

// ExpireOverdue cancels pending bookings whose payment window has passed.
// Called periodically by the expiry sweeper.
func (s *bookingService) ExpireOverdue(ctx context.Context, batchSize int) (int, error) {
	overdue, err := s.repo.Booking.FindExpiredPending(ctx, time.Now(), batchSize)
	if err != nil {
		return 0, fmt.Errorf("find expired bookings: %w", err)
	}

	expired := 0
	for _, booking := range overdue {
		if err := s.cancel(ctx, booking, expiredReason); err != nil {
			// A booking confirmed or cancelled between the query and this
			// call is fine to skip.
			if errors.Is(err, ErrAlreadyCancelled) || errors.Is(err, ErrInvalidTransition) {
				continue
			}
			s.log.Error("Failed to expire booking",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
			continue
		}
		expired++
	}

	if expired > 0 {
		s.log.Info("Expired overdue bookings", zap.Int("count", expired))
	}

	return expired, nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, repository.ErrBookingNotFound
	}

	return booking, nil
}

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking) *response.BookingResponse {
	resp := response.BookingToResponse(booking)

	service, _ := s.repo.Service.FindByID(ctx, booking.ServiceID)
	if service != nil {
		resp.ServiceName = service.Name
	}

	if booking.SlotID != nil {
		slot, _ := s.repo.Availability.FindByID(ctx, *booking.SlotID)
		if slot != nil {
			resp.SlotDate = slot.SlotDate.Format("2006-01-02")
			resp.StartTime = slot.StartTime
		}
	}

	items, _ := s.repo.BookingItem.FindByBookingID(ctx, booking.ID)
	for _, item := range items {
		resp.Items = append(resp.Items, response.BookingItemToResponse(item))
	}

	payment, _ := s.repo.Payment.FindLatestByBookingID(ctx, booking.ID)
	if payment != nil {
		paymentResp := response.PaymentToResponse(payment)
		resp.Payment = &paymentResp
	}

	return &resp
}
