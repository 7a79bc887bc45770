package usecase

import (
	"context"
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

type AvailabilityService interface {
	CreateSlot(ctx context.Context, req *request.CreateSlotRequest) (*response.SlotResponse, error)
	GenerateSlots(ctx context.Context, req *request.GenerateSlotsRequest) ([]response.SlotResponse, error)
	ListSlots(ctx context.Context, serviceID string, from, to time.Time) ([]response.SlotResponse, error)
	ListOpenSlots(ctx context.Context, serviceID string, from, to time.Time) ([]response.SlotResponse, error)
	SetBlocked(ctx context.Context, slotID string, blocked bool) (*response.SlotResponse, error)
	DeleteSlot(ctx context.Context, slotID string) error
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) CreateSlot(ctx context.Context, req *request.CreateSlotRequest) (*response.SlotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service id: %w", err)
	}

	svc, err := s.repo.Service.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s not found", req.ServiceID)
	}

	slotDate, err := time.Parse("2006-01-02", req.SlotDate)
	if err != nil {
		return nil, fmt.Errorf("invalid slot date: %w", err)
	}

	now := time.Now()
	slot := &entity.AvailabilitySlot{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BusinessID: svc.BusinessID,
		ServiceID:  serviceID,
		SlotDate:   slotDate,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Capacity:   req.Capacity,
	}

	if err := s.repo.Availability.Create(ctx, slot); err != nil {
		return nil, err
	}

	s.log.Info("Slot created",
		zap.String("slot_id", slot.ID.String()),
		zap.String("service_id", serviceID.String()),
		zap.String("date", req.SlotDate),
	)

	resp := response.SlotToResponse(slot)
	return &resp, nil
}

// GenerateSlots fans a weekday pattern out over a date range, one slot
// per matching day. The whole batch inserts in a single transaction.
func (s *availabilityService) GenerateSlots(ctx context.Context, req *request.GenerateSlotsRequest) ([]response.SlotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service id: %w", err)
	}

	svc, err := s.repo.Service.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s not found", req.ServiceID)
	}

	from, err := time.Parse("2006-01-02", req.DateFrom)
	if err != nil {
		return nil, fmt.Errorf("invalid date_from: %w", err)
	}
	to, err := time.Parse("2006-01-02", req.DateTo)
	if err != nil {
		return nil, fmt.Errorf("invalid date_to: %w", err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("date_to must not be before date_from")
	}

	weekdays := make(map[time.Weekday]bool, len(req.Weekdays))
	for _, d := range req.Weekdays {
		weekdays[time.Weekday(d)] = true
	}

	now := time.Now()
	var slots []*entity.AvailabilitySlot
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if !weekdays[day.Weekday()] {
			continue
		}
		slots = append(slots, &entity.AvailabilitySlot{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			BusinessID: svc.BusinessID,
			ServiceID:  serviceID,
			SlotDate:   day,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			Capacity:   req.Capacity,
		})
	}

	if len(slots) == 0 {
		return []response.SlotResponse{}, nil
	}

	if err := s.repo.Availability.CreateBatch(ctx, slots); err != nil {
		return nil, err
	}

	s.log.Info("Slots generated",
		zap.String("service_id", serviceID.String()),
		zap.Int("count", len(slots)),
		zap.String("from", req.DateFrom),
		zap.String("to", req.DateTo),
	)

	resp := make([]response.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		resp = append(resp, response.SlotToResponse(slot))
	}
	return resp, nil
}

func (s *availabilityService) ListSlots(ctx context.Context, serviceID string, from, to time.Time) ([]response.SlotResponse, error) {
	return s.listSlots(ctx, serviceID, from, to, false)
}

// ListOpenSlots is the public view: blocked and full slots are filtered
// out so customers only see what they can actually book.
func (s *availabilityService) ListOpenSlots(ctx context.Context, serviceID string, from, to time.Time) ([]response.SlotResponse, error) {
	return s.listSlots(ctx, serviceID, from, to, true)
}

func (s *availabilityService) listSlots(ctx context.Context, serviceID string, from, to time.Time, openOnly bool) ([]response.SlotResponse, error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service id: %w", err)
	}

	slots, err := s.repo.Availability.FindByService(ctx, id, from, to)
	if err != nil {
		return nil, err
	}

	resp := make([]response.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		if openOnly && (slot.IsBlocked || slot.IsFull()) {
			continue
		}
		resp = append(resp, response.SlotToResponse(slot))
	}
	return resp, nil
}

func (s *availabilityService) SetBlocked(ctx context.Context, slotID string, blocked bool) (*response.SlotResponse, error) {
	id, err := uuid.Parse(slotID)
	if err != nil {
		return nil, fmt.Errorf("invalid slot id: %w", err)
	}

	if err := s.repo.Availability.SetBlocked(ctx, id, blocked); err != nil {
		return nil, err
	}

	slot, err := s.repo.Availability.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, repository.ErrSlotNotFound
	}

	s.log.Info("Slot block state changed",
		zap.String("slot_id", slotID),
		zap.Bool("blocked", blocked),
	)

	resp := response.SlotToResponse(slot)
	return &resp, nil
}

// DeleteSlot removes a slot that has never been booked. Slots holding
// active bookings must be blocked instead.
func (s *availabilityService) DeleteSlot(ctx context.Context, slotID string) error {
	id, err := uuid.Parse(slotID)
	if err != nil {
		return fmt.Errorf("invalid slot id: %w", err)
	}

	if err := s.repo.Availability.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Slot deleted", zap.String("slot_id", slotID))
	return nil
}
