package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SettingsService interface {
	GetSettings(ctx context.Context, businessID string) (*response.SettingsResponse, error)
	UpdateSettings(ctx context.Context, businessID string, req *request.UpdateSettingsRequest) (*response.SettingsResponse, error)
}

type settingsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSettingsService(repo *repository.Repository, log *zap.Logger) SettingsService {
	return &settingsService{
		repo: repo,
		log:  log.With(zap.String("service", "settings")),
	}
}

func (s *settingsService) GetSettings(ctx context.Context, businessID string) (*response.SettingsResponse, error) {
	id, err := uuid.Parse(businessID)
	if err != nil {
		return nil, fmt.Errorf("invalid business id: %w", err)
	}

	business, err := s.repo.Business.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, fmt.Errorf("business %s not found", businessID)
	}

	resp := response.SettingsToResponse(business)
	return &resp, nil
}

// UpdateSettings changes the business profile and the auto-cancel policy.
// A shorter auto-cancel window only affects bookings created after the
// change; existing expiry deadlines stand.
func (s *settingsService) UpdateSettings(ctx context.Context, businessID string, req *request.UpdateSettingsRequest) (*response.SettingsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(businessID)
	if err != nil {
		return nil, fmt.Errorf("invalid business id: %w", err)
	}

	business, err := s.repo.Business.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, fmt.Errorf("business %s not found", businessID)
	}

	business.Name = req.Name
	business.Currency = req.Currency
	business.AutoCancelEnabled = req.AutoCancelEnabled
	business.AutoCancelMinutes = req.AutoCancelMinutes
	business.UpdatedAt = time.Now()

	if err := s.repo.Business.UpdateSettings(ctx, business); err != nil {
		return nil, err
	}

	s.log.Info("Settings updated",
		zap.String("business_id", businessID),
		zap.Bool("auto_cancel_enabled", business.AutoCancelEnabled),
		zap.Int("auto_cancel_minutes", business.AutoCancelMinutes),
	)

	resp := response.SettingsToResponse(business)
	return &resp, nil
}
