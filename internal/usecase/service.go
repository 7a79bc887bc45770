package usecase

import (
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Availability AvailabilityService
	Booking      BookingService
	Catalog      CatalogService
	Payment      PaymentService
	Settings     SettingsService
}

func NewService(repo *repository.Repository, gw PaymentGateway, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Availability: NewAvailabilityService(repo, log),
		Booking:      NewBookingService(repo, log),
		Catalog:      NewCatalogService(repo, log),
		Payment:      NewPaymentService(repo, gw, config, log),
		Settings:     NewSettingsService(repo, log),
	}
}
