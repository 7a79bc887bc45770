package adaptor

import (
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Catalog      *CatalogHandler
	Payment      *PaymentHandler
	Settings     *SettingsHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Availability: NewAvailabilityHandler(service.Availability, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Catalog:      NewCatalogHandler(service.Catalog, config, log),
		Payment:      NewPaymentHandler(service.Payment, config, log),
		Settings:     NewSettingsHandler(service.Settings, log),
	}
}
