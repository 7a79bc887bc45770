package repository

import (
	"tour-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Business     BusinessRepository
	Service      ServiceRepository
	ServiceAddon ServiceAddonRepository
	Availability AvailabilityRepository
	Booking      BookingRepository
	BookingItem  BookingItemRepository
	Payment      PaymentRepository
	Profile      ProfileRepository
	Session      SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Business:     NewBusinessRepository(db, log),
		Service:      NewServiceRepository(db, log),
		ServiceAddon: NewServiceAddonRepository(db, log),
		Availability: NewAvailabilityRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		BookingItem:  NewBookingItemRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
		Profile:      NewProfileRepository(db, log),
		Session:      NewSessionRepository(db, log),
	}
}
