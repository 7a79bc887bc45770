package entity

import (
	"github.com/google/uuid"
)

// Service is a bookable tour product (e.g. sunset cruise, island hopping).
type Service struct {
	Base
	BusinessID      uuid.UUID `db:"business_id"`
	Name            string    `db:"name"`
	Description     string    `db:"description"`
	BasePrice       float64   `db:"base_price"`
	DurationMinutes int       `db:"duration_minutes"`
	IsActive        bool      `db:"is_active"`
}

type ServiceAddon struct {
	Base
	ServiceID uuid.UUID `db:"service_id"`
	Name      string    `db:"name"`
	Price     float64   `db:"price"`
	IsActive  bool      `db:"is_active"`
}
