package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no_show"
)

type Booking struct {
	Base
	Reference       string        `db:"reference"`
	BusinessID      uuid.UUID     `db:"business_id"`
	SlotID          *uuid.UUID    `db:"slot_id"` // nil if the slot was deleted
	ServiceID       uuid.UUID     `db:"service_id"`
	CustomerName    string        `db:"customer_name"`
	CustomerEmail   string        `db:"customer_email"`
	CustomerPhone   string        `db:"customer_phone"`
	Pax             int           `db:"pax"`
	Subtotal        float64       `db:"subtotal"`
	AddonsTotal     float64       `db:"addons_total"`
	TotalAmount     float64       `db:"total_amount"`
	Status          BookingStatus `db:"status"`
	ExpiresAt       *time.Time    `db:"expires_at"`
	CancelledAt     *time.Time    `db:"cancelled_at"`
	CancelledReason *string       `db:"cancelled_reason"`
}

// CanBeCancelled returns true if the booking is in a state cancellation
// may start from.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// IsCancelled returns true if the booking has already been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// IsTerminal returns true if no further automated transition applies.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCompleted ||
		b.Status == BookingStatusCancelled ||
		b.Status == BookingStatusNoShow
}

// HoldsCapacity returns true while the booking counts against its slot's
// booked_count.
func (b *Booking) HoldsCapacity() bool {
	return b.Status == BookingStatusPending ||
		b.Status == BookingStatusConfirmed ||
		b.Status == BookingStatusCompleted ||
		b.Status == BookingStatusNoShow
}

// IsExpired returns true for a pending booking whose payment window has
// passed.
func (b *Booking) IsExpired(now time.Time) bool {
	return b.Status == BookingStatusPending &&
		b.ExpiresAt != nil &&
		b.ExpiresAt.Before(now)
}

// BookingItem is an addon line attached to a booking. Name and price are
// denormalized so history survives catalog edits.
type BookingItem struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	AddonID   uuid.UUID `db:"addon_id"`
	Name      string    `db:"name"`
	Price     float64   `db:"price"`
	Quantity  int       `db:"quantity"`
}
