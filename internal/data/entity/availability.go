package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot is a bookable time window with finite capacity.
// Invariant maintained by the repository: 0 <= BookedCount <= Capacity.
type AvailabilitySlot struct {
	Base
	BusinessID  uuid.UUID `db:"business_id"`
	ServiceID   uuid.UUID `db:"service_id"`
	SlotDate    time.Time `db:"slot_date"`
	StartTime   string    `db:"start_time"` // HH:MM
	EndTime     string    `db:"end_time"`   // HH:MM
	Capacity    int       `db:"capacity"`
	BookedCount int       `db:"booked_count"`
	IsBlocked   bool      `db:"is_blocked"`
}

// Remaining returns the number of spots still open on the slot.
func (s *AvailabilitySlot) Remaining() int {
	remaining := s.Capacity - s.BookedCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsFull returns true if the slot has no open spots.
func (s *AvailabilitySlot) IsFull() bool {
	return s.Remaining() == 0
}
