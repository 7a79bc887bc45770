package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotNotFound is returned when an availability slot does not exist.
	ErrSlotNotFound = errors.New("time slot not found")

	// ErrSlotBlocked is returned when reserving against a blocked slot.
	ErrSlotBlocked = errors.New("this date is blocked for bookings")

	// ErrSlotHasBookings is returned when deleting a slot that still holds
	// reserved capacity.
	ErrSlotHasBookings = errors.New("slot still has active bookings")

	// ErrBookingNotFound is returned when a booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrPaymentNotFound is returned when a payment does not exist.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrDuplicateReference is returned when a booking insert collides on
	// the reference unique constraint. Callers retry with a fresh code.
	ErrDuplicateReference = errors.New("booking reference already exists")
)

// CapacityExceededError is returned when a reservation asks for more pax
// than the slot has left. Remaining carries the open spot count so the
// booking page can show it.
type CapacityExceededError struct {
	Remaining int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("only %d spots remaining", e.Remaining)
}
