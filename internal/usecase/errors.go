package usecase

import "errors"

var (
	// ErrAlreadyCancelled signals an idempotent no-op: the booking was
	// cancelled before, and capacity was released exactly once.
	ErrAlreadyCancelled = errors.New("booking already cancelled")

	// ErrInvalidTransition is returned for a status change the lifecycle
	// does not allow (e.g. completing a pending booking).
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrBookingNotPayable is returned when a payment is initiated for a
	// booking that is not awaiting payment.
	ErrBookingNotPayable = errors.New("booking is not awaiting payment")

	ErrInvalidCredentials = errors.New("invalid email or password")
)
