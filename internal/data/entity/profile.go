package entity

import (
	"github.com/google/uuid"
)

// Profile is a staff account on the dashboard.
type Profile struct {
	Base
	BusinessID   uuid.UUID `db:"business_id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FullName     string    `db:"full_name"`
	Role         string    `db:"role"`
	IsActive     bool      `db:"is_active"`
}
