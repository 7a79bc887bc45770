package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	BaseSimple
	ProfileID uuid.UUID `db:"profile_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
}
