package utils

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateSessionToken() string {
	return uuid.New().String()
}

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const referenceLength = 6

// GenerateBookingReference creates a booking reference in the form
// NTT-XXXXXX. Uniqueness is enforced by the database constraint; callers
// retry on conflict.
func GenerateBookingReference() string {
	var sb strings.Builder
	sb.WriteString("NTT-")
	for i := 0; i < referenceLength; i++ {
		sb.WriteByte(referenceAlphabet[rand.Intn(len(referenceAlphabet))])
	}
	return sb.String()
}
