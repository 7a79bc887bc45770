package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var referencePattern = regexp.MustCompile(`^NTT-[A-Z0-9]{6}$`)

func TestGenerateBookingReference(t *testing.T) {
	for i := 0; i < 100; i++ {
		ref := GenerateBookingReference()
		assert.Regexp(t, referencePattern, ref)
	}
}

func TestGenerateSessionToken(t *testing.T) {
	first := GenerateSessionToken()
	second := GenerateSessionToken()
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
