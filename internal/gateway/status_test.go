package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStatusCode(t *testing.T) {
	tests := []struct {
		name string
		code int
		want Resolution
	}{
		{"new", StatusCodeNew, ResolutionPending},
		{"pending", StatusCodePending, ResolutionPending},
		{"failed", StatusCodeFailed, ResolutionFailed},
		{"success", StatusCodeSuccess, ResolutionSucceeded},
		{"cancelled", StatusCodeCancelled, ResolutionFailed},
		{"unknown high", 99, ResolutionPending},
		{"unknown negative", -1, ResolutionPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapStatusCode(tt.code))
		})
	}
}

func TestResolutionIsDefinitive(t *testing.T) {
	assert.True(t, ResolutionSucceeded.IsDefinitive())
	assert.True(t, ResolutionFailed.IsDefinitive())
	assert.False(t, ResolutionPending.IsDefinitive())
}

func TestParseStatusCode(t *testing.T) {
	code, err := ParseStatusCode("3")
	require.NoError(t, err)
	assert.Equal(t, 3, code)

	_, err = ParseStatusCode("paid")
	assert.Error(t, err)

	_, err = ParseStatusCode("")
	assert.Error(t, err)
}

func TestChannelCode(t *testing.T) {
	tests := []struct {
		channel string
		want    int
	}{
		{"FPX", 1},
		{"FPX_LINE_OF_CREDIT", 4},
		{"DUITNOW_DOBW", 5},
		{"DUITNOW_QR", 6},
	}

	for _, tt := range tests {
		code, err := ChannelCode(tt.channel)
		require.NoError(t, err)
		assert.Equal(t, tt.want, code)
	}

	_, err := ChannelCode("PAYPAL")
	assert.Error(t, err)
}
