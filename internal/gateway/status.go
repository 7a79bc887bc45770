package gateway

import (
	"fmt"
	"strconv"
)

// Portal status codes carried in return redirects and status responses.
const (
	StatusCodeNew       = 0
	StatusCodePending   = 1
	StatusCodeFailed    = 2
	StatusCodeSuccess   = 3
	StatusCodeCancelled = 4
)

// Resolution is the portal vocabulary reduced to what reconciliation
// needs: a definitive outcome, or no outcome yet.
type Resolution string

const (
	ResolutionSucceeded Resolution = "succeeded"
	ResolutionFailed    Resolution = "failed"
	ResolutionPending   Resolution = "pending"
)

// IsDefinitive reports whether the resolution settles the payment.
func (r Resolution) IsDefinitive() bool {
	return r == ResolutionSucceeded || r == ResolutionFailed
}

// statusTable is the fixed portal-code to resolution mapping. A cancelled
// bill counts as failed: the customer abandoned the attempt at the portal.
var statusTable = map[int]Resolution{
	StatusCodeNew:       ResolutionPending,
	StatusCodePending:   ResolutionPending,
	StatusCodeFailed:    ResolutionFailed,
	StatusCodeSuccess:   ResolutionSucceeded,
	StatusCodeCancelled: ResolutionFailed,
}

// MapStatusCode resolves a portal status code. Unknown codes map to
// pending so reconciliation never guesses an outcome.
func MapStatusCode(code int) Resolution {
	if resolution, ok := statusTable[code]; ok {
		return resolution
	}
	return ResolutionPending
}

// ParseStatusCode parses the status_id field of a return event.
func ParseStatusCode(raw string) (int, error) {
	code, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse status code %q: %w", raw, err)
	}
	return code, nil
}

// Payment channel codes the portal understands.
var channelCodes = map[string]int{
	"FPX":                1,
	"FPX_LINE_OF_CREDIT": 4,
	"DUITNOW_DOBW":       5,
	"DUITNOW_QR":         6,
}

// ChannelCode maps an internal payment channel onto the portal's numeric
// channel identifier.
func ChannelCode(channel string) (int, error) {
	code, ok := channelCodes[channel]
	if !ok {
		return 0, fmt.Errorf("unknown payment channel %q", channel)
	}
	return code, nil
}
