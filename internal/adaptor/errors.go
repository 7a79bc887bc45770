package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"tour-booking/internal/data/repository"
	"tour-booking/internal/gateway"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError translates service layer errors into the JSON
// envelope. Known sentinels map to specific status codes; anything else
// is a 500 with the detail kept out of the response body.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var capacityErr *repository.CapacityExceededError

	switch {
	case errors.As(err, &capacityErr):
		log.Warn(operation+" failed - capacity exceeded",
			zap.Error(err),
			zap.Int("remaining", capacityErr.Remaining))
		utils.ResponseConflict(w, capacityErr.Error(), nil)

	case errors.Is(err, repository.ErrSlotBlocked):
		log.Warn(operation+" failed - slot blocked", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), nil)

	case errors.Is(err, repository.ErrSlotHasBookings):
		log.Warn(operation+" failed - slot has bookings", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), nil)

	case errors.Is(err, repository.ErrSlotNotFound),
		errors.Is(err, repository.ErrBookingNotFound),
		errors.Is(err, repository.ErrPaymentNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrAlreadyCancelled),
		errors.Is(err, usecase.ErrInvalidTransition),
		errors.Is(err, usecase.ErrBookingNotPayable):
		log.Warn(operation+" failed - invalid state", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation + " failed - invalid credentials")
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, gateway.ErrGatewayUnavailable):
		log.Error(operation+" failed - gateway unavailable", zap.Error(err))
		utils.ResponseJSON(w, http.StatusBadGateway, false, "Payment gateway is unavailable, please try again", nil, nil)

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"),
		strings.Contains(err.Error(), "not be before"):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case strings.Contains(err.Error(), "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
