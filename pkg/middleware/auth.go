package middleware

import (
	"net/http"
	"strings"

	"tour-booking/internal/data/repository"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the staff session token and loads the profile's
// business onto the request context.
func AuthSession(sessionRepo repository.SessionRepository, profileRepo repository.ProfileRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			profile, err := profileRepo.FindByID(r.Context(), session.ProfileID)
			if err != nil {
				logger.Error("Failed to load profile for session",
					zap.Error(err),
					zap.String("profile_id", session.ProfileID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if profile == nil || !profile.IsActive {
				logger.Warn("Session for missing or inactive profile",
					zap.String("profile_id", session.ProfileID.String()))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetStaffContext(r.Context(), profile.ID, profile.BusinessID)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
