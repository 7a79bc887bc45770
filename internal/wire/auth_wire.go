package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// POST /api/auth/login - Staff login (public)
	r.Post("/api/auth/login", authHandler.Login)

	// POST /api/auth/logout - Invalidate the current session
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Profile, log))
		r.Post("/api/auth/logout", authHandler.Logout)
	})
}
