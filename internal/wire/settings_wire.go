package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSettings(
	r chi.Router,
	settingsHandler *adaptor.SettingsHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/admin/settings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Profile, log))

		r.Get("/", settingsHandler.GetSettings)
		r.Put("/", settingsHandler.UpdateSettings)
	})
}
