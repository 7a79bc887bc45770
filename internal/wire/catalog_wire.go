package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/services - Active tour catalog
	r.Get("/api/services", catalogHandler.ListPublicServices)

	// GET /api/services/{id} - Service details with addons
	r.Get("/api/services/{id}", catalogHandler.GetService)

	// ==================== STAFF ROUTES ====================
	r.Route("/api/admin/services", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Profile, log))

		r.Get("/", catalogHandler.ListServices)
		r.Post("/", catalogHandler.CreateService)
		r.Put("/{id}", catalogHandler.UpdateService)
		r.Delete("/{id}", catalogHandler.DeleteService)
		r.Post("/{id}/addons", catalogHandler.CreateAddon)
	})

	r.Route("/api/admin/addons", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Profile, log))

		r.Put("/{id}", catalogHandler.UpdateAddon)
		r.Delete("/{id}", catalogHandler.DeleteAddon)
	})
}
