package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAvailability(
	r chi.Router,
	availabilityHandler *adaptor.AvailabilityHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/availability - Open slots with remaining counts
	r.Get("/api/availability", availabilityHandler.ListOpenSlots)

	// ==================== STAFF ROUTES ====================
	r.Route("/api/admin/availability", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Profile, log))

		r.Get("/", availabilityHandler.ListSlots)
		r.Post("/", availabilityHandler.CreateSlot)
		r.Post("/generate", availabilityHandler.GenerateSlots)
		r.Put("/{id}/block", availabilityHandler.BlockSlot)
		r.Put("/{id}/unblock", availabilityHandler.UnblockSlot)
		r.Delete("/{id}", availabilityHandler.DeleteSlot)
	})
}
