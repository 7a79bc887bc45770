// internal/wire/wire.go
package wire

import (
	"net/http"

	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/gateway"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface plus the background workers the
// server runs alongside it.
type App struct {
	Router  *chi.Mux
	Sweeper *usecase.ExpirySweeper
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	gatewayClient := gateway.NewClient(config.Gateway, logger)

	service := usecase.NewService(repo, gatewayClient, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, repo, config, logger)

	sweeper := usecase.NewExpirySweeper(
		service.Booking,
		config.Booking.SweepInterval(),
		config.Booking.SweepBatchSize,
		logger,
	)

	return &App{
		Router:  router,
		Sweeper: sweeper,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	// Apply routes
	wireAuth(r, handler.Auth, repo, logger)
	wireCatalog(r, handler.Catalog, repo, logger)
	wireAvailability(r, handler.Availability, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wirePayment(r, handler.Payment)
	wireSettings(r, handler.Settings, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
