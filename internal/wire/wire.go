package wire

import (
	"context"
	"net/http"
	"time"

	"agro-marketplace/internal/adaptor"
	"agro-marketplace/internal/data/repository"
	"agro-marketplace/internal/usecase"
	"agro-marketplace/pkg/middleware"
	"agro-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Pinger reports store reachability for the readiness probe
type Pinger interface {
	Ping(ctx context.Context) error
}

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of the repositories
func Wiring(repo *repository.Repository, store Pinger, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, store, config, logger),
	}
}

func setupRouter(
	handler *adaptor.Handler,
	store Pinger,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	// Apply routes
	wireAuth(r, handler.Auth, config, logger)
	wireCatalog(r, handler.Banner, handler.Product, handler.Image)
	wireCheckout(r, handler.Checkout)
	wireUploads(r, config.App.UploadsDir)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			logger.Warn("Readiness check failed", zap.Error(err))
			utils.ResponseError(w, http.StatusServiceUnavailable, err.Error(), nil)
			return
		}
		utils.ResponseSuccess(w, map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
