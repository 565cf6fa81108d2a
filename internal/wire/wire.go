// internal/wire/wire.go
package wire

import (
	"net/http"

	"accountease/internal/adaptor"
	"accountease/internal/data/repository"
	"accountease/internal/usecase"
	"accountease/pkg/mailer"
	"accountease/pkg/middleware"
	"accountease/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, mail, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
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

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireReset(r, handler.Reset, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireShipment(r, handler.Shipment, repo, config, logger)
	wireTicket(r, handler.Ticket, repo, config, logger)

	// Uploaded files (transport chittis) are served from the media dir
	fileServer := http.StripPrefix("/media/", http.FileServer(http.Dir(config.Media.UploadDir)))
	r.Get("/media/*", func(w http.ResponseWriter, r *http.Request) {
		fileServer.ServeHTTP(w, r)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
