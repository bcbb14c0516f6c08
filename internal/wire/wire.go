// internal/wire/wire.go
package wire

import (
	"net/http"

	"user-management/internal/adaptor"
	"user-management/internal/data/repository"
	"user-management/internal/usecase"
	"user-management/pkg/middleware"
	"user-management/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, logger *zap.Logger) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	r.Route("/api/v1", func(r chi.Router) {
		wireAuth(r, handler.Auth)
		wireUser(r, handler.User)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Uniform JSON envelope for unmatched routes
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Recurso no encontrado")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseMethodNotAllowed(w, "Método no permitido")
	})

	return r
}
