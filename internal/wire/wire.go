// internal/wire/wire.go
package wire

import (
	"net/http"

	"cinema-api/internal/adaptor"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/usecase"
	"cinema-api/pkg/middleware"
	"cinema-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Routes
	wireUser(r, handler.User, repo, logger)
	wireCatalog(r, handler.Catalog, repo, logger)
	wireMovie(r, handler.Movie, repo, logger)
	wireMovieSession(r, handler.MovieSession, repo, logger)
	wireOrder(r, handler.Order, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
