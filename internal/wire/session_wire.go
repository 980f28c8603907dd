package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/internal/data/repository"
	"cinema-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovieSession(
	r chi.Router,
	sessionHandler *adaptor.MovieSessionHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.Token, repo.User, log))

		r.Get("/api/cinema/movie_sessions/", sessionHandler.GetMovieSessions)
		r.Get("/api/cinema/movie_sessions/{id}/", sessionHandler.GetMovieSession)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireWrite(middleware.ResourceMovieSession, log))

			r.Post("/api/cinema/movie_sessions/", sessionHandler.CreateMovieSession)
			r.Put("/api/cinema/movie_sessions/{id}/", sessionHandler.UpdateMovieSession)
			r.Delete("/api/cinema/movie_sessions/{id}/", sessionHandler.DeleteMovieSession)
		})
	})
}
