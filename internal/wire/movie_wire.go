package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/internal/data/repository"
	"cinema-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.Token, repo.User, log))

		r.Get("/api/cinema/movies/", movieHandler.GetMovies)
		r.Get("/api/cinema/movies/{id}/", movieHandler.GetMovie)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireWrite(middleware.ResourceMovie, log))
			r.Post("/api/cinema/movies/", movieHandler.CreateMovie)
		})
	})
}
