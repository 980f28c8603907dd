package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/internal/data/repository"
	"cinema-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.Token, repo.User, log))

		// Reads for any authenticated principal
		r.Get("/api/cinema/genres/", catalogHandler.GetGenres)
		r.Get("/api/cinema/genres/{id}/", catalogHandler.GetGenre)
		r.Get("/api/cinema/actors/", catalogHandler.GetActors)
		r.Get("/api/cinema/actors/{id}/", catalogHandler.GetActor)
		r.Get("/api/cinema/cinema_halls/", catalogHandler.GetCinemaHalls)
		r.Get("/api/cinema/cinema_halls/{id}/", catalogHandler.GetCinemaHall)

		// Writes gated by the write policy
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireWrite(middleware.ResourceGenre, log))
			r.Post("/api/cinema/genres/", catalogHandler.CreateGenre)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireWrite(middleware.ResourceActor, log))
			r.Post("/api/cinema/actors/", catalogHandler.CreateActor)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireWrite(middleware.ResourceCinemaHall, log))
			r.Post("/api/cinema/cinema_halls/", catalogHandler.CreateCinemaHall)
		})
	})
}
