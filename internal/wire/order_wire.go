package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/internal/data/repository"
	"cinema-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.Token, repo.User, log))

		r.Get("/api/cinema/orders/", orderHandler.GetOrders)
		r.Get("/api/cinema/orders/{id}/", orderHandler.GetOrder)

		// Placing an order needs authentication only; the write policy
		// treats orders as open to every principal.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireWrite(middleware.ResourceOrder, log))
			r.Post("/api/cinema/orders/", orderHandler.PlaceOrder)
		})
	})
}
