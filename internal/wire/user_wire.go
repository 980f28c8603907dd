package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/internal/data/repository"
	"cinema-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/user/register/", userHandler.Register)
	r.Post("/api/user/login/", userHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.Token, repo.User, log))

		r.Get("/api/user/me/", userHandler.GetMe)
		r.Put("/api/user/me/", userHandler.UpdateMe)
	})
}
