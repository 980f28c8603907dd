package usecase

import (
	"cinema-api/internal/data/repository"
	"cinema-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	User         UserService
	Catalog      CatalogService
	Movie        MovieService
	MovieSession MovieSessionService
	Order        OrderService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		User:         NewUserService(repo, log),
		Catalog:      NewCatalogService(repo, log),
		Movie:        NewMovieService(repo, log),
		MovieSession: NewMovieSessionService(repo, log),
		Order:        NewOrderService(repo, log),
	}
}
