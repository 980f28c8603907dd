package usecase

import (
	"context"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService covers the append-only reference data: genres, actors
// and cinema halls.
type CatalogService interface {
	CreateGenre(ctx context.Context, req *request.CreateGenreRequest) (*response.GenreResponse, error)
	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
	GetGenre(ctx context.Context, id string) (*response.GenreResponse, error)

	CreateActor(ctx context.Context, req *request.CreateActorRequest) (*response.ActorResponse, error)
	GetActors(ctx context.Context) ([]response.ActorResponse, error)
	GetActor(ctx context.Context, id string) (*response.ActorResponse, error)

	CreateCinemaHall(ctx context.Context, req *request.CreateCinemaHallRequest) (*response.CinemaHallResponse, error)
	GetCinemaHalls(ctx context.Context) ([]response.CinemaHallResponse, error)
	GetCinemaHall(ctx context.Context, id string) (*response.CinemaHallResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

// ==================== GENRES ====================

func (s *catalogService) CreateGenre(ctx context.Context, req *request.CreateGenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create genre validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError("validation failed", errs)
	}

	now := time.Now()
	genre := &entity.Genre{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
	}

	if err := s.repo.Genre.Create(ctx, genre); err != nil {
		return nil, err
	}

	s.log.Info("Genre created",
		zap.String("genre_id", genre.ID.String()),
		zap.String("name", genre.Name),
	)

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *catalogService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		responses[i] = response.GenreToResponse(genre)
	}

	return responses, nil
}

func (s *catalogService) GetGenre(ctx context.Context, id string) (*response.GenreResponse, error) {
	genreID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.NewNotFoundError("genre %s not found", id)
	}

	genre, err := s.repo.Genre.FindByID(ctx, genreID)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, utils.NewNotFoundError("genre %s not found", id)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

// ==================== ACTORS ====================

func (s *catalogService) CreateActor(ctx context.Context, req *request.CreateActorRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create actor validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError("validation failed", errs)
	}

	now := time.Now()
	actor := &entity.Actor{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.repo.Actor.Create(ctx, actor); err != nil {
		return nil, err
	}

	s.log.Info("Actor created",
		zap.String("actor_id", actor.ID.String()),
		zap.String("full_name", actor.FullName()),
	)

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *catalogService) GetActors(ctx context.Context) ([]response.ActorResponse, error) {
	actors, err := s.repo.Actor.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]response.ActorResponse, len(actors))
	for i, actor := range actors {
		responses[i] = response.ActorToResponse(actor)
	}

	return responses, nil
}

func (s *catalogService) GetActor(ctx context.Context, id string) (*response.ActorResponse, error) {
	actorID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.NewNotFoundError("actor %s not found", id)
	}

	actor, err := s.repo.Actor.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, utils.NewNotFoundError("actor %s not found", id)
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

// ==================== CINEMA HALLS ====================

func (s *catalogService) CreateCinemaHall(ctx context.Context, req *request.CreateCinemaHallRequest) (*response.CinemaHallResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create cinema hall validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError("validation failed", errs)
	}

	now := time.Now()
	hall := &entity.CinemaHall{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	}

	if err := s.repo.Hall.Create(ctx, hall); err != nil {
		return nil, err
	}

	s.log.Info("Cinema hall created",
		zap.String("hall_id", hall.ID.String()),
		zap.String("name", hall.Name),
		zap.Int("capacity", hall.Capacity()),
	)

	resp := response.CinemaHallToResponse(hall)
	return &resp, nil
}

func (s *catalogService) GetCinemaHalls(ctx context.Context) ([]response.CinemaHallResponse, error) {
	halls, err := s.repo.Hall.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]response.CinemaHallResponse, len(halls))
	for i, hall := range halls {
		responses[i] = response.CinemaHallToResponse(hall)
	}

	return responses, nil
}

func (s *catalogService) GetCinemaHall(ctx context.Context, id string) (*response.CinemaHallResponse, error) {
	hallID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.NewNotFoundError("cinema hall %s not found", id)
	}

	hall, err := s.repo.Hall.FindByID(ctx, hallID)
	if err != nil {
		return nil, err
	}
	if hall == nil {
		return nil, utils.NewNotFoundError("cinema hall %s not found", id)
	}

	resp := response.CinemaHallToResponse(hall)
	return &resp, nil
}
