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

type MovieService interface {
	CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error)
	GetMovies(ctx context.Context, query request.MovieListQuery) ([]response.MovieResponse, error)
	GetMovie(ctx context.Context, id string) (*response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError("validation failed", errs)
	}

	genreIDs, err := s.resolveGenres(ctx, req.Genres)
	if err != nil {
		return nil, err
	}

	actorIDs, err := s.resolveActors(ctx, req.Actors)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
	}

	if err := s.repo.Movie.Create(ctx, movie, genreIDs, actorIDs); err != nil {
		return nil, err
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
		zap.Int("genres", len(genreIDs)),
		zap.Int("actors", len(actorIDs)),
	)

	return s.buildMovieResponse(ctx, movie)
}

func (s *movieService) GetMovies(ctx context.Context, query request.MovieListQuery) ([]response.MovieResponse, error) {
	var filter repository.MovieFilter

	// Malformed id filters match nothing rather than failing.
	genreIDs, ok := utils.ParseUUIDList(query.Genres)
	if !ok {
		return []response.MovieResponse{}, nil
	}
	filter.GenreIDs = genreIDs

	actorIDs, ok := utils.ParseUUIDList(query.Actors)
	if !ok {
		return []response.MovieResponse{}, nil
	}
	filter.ActorIDs = actorIDs

	filter.Title = query.Title

	movies, err := s.repo.Movie.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		resp, err := s.buildMovieResponse(ctx, movie)
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}

	return responses, nil
}

func (s *movieService) GetMovie(ctx context.Context, id string) (*response.MovieResponse, error) {
	movieID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.NewNotFoundError("movie %s not found", id)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, utils.NewNotFoundError("movie %s not found", id)
	}

	return s.buildMovieResponse(ctx, movie)
}

// resolveGenres parses the requested genre ids and confirms each one
// exists, naming the first bad reference.
func (s *movieService) resolveGenres(ctx context.Context, raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(raw))
	for i, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, utils.NewValidationErrorf("invalid genre id %s", value)
		}
		ids[i] = id
	}

	found, err := s.repo.Genre.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	known := make(map[uuid.UUID]bool, len(found))
	for _, genre := range found {
		known[genre.ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			return nil, utils.NewValidationErrorf("genre %s not found", id.String())
		}
	}

	return ids, nil
}

func (s *movieService) resolveActors(ctx context.Context, raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(raw))
	for i, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, utils.NewValidationErrorf("invalid actor id %s", value)
		}
		ids[i] = id
	}

	found, err := s.repo.Actor.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	known := make(map[uuid.UUID]bool, len(found))
	for _, actor := range found {
		known[actor.ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			return nil, utils.NewValidationErrorf("actor %s not found", id.String())
		}
	}

	return ids, nil
}

func (s *movieService) buildMovieResponse(ctx context.Context, movie *entity.Movie) (*response.MovieResponse, error) {
	genres, err := s.repo.Movie.FindGenres(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	actors, err := s.repo.Movie.FindActors(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	resp := response.MovieToResponse(movie, genres, actors)
	return &resp, nil
}
