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

type MovieSessionService interface {
	CreateMovieSession(ctx context.Context, req *request.MovieSessionRequest) (*response.MovieSessionDetailResponse, error)
	GetMovieSessions(ctx context.Context, query request.SessionListQuery) ([]response.MovieSessionListResponse, error)
	GetMovieSession(ctx context.Context, id string) (*response.MovieSessionDetailResponse, error)
	UpdateMovieSession(ctx context.Context, id string, req *request.MovieSessionRequest) (*response.MovieSessionDetailResponse, error)
	DeleteMovieSession(ctx context.Context, id string) error
}

type movieSessionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieSessionService(repo *repository.Repository, log *zap.Logger) MovieSessionService {
	return &movieSessionService{
		repo: repo,
		log:  log.With(zap.String("service", "movie_session")),
	}
}

func (s *movieSessionService) CreateMovieSession(ctx context.Context, req *request.MovieSessionRequest) (*response.MovieSessionDetailResponse, error) {
	movieID, hallID, showTime, err := s.resolveSessionRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entity.MovieSession{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:      movieID,
		CinemaHallID: hallID,
		ShowTime:     showTime,
	}

	if err := s.repo.MovieSession.Create(ctx, session); err != nil {
		return nil, err
	}

	s.log.Info("Movie session created",
		zap.String("movie_session_id", session.ID.String()),
		zap.String("movie_id", movieID.String()),
		zap.String("cinema_hall_id", hallID.String()),
		zap.Time("show_time", showTime),
	)

	return s.buildDetailResponse(ctx, session)
}

func (s *movieSessionService) GetMovieSessions(ctx context.Context, query request.SessionListQuery) ([]response.MovieSessionListResponse, error) {
	var filter repository.SessionFilter

	// Malformed filter values yield an empty list, not an error.
	if query.Date != "" {
		date, err := time.Parse("2006-01-02", query.Date)
		if err != nil {
			return []response.MovieSessionListResponse{}, nil
		}
		filter.Date = &date
	}

	if query.Movie != "" {
		movieID, err := uuid.Parse(query.Movie)
		if err != nil {
			return []response.MovieSessionListResponse{}, nil
		}
		filter.MovieID = &movieID
	}

	sessions, err := s.repo.MovieSession.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	movies := make(map[uuid.UUID]*entity.Movie)
	halls := make(map[uuid.UUID]*entity.CinemaHall)

	responses := make([]response.MovieSessionListResponse, 0, len(sessions))
	for _, session := range sessions {
		movie, ok := movies[session.MovieID]
		if !ok {
			movie, err = s.repo.Movie.FindByID(ctx, session.MovieID)
			if err != nil {
				return nil, err
			}
			movies[session.MovieID] = movie
		}

		hall, ok := halls[session.CinemaHallID]
		if !ok {
			hall, err = s.repo.Hall.FindByID(ctx, session.CinemaHallID)
			if err != nil {
				return nil, err
			}
			halls[session.CinemaHallID] = hall
		}

		if movie == nil || hall == nil {
			s.log.Warn("Movie session with dangling reference skipped",
				zap.String("movie_session_id", session.ID.String()),
			)
			continue
		}

		responses = append(responses, response.MovieSessionToListResponse(session, movie, hall))
	}

	return responses, nil
}

func (s *movieSessionService) GetMovieSession(ctx context.Context, id string) (*response.MovieSessionDetailResponse, error) {
	session, err := s.findSession(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.buildDetailResponse(ctx, session)
}

func (s *movieSessionService) UpdateMovieSession(ctx context.Context, id string, req *request.MovieSessionRequest) (*response.MovieSessionDetailResponse, error) {
	session, err := s.findSession(ctx, id)
	if err != nil {
		return nil, err
	}

	movieID, hallID, showTime, err := s.resolveSessionRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	session.MovieID = movieID
	session.CinemaHallID = hallID
	session.ShowTime = showTime
	session.UpdatedAt = time.Now()

	if err := s.repo.MovieSession.Update(ctx, session); err != nil {
		return nil, err
	}

	s.log.Info("Movie session updated",
		zap.String("movie_session_id", session.ID.String()),
	)

	return s.buildDetailResponse(ctx, session)
}

func (s *movieSessionService) DeleteMovieSession(ctx context.Context, id string) error {
	session, err := s.findSession(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.MovieSession.Delete(ctx, session.ID); err != nil {
		return err
	}

	s.log.Info("Movie session deleted",
		zap.String("movie_session_id", session.ID.String()),
	)

	return nil
}

func (s *movieSessionService) findSession(ctx context.Context, id string) (*entity.MovieSession, error) {
	sessionID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.NewNotFoundError("movie session %s not found", id)
	}

	session, err := s.repo.MovieSession.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, utils.NewNotFoundError("movie session %s not found", id)
	}

	return session, nil
}

// resolveSessionRequest validates the request and confirms the movie
// and hall references exist; a bad reference is a validation failure,
// not a 404, because the session itself is the addressed resource.
func (s *movieSessionService) resolveSessionRequest(ctx context.Context, req *request.MovieSessionRequest) (uuid.UUID, uuid.UUID, time.Time, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Movie session validation failed", zap.Any("errors", errs))
		return uuid.Nil, uuid.Nil, time.Time{}, utils.NewValidationError("validation failed", errs)
	}

	showTime, err := time.Parse(time.RFC3339, req.ShowTime)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, utils.NewValidationErrorf("invalid show_time %s, expected RFC 3339", req.ShowTime)
	}

	movieID, err := uuid.Parse(req.Movie)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, utils.NewValidationErrorf("invalid movie id %s", req.Movie)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, err
	}
	if movie == nil {
		return uuid.Nil, uuid.Nil, time.Time{}, utils.NewValidationErrorf("movie %s not found", req.Movie)
	}

	hallID, err := uuid.Parse(req.CinemaHall)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, utils.NewValidationErrorf("invalid cinema hall id %s", req.CinemaHall)
	}

	hall, err := s.repo.Hall.FindByID(ctx, hallID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, err
	}
	if hall == nil {
		return uuid.Nil, uuid.Nil, time.Time{}, utils.NewValidationErrorf("cinema hall %s not found", req.CinemaHall)
	}

	return movieID, hallID, showTime, nil
}

func (s *movieSessionService) buildDetailResponse(ctx context.Context, session *entity.MovieSession) (*response.MovieSessionDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, session.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, utils.NewInternalError("movie missing for movie session", nil)
	}

	genres, err := s.repo.Movie.FindGenres(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	actors, err := s.repo.Movie.FindActors(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	hall, err := s.repo.Hall.FindByID(ctx, session.CinemaHallID)
	if err != nil {
		return nil, err
	}
	if hall == nil {
		return nil, utils.NewInternalError("cinema hall missing for movie session", nil)
	}

	return &response.MovieSessionDetailResponse{
		ID:         session.ID.String(),
		ShowTime:   session.ShowTime,
		Movie:      response.MovieToResponse(movie, genres, actors),
		CinemaHall: response.CinemaHallToResponse(hall),
	}, nil
}
