package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SessionFilter narrows FindAll. Date matches the calendar date of
// show_time; both fields AND-combine when set.
type SessionFilter struct {
	Date    *time.Time
	MovieID *uuid.UUID
}

type MovieSessionRepository interface {
	Create(ctx context.Context, session *entity.MovieSession) error
	FindAll(ctx context.Context, filter SessionFilter) ([]*entity.MovieSession, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieSession, error)
	Update(ctx context.Context, session *entity.MovieSession) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type movieSessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieSessionRepository(db database.PgxIface, log *zap.Logger) MovieSessionRepository {
	return &movieSessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_session")),
	}
}

func (r *movieSessionRepository) Create(ctx context.Context, session *entity.MovieSession) error {
	query := `
		INSERT INTO movie_sessions (id, movie_id, cinema_hall_id, show_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.MovieID,
		session.CinemaHallID,
		session.ShowTime,
		session.CreatedAt,
		session.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie session",
			zap.Error(err),
			zap.String("movie_id", session.MovieID.String()),
			zap.String("cinema_hall_id", session.CinemaHallID.String()),
		)
		return fmt.Errorf("create movie session for movie %s: %w", session.MovieID.String(), err)
	}

	return nil
}

func (r *movieSessionRepository) FindAll(ctx context.Context, filter SessionFilter) ([]*entity.MovieSession, error) {
	query := `
		SELECT id, movie_id, cinema_hall_id, show_time, created_at, updated_at
		FROM movie_sessions
	`

	var conds []string
	var args []any

	if filter.Date != nil {
		args = append(args, *filter.Date)
		conds = append(conds, fmt.Sprintf("show_time::date = $%d::date", len(args)))
	}

	if filter.MovieID != nil {
		args = append(args, *filter.MovieID)
		conds = append(conds, fmt.Sprintf("movie_id = $%d", len(args)))
	}

	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += " ORDER BY show_time"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find movie sessions", zap.Error(err))
		return nil, fmt.Errorf("find movie sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*entity.MovieSession
	for rows.Next() {
		var session entity.MovieSession
		err := rows.Scan(
			&session.ID,
			&session.MovieID,
			&session.CinemaHallID,
			&session.ShowTime,
			&session.CreatedAt,
			&session.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie session row", zap.Error(err))
			return nil, fmt.Errorf("scan movie session row: %w", err)
		}
		sessions = append(sessions, &session)
	}

	return sessions, nil
}

func (r *movieSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieSession, error) {
	query := `
		SELECT id, movie_id, cinema_hall_id, show_time, created_at, updated_at
		FROM movie_sessions
		WHERE id = $1
	`

	var session entity.MovieSession
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.MovieID,
		&session.CinemaHallID,
		&session.ShowTime,
		&session.CreatedAt,
		&session.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie session by ID",
			zap.Error(err),
			zap.String("movie_session_id", id.String()),
		)
		return nil, fmt.Errorf("find movie session by ID %s: %w", id.String(), err)
	}

	return &session, nil
}

func (r *movieSessionRepository) Update(ctx context.Context, session *entity.MovieSession) error {
	query := `
		UPDATE movie_sessions
		SET movie_id = $2, cinema_hall_id = $3, show_time = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		session.ID,
		session.MovieID,
		session.CinemaHallID,
		session.ShowTime,
		session.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update movie session",
			zap.Error(err),
			zap.String("movie_session_id", session.ID.String()),
		)
		return fmt.Errorf("update movie session %s: %w", session.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie session %s not found", session.ID.String())
	}

	return nil
}

func (r *movieSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM movie_sessions WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie session",
			zap.Error(err),
			zap.String("movie_session_id", id.String()),
		)
		return fmt.Errorf("delete movie session %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie session %s not found", id.String())
	}

	r.log.Info("Movie session deleted", zap.String("movie_session_id", id.String()))
	return nil
}
