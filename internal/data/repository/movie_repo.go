package repository

import (
	"context"
	"fmt"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// MovieFilter narrows FindAll. Empty fields are ignored; Title matches
// as a case-insensitive substring.
type MovieFilter struct {
	GenreIDs []uuid.UUID
	ActorIDs []uuid.UUID
	Title    string
}

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []uuid.UUID) error
	FindAll(ctx context.Context, filter MovieFilter) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindGenres(ctx context.Context, movieID uuid.UUID) ([]*entity.Genre, error)
	FindActors(ctx context.Context, movieID uuid.UUID) ([]*entity.Actor, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

// Create inserts the movie and its ordered genre/actor join rows in a
// single transaction so a half-linked movie can never be observed.
func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin movie transaction", zap.Error(err))
		return fmt.Errorf("begin movie transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO movies (id, title, description, duration, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = tx.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.Duration,
		movie.CreatedAt,
		movie.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %s: %w", movie.Title, err)
	}

	genreQuery := `
		INSERT INTO movie_genres (movie_id, genre_id, sequence)
		VALUES ($1, $2, $3)
	`
	for i, genreID := range genreIDs {
		if _, err := tx.Exec(ctx, genreQuery, movie.ID, genreID, i+1); err != nil {
			r.log.Error("Failed to link movie genre",
				zap.Error(err),
				zap.String("movie_id", movie.ID.String()),
				zap.String("genre_id", genreID.String()),
			)
			return fmt.Errorf("link genre %s to movie %s: %w", genreID.String(), movie.ID.String(), err)
		}
	}

	actorQuery := `
		INSERT INTO movie_actors (movie_id, actor_id, sequence)
		VALUES ($1, $2, $3)
	`
	for i, actorID := range actorIDs {
		if _, err := tx.Exec(ctx, actorQuery, movie.ID, actorID, i+1); err != nil {
			r.log.Error("Failed to link movie actor",
				zap.Error(err),
				zap.String("movie_id", movie.ID.String()),
				zap.String("actor_id", actorID.String()),
			)
			return fmt.Errorf("link actor %s to movie %s: %w", actorID.String(), movie.ID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit movie transaction", zap.Error(err))
		return fmt.Errorf("commit movie transaction: %w", err)
	}

	return nil
}

func (r *movieRepository) FindAll(ctx context.Context, filter MovieFilter) ([]*entity.Movie, error) {
	query := `
		SELECT DISTINCT m.id, m.title, m.description, m.duration, m.created_at, m.updated_at
		FROM movies m
	`

	var conds []string
	var args []any

	if len(filter.GenreIDs) > 0 {
		query += ` JOIN movie_genres mg ON mg.movie_id = m.id`
		args = append(args, filter.GenreIDs)
		conds = append(conds, fmt.Sprintf("mg.genre_id = ANY($%d)", len(args)))
	}

	if len(filter.ActorIDs) > 0 {
		query += ` JOIN movie_actors ma ON ma.movie_id = m.id`
		args = append(args, filter.ActorIDs)
		conds = append(conds, fmt.Sprintf("ma.actor_id = ANY($%d)", len(args)))
	}

	if filter.Title != "" {
		args = append(args, "%"+filter.Title+"%")
		conds = append(conds, fmt.Sprintf("m.title ILIKE $%d", len(args)))
	}

	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += " ORDER BY m.created_at"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find movies", zap.Error(err))
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Duration,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, title, description, duration, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Duration,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return &movie, nil
}

// FindGenres returns the movie's genres in insertion order.
func (r *movieRepository) FindGenres(ctx context.Context, movieID uuid.UUID) ([]*entity.Genre, error) {
	query := `
		SELECT g.id, g.name, g.created_at, g.updated_at
		FROM genres g
		JOIN movie_genres mg ON mg.genre_id = g.id
		WHERE mg.movie_id = $1
		ORDER BY mg.sequence
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find movie genres",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find genres of movie %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	var genres []*entity.Genre
	for rows.Next() {
		var genre entity.Genre
		err := rows.Scan(
			&genre.ID,
			&genre.Name,
			&genre.CreatedAt,
			&genre.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	return genres, nil
}

// FindActors returns the movie's actors in insertion order.
func (r *movieRepository) FindActors(ctx context.Context, movieID uuid.UUID) ([]*entity.Actor, error) {
	query := `
		SELECT a.id, a.first_name, a.last_name, a.created_at, a.updated_at
		FROM actors a
		JOIN movie_actors ma ON ma.actor_id = a.id
		WHERE ma.movie_id = $1
		ORDER BY ma.sequence
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find movie actors",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find actors of movie %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	return scanActors(rows, r.log)
}
