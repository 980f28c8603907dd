package repository

import (
	"context"
	"fmt"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TokenRepository interface {
	Create(ctx context.Context, token *entity.AuthToken) error
	FindValidToken(ctx context.Context, token string) (*entity.AuthToken, error)
}

type tokenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTokenRepository(db database.PgxIface, log *zap.Logger) TokenRepository {
	return &tokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "token")),
	}
}

func (r *tokenRepository) Create(ctx context.Context, token *entity.AuthToken) error {
	query := `
		INSERT INTO auth_tokens (id, user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		token.ID,
		token.UserID,
		token.Token,
		token.ExpiresAt,
		token.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create auth token",
			zap.Error(err),
			zap.String("user_id", token.UserID.String()),
		)
		return fmt.Errorf("create auth token for user %s: %w", token.UserID.String(), err)
	}

	return nil
}

func (r *tokenRepository) FindValidToken(ctx context.Context, token string) (*entity.AuthToken, error) {
	query := `
		SELECT id, user_id, token, expires_at, created_at
		FROM auth_tokens
		WHERE token = $1 AND expires_at > NOW()
	`

	var authToken entity.AuthToken
	err := r.db.QueryRow(ctx, query, token).Scan(
		&authToken.ID,
		&authToken.UserID,
		&authToken.Token,
		&authToken.ExpiresAt,
		&authToken.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find auth token", zap.Error(err))
		return nil, fmt.Errorf("find auth token: %w", err)
	}

	return &authToken, nil
}
