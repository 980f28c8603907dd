package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthToken is an opaque bearer token issued on login and resolved by
// the auth middleware on every request.
type AuthToken struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
}
