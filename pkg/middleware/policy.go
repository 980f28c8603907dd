package middleware

import (
	"net/http"

	"cinema-api/pkg/utils"

	"go.uber.org/zap"
)

// Resource names a writable resource kind for the write policy.
type Resource string

const (
	ResourceGenre        Resource = "genre"
	ResourceActor        Resource = "actor"
	ResourceCinemaHall   Resource = "cinema_hall"
	ResourceMovie        Resource = "movie"
	ResourceMovieSession Resource = "movie_session"
	ResourceOrder        Resource = "order"
)

// CanWrite is the single write-gating policy for all endpoints: orders
// are open to any authenticated principal, everything else is staff
// territory.
func CanWrite(p utils.Principal, resource Resource) bool {
	switch resource {
	case ResourceOrder:
		return true
	default:
		return p.IsStaff
	}
}

// RequireWrite rejects callers the write policy does not allow. It
// runs after Authenticate and expects the principal in the context.
func RequireWrite(resource Resource, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := utils.GetPrincipal(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !CanWrite(principal, resource) {
				logger.Warn("Write denied by policy",
					zap.String("user_id", principal.UserID.String()),
					zap.String("resource", string(resource)),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Staff access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
