package middleware

import (
	"net/http"
	"strings"

	"cinema-api/internal/data/repository"
	"cinema-api/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token to a principal and stores it
// in the request context. The staff flag is read from the user row on
// every request so a role change takes effect immediately.
func Authenticate(tokenRepo repository.TokenRepository, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token, err := tokenRepo.FindValidToken(r.Context(), parts[1])
			if err != nil {
				logger.Error("Failed to validate token", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if token == nil {
				logger.Warn("Invalid or expired token")
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			user, err := userRepo.FindByID(r.Context(), token.UserID)
			if err != nil {
				logger.Error("Failed to load token user",
					zap.Error(err),
					zap.String("user_id", token.UserID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetPrincipal(r.Context(), utils.Principal{
				UserID:  user.ID,
				IsStaff: user.IsStaff,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
