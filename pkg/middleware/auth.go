package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"movie-swiper/internal/auth"
	"movie-swiper/pkg/utils"

	"go.uber.org/zap"
)

// TokenVerifier resolves a bearer token to an authenticated user.
type TokenVerifier interface {
	GetUser(ctx context.Context, token string) (*auth.User, error)
}

// AuthUser validates the Authorization header against the auth
// platform and stores the resolved identity in the request context.
func AuthUser(verifier TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			user, err := verifier.GetUser(r.Context(), token)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidToken) {
					logger.Warn("Invalid or expired token", zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Unauthorized")
					return
				}
				logger.Error("Failed to verify token", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
