package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/plantkeeper/internal/server/handlers"
)

// AuthMiddleware проверяет Bearer JWT и кладет пользователя в контекст.
// Любая ошибка аутентификации отвечает 401 в формате api.ErrorResponse.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WarnContext(ctx, "missing Authorization header", slog.String("path", r.URL.Path))
				handlers.WriteError(w, "missing token", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				logger.WarnContext(ctx, "invalid Authorization header format")
				handlers.WriteError(w, "invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, strings.TrimSpace(token))
			if err != nil {
				logger.WarnContext(ctx, "invalid access token", slog.Any("error", err))
				handlers.WriteError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			logger.DebugContext(ctx, "user authenticated", slog.String("user_id", claims.UserID))

			next.ServeHTTP(w, r.WithContext(handlers.WithUser(ctx, claims.UserID, claims.Email)))
		})
	}
}
