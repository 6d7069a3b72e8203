package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
)

type contextKey string

const userContextKey contextKey = "current_user"

// SessionResolver интерфейс разрешения пользователя по токену сессии
type SessionResolver interface {
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}

// UserFromContext возвращает пользователя запроса, если он аутентифицирован
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// bearerToken извлекает токен из заголовка Authorization
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// Auth требует действующую сессию, иначе возвращает 401
func Auth(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				handlers.RespondUnauthorized(w, "authorization required")
				return
			}

			user, err := resolver.CurrentUser(r.Context(), token)
			if err != nil {
				handlers.RespondUnauthorized(w, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth проставляет пользователя в контекст, если токен валиден.
// Гостевые запросы проходят дальше без пользователя.
func OptionalAuth(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token != "" {
				if user, err := resolver.CurrentUser(r.Context(), token); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), userContextKey, user))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
