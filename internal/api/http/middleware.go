package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"timeless-backend/internal/domain"
	"timeless-backend/internal/logger"
	"timeless-backend/internal/security"
)

type contextKey string

const (
	actorKey     contextKey = "actor"
	requestIDKey contextKey = "request_id"
)

// ActorFromContext returns the authenticated actor, if any.
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}

// RequestID tags every request with an id for log correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authenticate resolves the bearer token to an actor. The token decodes
// to {id, role}; nothing downstream re-validates it.
func Authenticate(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeError(w, domain.NewUnauthorized("Not authorized, no token provided"))
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				logger.Debug("token validation failed", "error", err)
				writeError(w, domain.NewUnauthorized("Not authorized, token failed"))
				return
			}

			actor := domain.Actor{ID: claims.UserID, Role: claims.Role}
			ctx := context.WithValue(r.Context(), actorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates admin-only routes. It runs after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			writeError(w, domain.NewUnauthorized("Not authorized, no token provided"))
			return
		}
		if !actor.IsAdmin() {
			writeError(w, domain.NewForbidden("Not authorized as admin"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
