// AcessoHub | 2026
// auth.go

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/acessohub/go-backend/internal/core"
)

type contextKey string

const (
	UserIDKey      contextKey = "user_id"
	AccessLevelKey contextKey = "access_level"
)

// Identity is the resolved caller attached to the request context by the
// authenticator, exactly once per request.
type Identity struct {
	UserID      string
	AccessLevel int
}

type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*Identity, error)
}

// Authenticator rejects requests without a resolvable bearer token before
// any handler logic runs.
func Authenticator(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				core.Unauthorized(w, "unauthenticated")
				return
			}

			identity, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				core.Unauthorized(w, "unauthenticated")
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, UserIDKey, identity.UserID)
			ctx = context.WithValue(ctx, AccessLevelKey, identity.AccessLevel)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAccessLevel guards a route group behind a minimum access level.
// Only additive surfaces use it; the published directory routes stay open to
// every authenticated caller.
func RequireAccessLevel(min int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsAuthenticated(r.Context()) {
				core.Unauthorized(w, "unauthenticated")
				return
			}

			if GetAccessLevel(r.Context()) < min {
				core.Forbidden(w, "insufficient access level")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

func GetAccessLevel(ctx context.Context) int {
	if level, ok := ctx.Value(AccessLevelKey).(int); ok {
		return level
	}
	return 0
}

func IsAuthenticated(ctx context.Context) bool {
	return GetUserID(ctx) != ""
}
