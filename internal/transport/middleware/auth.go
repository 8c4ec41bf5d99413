package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/scorekeeper-backend/internal/auth"
	"github.com/heartmarshall/scorekeeper-backend/pkg/ctxutil"
)

type sessionValidator interface {
	Validate(token string) (*auth.PlatformIdentity, error)
}

// Auth attaches the platform identity carried by a bearer session token to
// the request context. Requests without a token pass through anonymously
// and resolve to the default context.
func Auth(validator sessionValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			identity, err := validator.Validate(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := auth.WithIdentity(r.Context(), identity)
			if identity.User != nil {
				ctx = ctxutil.WithTelegramID(ctx, identity.User.ID)
			}
			ctx = ctxutil.WithContextID(ctx, auth.ResolveContext(identity).ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
