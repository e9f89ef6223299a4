package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
	"github.com/Test-app01/sans-intern-verify/pkg/ctxutil"
)

type sessionValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.AdminSession, error)
}

type adminRecorder interface {
	recordAdmin(id string)
}

// Auth resolves a bearer token into an admin session. Requests without a
// token pass through anonymously; an invalid token is rejected with 401.
func Auth(validator sessionValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			session, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if rec, ok := w.(adminRecorder); ok {
				rec.recordAdmin(session.AdminID)
			}
			ctx := ctxutil.WithSession(r.Context(), session)
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
