package middleware

import (
	"net/http"

	"github.com/Test-app01/sans-intern-verify/pkg/ctxutil"
)

// RequireAdmin rejects requests without an admin session with 401.
// It must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
