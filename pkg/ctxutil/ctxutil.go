package ctxutil

import (
	"context"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

type ctxKey string

const (
	sessionKey   ctxKey = "admin_session"
	requestIDKey ctxKey = "request_id"
)

// WithSession stores the admin session in the context.
func WithSession(ctx context.Context, s domain.AdminSession) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromCtx extracts the admin session from the context.
// Returns false if the value is missing or has no admin ID.
func SessionFromCtx(ctx context.Context) (domain.AdminSession, bool) {
	s, ok := ctx.Value(sessionKey).(domain.AdminSession)
	if !ok || s.AdminID == "" {
		return domain.AdminSession{}, false
	}
	return s, true
}

// IsAdminCtx reports whether the context carries an admin session.
func IsAdminCtx(ctx context.Context) bool {
	_, ok := SessionFromCtx(ctx)
	return ok
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
