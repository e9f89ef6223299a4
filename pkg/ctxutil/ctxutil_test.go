package ctxutil

import (
	"context"
	"testing"
	"time"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

func TestSessionFromCtx(t *testing.T) {
	t.Parallel()

	if _, ok := SessionFromCtx(context.Background()); ok {
		t.Fatal("expected no session in empty context")
	}

	s := domain.AdminSession{AdminID: "admin-1", Username: "admin", ExpiresAt: time.Now().Add(time.Hour)}
	ctx := WithSession(context.Background(), s)

	got, ok := SessionFromCtx(ctx)
	if !ok {
		t.Fatal("expected session")
	}
	if got.Username != "admin" {
		t.Errorf("username: got %q", got.Username)
	}
	if !IsAdminCtx(ctx) {
		t.Error("IsAdminCtx should be true")
	}

	if IsAdminCtx(WithSession(context.Background(), domain.AdminSession{})) {
		t.Error("session without admin ID must not count as admin")
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromCtx(ctx); got != "req-1" {
		t.Errorf("got %q", got)
	}
}
