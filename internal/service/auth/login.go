package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

// Login checks the credentials against the configured admin pair and
// issues a session token. Any mismatch is ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := input.Validate(); err != nil {
		return nil, domain.ErrUnauthorized
	}

	if !s.checkCredentials(input.Username, input.Password) {
		s.log.WarnContext(ctx, "admin login rejected", slog.String("username", input.Username))
		return nil, domain.ErrUnauthorized
	}

	admin := domain.Admin{ID: AdminID, Username: input.Username}
	token, expiresAt, err := s.sessions.IssueSession(admin)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue session: %w", err)
	}

	s.log.InfoContext(ctx, "admin logged in", slog.String("admin_id", admin.ID))

	return &LoginResult{Admin: admin, AccessToken: token, ExpiresAt: expiresAt}, nil
}

// ValidateToken resolves a bearer token to an admin session.
func (s *Service) ValidateToken(ctx context.Context, token string) (domain.AdminSession, error) {
	session, err := s.sessions.ValidateSession(token)
	if err != nil {
		s.log.DebugContext(ctx, "session token rejected", slog.String("error", err.Error()))
		return domain.AdminSession{}, domain.ErrUnauthorized
	}
	return session, nil
}
