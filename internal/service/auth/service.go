// Package auth implements admin login and session validation.
package auth

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Test-app01/sans-intern-verify/internal/config"
	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

// AdminID is the identifier of the single configured administrator.
const AdminID = "admin-1"

// sessionManager defines the token operations needed by the auth service.
type sessionManager interface {
	IssueSession(admin domain.Admin) (string, time.Time, error)
	ValidateSession(token string) (domain.AdminSession, error)
}

// Service implements admin auth operations.
type Service struct {
	log          *slog.Logger
	sessions     sessionManager
	username     []byte
	passwordHash []byte
}

// NewService creates a new auth service. A plain configured password is
// hashed once at construction.
func NewService(logger *slog.Logger, sessions sessionManager, cfg config.AuthConfig) (*Service, error) {
	hash := []byte(cfg.AdminPasswordHash)
	if len(hash) == 0 {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("admin password hash: %w", err)
	}

	return &Service{
		log:          logger.With("service", "auth"),
		sessions:     sessions,
		username:     []byte(cfg.AdminUsername),
		passwordHash: hash,
	}, nil
}

func (s *Service) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), s.username) == 1
	// Always run bcrypt so a wrong username costs the same as a wrong password.
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	return userOK && passErr == nil
}

// HashPassword returns a bcrypt hash suitable for auth.admin_password_hash.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", domain.NewValidationError("password", "required")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}
