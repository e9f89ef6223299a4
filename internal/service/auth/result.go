package auth

import (
	"time"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

// LoginResult holds the outcome of a successful login.
type LoginResult struct {
	Admin       domain.Admin
	AccessToken string
	ExpiresAt   time.Time
}
