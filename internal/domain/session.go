package domain

import "time"

// Admin identifies the single configured administrator.
type Admin struct {
	ID       string
	Username string
}

// AdminSession is the validated state of an admin access token.
type AdminSession struct {
	AdminID   string
	Username  string
	ExpiresAt time.Time
}

// IsExpired returns true if the session has expired relative to now.
func (s AdminSession) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
