package auth

import (
	"sync"
	"time"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

// sessionManagerMock is a hand-written mock of sessionManager.
type sessionManagerMock struct {
	IssueSessionFunc    func(admin domain.Admin) (string, time.Time, error)
	ValidateSessionFunc func(token string) (domain.AdminSession, error)

	mu           sync.Mutex
	issuedAdmins []domain.Admin
}

func (m *sessionManagerMock) IssueSession(admin domain.Admin) (string, time.Time, error) {
	m.mu.Lock()
	m.issuedAdmins = append(m.issuedAdmins, admin)
	m.mu.Unlock()
	if m.IssueSessionFunc == nil {
		panic("sessionManagerMock.IssueSessionFunc: method is nil but IssueSession was just called")
	}
	return m.IssueSessionFunc(admin)
}

func (m *sessionManagerMock) ValidateSession(token string) (domain.AdminSession, error) {
	if m.ValidateSessionFunc == nil {
		panic("sessionManagerMock.ValidateSessionFunc: method is nil but ValidateSession was just called")
	}
	return m.ValidateSessionFunc(token)
}

func (m *sessionManagerMock) IssueSessionCalls() []domain.Admin {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Admin(nil), m.issuedAdmins...)
}
