package intern

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockInternRepo struct {
	CreateFunc          func(ctx context.Context, in *domain.Intern) (*domain.Intern, error)
	ListFunc            func(ctx context.Context, f domain.InternFilter) ([]domain.Intern, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Intern, error)
	ExistsByEmailFunc   func(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	UpdateFunc          func(ctx context.Context, id uuid.UUID, u domain.InternUpdate) (*domain.Intern, error)
	UpdateStatusFunc    func(ctx context.Context, id uuid.UUID, status domain.InternStatus) (*domain.Intern, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	CompleteExpiredFunc func(ctx context.Context, asOf time.Time) ([]domain.Intern, error)

	mu          sync.Mutex
	createCalls int
	deleteCalls int
}

func (m *mockInternRepo) Create(ctx context.Context, in *domain.Intern) (*domain.Intern, error) {
	m.mu.Lock()
	m.createCalls++
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	out := *in
	out.ID = uuid.New()
	out.CreatedAt = time.Now().UTC()
	return &out, nil
}

func (m *mockInternRepo) List(ctx context.Context, f domain.InternFilter) ([]domain.Intern, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return []domain.Intern{}, nil
}

func (m *mockInternRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Intern, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockInternRepo) ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email, excludeID)
	}
	return false, nil
}

func (m *mockInternRepo) Update(ctx context.Context, id uuid.UUID, u domain.InternUpdate) (*domain.Intern, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, u)
	}
	return nil, domain.ErrNotFound
}

func (m *mockInternRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InternStatus) (*domain.Intern, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil, domain.ErrNotFound
}

func (m *mockInternRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.deleteCalls++
	m.mu.Unlock()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockInternRepo) CompleteExpired(ctx context.Context, asOf time.Time) ([]domain.Intern, error) {
	if m.CompleteExpiredFunc != nil {
		return m.CompleteExpiredFunc(ctx, asOf)
	}
	return nil, nil
}

// memoryRepo builds a mockInternRepo backed by a slice, enforcing
// case-insensitive email uniqueness the way the store does.
func memoryRepo() *mockInternRepo {
	var (
		mu   sync.Mutex
		rows []domain.Intern
	)
	m := &mockInternRepo{}
	m.ExistsByEmailFunc = func(_ context.Context, email string, excludeID uuid.UUID) (bool, error) {
		mu.Lock()
		defer mu.Unlock()
		for _, r := range rows {
			if strings.EqualFold(r.Email, email) && r.ID != excludeID {
				return true, nil
			}
		}
		return false, nil
	}
	m.CreateFunc = func(_ context.Context, in *domain.Intern) (*domain.Intern, error) {
		mu.Lock()
		defer mu.Unlock()
		for _, r := range rows {
			if strings.EqualFold(r.Email, in.Email) {
				return nil, domain.NewConflictError("email", "email taken")
			}
		}
		out := *in
		out.ID = uuid.New()
		out.CreatedAt = time.Date(2024, time.September, 2, 10, 0, 0, 0, time.UTC)
		rows = append(rows, out)
		return &out, nil
	}
	m.ListFunc = func(_ context.Context, f domain.InternFilter) ([]domain.Intern, error) {
		mu.Lock()
		defer mu.Unlock()
		out := []domain.Intern{}
		for _, r := range rows {
			if f.Status != nil && r.Status != *f.Status {
				continue
			}
			if f.Search != "" {
				q := strings.ToLower(f.Search)
				if !strings.Contains(strings.ToLower(r.FullName), q) &&
					!strings.Contains(strings.ToLower(r.Email), q) &&
					!strings.Contains(strings.ToLower(r.Role), q) {
					continue
				}
			}
			out = append(out, r)
		}
		return out, nil
	}
	return m
}

type mockCodeGenerator struct {
	mu    sync.Mutex
	codes []string
	err   error
	calls int
}

func (m *mockCodeGenerator) Generate(_ context.Context, prefix string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	if len(m.codes) == 0 {
		return prefix + strings.ToUpper(uuid.New().String()[:8]), nil
	}
	c := m.codes[0]
	m.codes = m.codes[1:]
	return c, nil
}

type mockTxManager struct {
	calls int
}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockInvalidator struct {
	mu    sync.Mutex
	codes []string
}

func (m *mockInvalidator) Invalidate(_ context.Context, codes ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes = append(m.codes, codes...)
	return nil
}
