package intern

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

// List returns the records matching the filter, newest first.
func (s *Service) List(ctx context.Context, f domain.InternFilter) ([]domain.Intern, error) {
	f.Search = strings.TrimSpace(f.Search)
	if f.Status != nil && !f.Status.IsValid() {
		return nil, domain.NewValidationError("status", MsgInvalidStatus)
	}

	interns, err := s.interns.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list interns: %w", err)
	}
	return interns, nil
}

// Get returns a single record.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Intern, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	in, err := s.interns.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get intern: %w", err)
	}
	return in, nil
}
