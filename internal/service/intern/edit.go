package intern

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

// Edit overwrites name, email, role and dates of a record. Codes and status
// are left untouched. The duplicate-email check excludes the record itself.
func (s *Service) Edit(ctx context.Context, id uuid.UUID, input EditInput) (*domain.Intern, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	p, err := IssueInput(input).parse()
	if err != nil {
		return nil, err
	}

	var updated *domain.Intern
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.interns.GetByID(ctx, id); err != nil {
			return fmt.Errorf("get intern: %w", err)
		}

		exists, err := s.interns.ExistsByEmail(ctx, p.email, id)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if exists {
			return duplicateEmail()
		}

		updated, err = s.interns.Update(ctx, id, domain.InternUpdate{
			FullName:  p.fullName,
			Email:     p.email,
			Role:      p.role,
			StartDate: p.start,
			EndDate:   p.end,
		})
		if err != nil {
			if asEmailConflict(err) {
				return duplicateEmail()
			}
			return fmt.Errorf("update intern: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, updated)

	s.log.InfoContext(ctx, "intern edited", slog.String("intern_id", id.String()))

	return updated, nil
}
