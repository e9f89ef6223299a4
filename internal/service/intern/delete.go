package intern

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

// Delete permanently removes a record.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	var deleted *domain.Intern
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		in, err := s.interns.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get intern: %w", err)
		}
		if err := s.interns.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete intern: %w", err)
		}
		deleted = in
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, deleted)

	s.log.InfoContext(ctx, "intern deleted",
		slog.String("intern_id", id.String()),
		slog.String("certificate_id", deleted.CertificateID),
	)

	return nil
}
