package intern

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

// ChangeStatus sets the status of a record.
func (s *Service) ChangeStatus(ctx context.Context, id uuid.UUID, status domain.InternStatus) (*domain.Intern, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", MsgInvalidStatus)
	}

	updated, err := s.interns.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.invalidate(ctx, updated)

	s.log.InfoContext(ctx, "intern status changed",
		slog.String("intern_id", id.String()),
		slog.String("status", status.String()),
	)

	return updated, nil
}

// CompleteExpired marks Active records that ended before now as Completed
// and drops their cached verification entries.
func (s *Service) CompleteExpired(ctx context.Context, now time.Time) (int, error) {
	changed, err := s.interns.CompleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("complete expired: %w", err)
	}

	for i := range changed {
		s.invalidate(ctx, &changed[i])
	}

	s.log.InfoContext(ctx, "expired internships completed",
		slog.Int("count", len(changed)),
		slog.String("as_of", now.UTC().Format(domain.DateLayout)),
	)

	return len(changed), nil
}
