package intern

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

// Issue validates the input, draws two codes and stores a new Active record.
// Nothing is written unless every check passes.
func (s *Service) Issue(ctx context.Context, input IssueInput) (*domain.Intern, error) {
	p, err := input.parse()
	if err != nil {
		return nil, err
	}

	exists, err := s.interns.ExistsByEmail(ctx, p.email, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, duplicateEmail()
	}

	certID, verCode, err := s.generateCodes(ctx)
	if err != nil {
		return nil, err
	}

	created, err := s.interns.Create(ctx, &domain.Intern{
		FullName:         p.fullName,
		Email:            p.email,
		Role:             p.role,
		StartDate:        p.start,
		EndDate:          p.end,
		CertificateID:    certID,
		VerificationCode: verCode,
		Status:           domain.InternStatusActive,
	})
	if err != nil {
		// The unique index is authoritative: a concurrent insert can slip past the pre-check.
		if asEmailConflict(err) {
			return nil, duplicateEmail()
		}
		return nil, fmt.Errorf("create intern: %w", err)
	}

	s.log.InfoContext(ctx, "intern issued",
		slog.String("intern_id", created.ID.String()),
		slog.String("certificate_id", created.CertificateID),
	)

	return created, nil
}

// generateCodes returns a certificate ID and a distinct verification code.
func (s *Service) generateCodes(ctx context.Context) (string, string, error) {
	certID, err := s.codes.Generate(ctx, s.prefix)
	if err != nil {
		return "", "", fmt.Errorf("%w: certificate id: %w", ErrCodeGeneration, err)
	}
	if certID == "" {
		return "", "", fmt.Errorf("%w: empty certificate id", ErrCodeGeneration)
	}

	for range maxCodeAttempts {
		verCode, err := s.codes.Generate(ctx, s.prefix)
		if err != nil {
			return "", "", fmt.Errorf("%w: verification code: %w", ErrCodeGeneration, err)
		}
		if verCode != "" && verCode != certID {
			return certID, verCode, nil
		}
	}

	return "", "", fmt.Errorf("%w: no distinct verification code after %d attempts", ErrCodeGeneration, maxCodeAttempts)
}
