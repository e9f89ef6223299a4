// Package verification resolves public certificate codes to intern records.
package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

type internFinder interface {
	FindByCode(ctx context.Context, code string) (*domain.Intern, error)
}

type lookupCache interface {
	Get(ctx context.Context, code string) (*domain.Intern, error)
	Set(ctx context.Context, in *domain.Intern) error
}

type shareLinker interface {
	ShareURL(verificationCode string) string
}

// Result is the outcome of a verification lookup. Found=false is a normal
// outcome, not an error.
type Result struct {
	Code     string
	Found    bool
	Verified bool
	Intern   *domain.Intern
	ShareURL string
}

// Service performs public verification lookups.
type Service struct {
	log    *slog.Logger
	finder internFinder
	cache  lookupCache
	links  shareLinker
}

// NewService creates a verification Service. cache may be nil.
func NewService(log *slog.Logger, finder internFinder, cache lookupCache, links shareLinker) *Service {
	return &Service{
		log:    log.With("service", "verification"),
		finder: finder,
		cache:  cache,
		links:  links,
	}
}

// Verify looks the code up against both the verification code and the
// certificate ID. Lookups are case-insensitive and ignore surrounding space.
func (s *Service) Verify(ctx context.Context, code string) (*Result, error) {
	normalized := domain.NormalizeCode(code)
	if normalized == "" {
		return nil, domain.NewValidationError("code", "Verification code is required")
	}

	in, err := s.lookup(ctx, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.DebugContext(ctx, "verification code not found", slog.String("code", normalized))
			return &Result{Code: code}, nil
		}
		return nil, fmt.Errorf("verify %s: %w", normalized, err)
	}

	return &Result{
		Code:     code,
		Found:    true,
		Verified: !in.IsRevoked(),
		Intern:   in,
		ShareURL: s.links.ShareURL(in.VerificationCode),
	}, nil
}

// Lookup returns the record for code or domain.ErrNotFound.
func (s *Service) Lookup(ctx context.Context, code string) (*domain.Intern, error) {
	normalized := domain.NormalizeCode(code)
	if normalized == "" {
		return nil, domain.NewValidationError("code", "Verification code is required")
	}
	return s.lookup(ctx, normalized)
}

func (s *Service) lookup(ctx context.Context, code string) (*domain.Intern, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, code)
		if err != nil {
			s.log.WarnContext(ctx, "cache read failed", slog.String("error", err.Error()))
		} else if cached != nil {
			return cached, nil
		}
	}

	in, err := s.finder.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, in); err != nil {
			s.log.WarnContext(ctx, "cache write failed", slog.String("error", err.Error()))
		}
	}
	return in, nil
}
