package intern

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

// ErrCodeGeneration is returned when the generator cannot produce a usable
// pair of codes.
var ErrCodeGeneration = errors.New("generate unique codes")

const maxCodeAttempts = 5

type internRepo interface {
	Create(ctx context.Context, in *domain.Intern) (*domain.Intern, error)
	List(ctx context.Context, f domain.InternFilter) ([]domain.Intern, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Intern, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, u domain.InternUpdate) (*domain.Intern, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InternStatus) (*domain.Intern, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CompleteExpired(ctx context.Context, asOf time.Time) ([]domain.Intern, error)
}

type codeGenerator interface {
	Generate(ctx context.Context, prefix string) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context, codes ...string) error
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(context.Context, ...string) error { return nil }

// Service issues intern records and manages the admin directory.
type Service struct {
	log     *slog.Logger
	interns internRepo
	codes   codeGenerator
	tx      txManager
	cache   cacheInvalidator
	prefix  string
}

// NewService creates a new intern Service. cache may be nil.
func NewService(
	log *slog.Logger,
	interns internRepo,
	codes codeGenerator,
	tx txManager,
	cache cacheInvalidator,
	codePrefix string,
) *Service {
	if cache == nil {
		cache = noopInvalidator{}
	}
	return &Service{
		log:     log.With("service", "intern"),
		interns: interns,
		codes:   codes,
		tx:      tx,
		cache:   cache,
		prefix:  codePrefix,
	}
}

func (s *Service) invalidate(ctx context.Context, in *domain.Intern) {
	if in == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, in.Codes()...); err != nil {
		s.log.WarnContext(ctx, "cache invalidation failed",
			slog.String("intern_id", in.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func duplicateEmail() error {
	return domain.NewConflictError("email", MsgDuplicateEmail)
}

// asEmailConflict reports whether err is a store-level unique violation on email.
func asEmailConflict(err error) bool {
	var ce *domain.ConflictError
	return errors.As(err, &ce) && ce.Field == "email"
}
