// Package intern implements the intern record store on PostgreSQL.
// Queries are built with squirrel and scanned with scany.
package intern

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/dbscan"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/Test-app01/sans-intern-verify/internal/adapter/postgres"
	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

const table = "interns"

var columns = []string{
	"id", "full_name", "email", "role", "start_date", "end_date",
	"certificate_id", "verification_code", "status", "created_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// uniqueFields maps unique constraint names to the record field they guard.
var uniqueFields = map[string]string{
	"interns_email_key":             "email",
	"interns_certificate_id_key":    "certificate_id",
	"interns_verification_code_key": "verification_code",
}

const existsByEmailSQL = `
SELECT EXISTS(
  SELECT 1 FROM interns
  WHERE lower(email) = lower($1) AND id <> $2
)`

type row struct {
	ID               uuid.UUID `db:"id"`
	FullName         string    `db:"full_name"`
	Email            string    `db:"email"`
	Role             string    `db:"role"`
	StartDate        time.Time `db:"start_date"`
	EndDate          time.Time `db:"end_date"`
	CertificateID    string    `db:"certificate_id"`
	VerificationCode string    `db:"verification_code"`
	Status           string    `db:"status"`
	CreatedAt        time.Time `db:"created_at"`
}

// Repo provides intern persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new intern repository. db is usually a *pgxpool.Pool;
// a transaction in ctx takes precedence.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new record and returns it as stored.
func (r *Repo) Create(ctx context.Context, in *domain.Intern) (*domain.Intern, error) {
	status := in.Status
	if status == "" {
		status = domain.InternStatusActive
	}

	query, args, err := psql.Insert(table).
		Columns("full_name", "email", "role", "start_date", "end_date",
			"certificate_id", "verification_code", "status").
		Values(in.FullName, in.Email, in.Role, dateOnly(in.StartDate), dateOnly(in.EndDate),
			in.CertificateID, in.VerificationCode, string(status)).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	return r.getOne(ctx, in.Email, query, args...)
}

// List returns records matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.InternFilter) ([]domain.Intern, error) {
	b := psql.Select(columns...).From(table).OrderBy("created_at DESC", "id")

	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + escapeLike(s) + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"full_name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"role": pattern},
		})
	}
	if f.Status != nil {
		b = b.Where(squirrel.Eq{"status": string(*f.Status)})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, mapError(err, "list")
	}

	out := make([]domain.Intern, len(rows))
	for i, rw := range rows {
		out[i] = toDomain(rw)
	}
	return out, nil
}

// GetByID returns the record with the given ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Intern, error) {
	query, args, err := psql.Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	return r.getOne(ctx, id.String(), query, args...)
}

// FindByCode returns the record whose verification code or certificate ID
// equals code. Codes are compared exactly; callers normalize.
func (r *Repo) FindByCode(ctx context.Context, code string) (*domain.Intern, error) {
	query, args, err := psql.Select(columns...).From(table).
		Where(squirrel.Or{
			squirrel.Eq{"verification_code": code},
			squirrel.Eq{"certificate_id": code},
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	return r.getOne(ctx, code, query, args...)
}

// ExistsByEmail reports whether another record uses email, compared
// case-insensitively. excludeID is ignored when it is uuid.Nil.
func (r *Repo) ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, existsByEmailSQL, email, excludeID).
		Scan(&exists)
	if err != nil {
		return false, mapError(err, email)
	}
	return exists, nil
}

// Update overwrites the editable fields of a record.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, u domain.InternUpdate) (*domain.Intern, error) {
	query, args, err := psql.Update(table).
		Set("full_name", u.FullName).
		Set("email", u.Email).
		Set("role", u.Role).
		Set("start_date", dateOnly(u.StartDate)).
		Set("end_date", dateOnly(u.EndDate)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	return r.getOne(ctx, id.String(), query, args...)
}

// UpdateStatus sets the status of a record.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InternStatus) (*domain.Intern, error) {
	query, args, err := psql.Update(table).
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	return r.getOne(ctx, id.String(), query, args...)
}

// Delete permanently removes a record.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("intern %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CompleteExpired marks Active records whose end date is before asOf as
// Completed and returns the records that changed.
func (r *Repo) CompleteExpired(ctx context.Context, asOf time.Time) ([]domain.Intern, error) {
	query, args, err := psql.Update(table).
		Set("status", string(domain.InternStatusCompleted)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"status": string(domain.InternStatusActive)}).
		Where(squirrel.Lt{"end_date": dateOnly(asOf)}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, mapError(err, "complete_expired")
	}

	out := make([]domain.Intern, len(rows))
	for i, rw := range rows {
		out[i] = toDomain(rw)
	}
	return out, nil
}

func (r *Repo) getOne(ctx context.Context, key, query string, args ...any) (*domain.Intern, error) {
	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, mapError(err, key)
	}
	in := toDomain(rw)
	return &in, nil
}

func toDomain(r row) domain.Intern {
	return domain.Intern{
		ID:               r.ID,
		FullName:         r.FullName,
		Email:            r.Email,
		Role:             r.Role,
		StartDate:        dateOnly(r.StartDate),
		EndDate:          dateOnly(r.EndDate),
		CertificateID:    r.CertificateID,
		VerificationCode: r.VerificationCode,
		Status:           domain.InternStatus(r.Status),
		CreatedAt:        r.CreatedAt,
	}
}

func mapError(err error, key string) error {
	if pgxscan.NotFound(err) || dbscan.NotFound(err) {
		return fmt.Errorf("intern %s: %w", key, domain.ErrNotFound)
	}
	if name, ok := postgres.UniqueViolation(err); ok {
		if field, known := uniqueFields[name]; known {
			return fmt.Errorf("intern %s: %w", key,
				domain.NewConflictError(field, "intern with this "+strings.ReplaceAll(field, "_", " ")+" already exists"))
		}
	}
	return postgres.MapError(err, "intern", key)
}

// dateOnly truncates t to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
