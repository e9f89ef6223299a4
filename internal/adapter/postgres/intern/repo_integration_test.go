//go:build integration

package intern_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Test-app01/sans-intern-verify/internal/adapter/postgres/codegen"
	"github.com/Test-app01/sans-intern-verify/internal/adapter/postgres/intern"
	"github.com/Test-app01/sans-intern-verify/internal/adapter/postgres/testhelper"
	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

func TestRepo_Integration_CreateFindDelete(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := intern.New(pool)
	gen := codegen.New(pool)
	ctx := context.Background()

	certID, err := gen.Generate(ctx, "SM")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	verCode, err := gen.Generate(ctx, "SM")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	email := "jane-" + uuid.New().String()[:8] + "@example.com"
	created, err := repo.Create(ctx, &domain.Intern{
		FullName:         "Jane Doe",
		Email:            email,
		Role:             "Frontend Developer Intern",
		StartDate:        time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC),
		CertificateID:    certID,
		VerificationCode: verCode,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != domain.InternStatusActive {
		t.Errorf("status: got %q", created.Status)
	}

	for _, code := range []string{certID, verCode} {
		got, err := repo.FindByCode(ctx, code)
		if err != nil {
			t.Fatalf("find %s: %v", code, err)
		}
		if got.ID != created.ID {
			t.Errorf("find %s returned %s", code, got.ID)
		}
	}

	exists, err := repo.ExistsByEmail(ctx, strings.ToUpper(email), uuid.Nil)
	if err != nil || !exists {
		t.Fatalf("ExistsByEmail (case-insensitive) = %v, %v", exists, err)
	}

	_, err = repo.Create(ctx, &domain.Intern{
		FullName: "Jane Again", Email: strings.ToUpper(email), Role: "Intern",
		StartDate: created.StartDate, EndDate: created.EndDate,
		CertificateID: certID + "X", VerificationCode: verCode + "X",
	})
	var ce *domain.ConflictError
	if !errors.As(err, &ce) || ce.Field != "email" {
		t.Fatalf("expected email conflict, got %v", err)
	}

	list, err := repo.List(ctx, domain.InternFilter{Search: "jane doe"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	found := false
	for _, in := range list {
		found = found || in.ID == created.ID
	}
	if !found {
		t.Error("search should match the created record")
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestRepo_Integration_CompleteExpired(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := intern.New(pool)
	ctx := context.Background()

	seeded := testhelper.SeedIntern(t, pool)

	changed, err := repo.CompleteExpired(ctx, seeded.EndDate.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("complete expired: %v", err)
	}
	found := false
	for _, c := range changed {
		if c.ID == seeded.ID {
			found = c.Status == domain.InternStatusCompleted
		}
	}
	if !found {
		t.Fatalf("expected seeded record among completed, got %+v", changed)
	}

	got, err := repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.InternStatusCompleted {
		t.Errorf("status: got %q, want Completed", got.Status)
	}
}
