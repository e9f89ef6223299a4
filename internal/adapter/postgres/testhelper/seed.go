package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedIntern inserts an Active intern with unique email and codes.
func SeedIntern(t *testing.T, pool *pgxpool.Pool) domain.Intern {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	in := domain.Intern{
		FullName:         "Test Intern " + suffix,
		Email:            "intern-" + suffix + "@example.com",
		Role:             "Backend Intern",
		StartDate:        time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC),
		CertificateID:    "TC" + suffix,
		VerificationCode: "TV" + suffix,
		Status:           domain.InternStatusActive,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO interns (full_name, email, role, start_date, end_date, certificate_id, verification_code, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		in.FullName, in.Email, in.Role, in.StartDate, in.EndDate, in.CertificateID, in.VerificationCode, string(in.Status),
	).Scan(&in.ID, &in.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedIntern insert: %v", err)
	}

	return in
}
