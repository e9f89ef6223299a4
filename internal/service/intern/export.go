package intern

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

// ExportHeader is the header row of the CSV export.
var ExportHeader = []string{
	"Name", "Email", "Role", "Start Date", "End Date",
	"Certificate ID", "Verification Code", "Status", "Created Date",
}

// ExportFilename returns the download name of an export made at now.
func ExportFilename(now time.Time) string {
	return "interns_export_" + now.UTC().Format(domain.DateLayout) + ".csv"
}

// Export writes the filtered records as CSV to w and returns the row count.
func (s *Service) Export(ctx context.Context, f domain.InternFilter, w io.Writer) (int, error) {
	interns, err := s.List(ctx, f)
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}
	for i := range interns {
		if err := cw.Write(exportRow(&interns[i])); err != nil {
			return 0, fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flush csv: %w", err)
	}

	s.log.InfoContext(ctx, "interns exported", slog.Int("rows", len(interns)))

	return len(interns), nil
}

func exportRow(in *domain.Intern) []string {
	return []string{
		in.FullName,
		in.Email,
		in.Role,
		in.StartDate.Format(domain.DateLayout),
		in.EndDate.Format(domain.DateLayout),
		in.CertificateID,
		in.VerificationCode,
		in.Status.String(),
		in.CreatedAt.UTC().Format(domain.DateLayout),
	}
}
