package rest

import (
	"time"

	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

type internRequest struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// internResponse mirrors the stored record.
type internResponse struct {
	ID               string    `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	StartDate        string    `json:"start_date"`
	EndDate          string    `json:"end_date"`
	CertificateID    string    `json:"certificate_id"`
	VerificationCode string    `json:"verification_code"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// publicInternResponse is the verification view; it omits the email.
type publicInternResponse struct {
	FullName         string `json:"full_name"`
	Role             string `json:"role"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	CertificateID    string `json:"certificate_id"`
	VerificationCode string `json:"verification_code"`
	Status           string `json:"status"`
}

func toInternResponse(in *domain.Intern) internResponse {
	return internResponse{
		ID:               in.ID.String(),
		FullName:         in.FullName,
		Email:            in.Email,
		Role:             in.Role,
		StartDate:        in.StartDate.Format(domain.DateLayout),
		EndDate:          in.EndDate.Format(domain.DateLayout),
		CertificateID:    in.CertificateID,
		VerificationCode: in.VerificationCode,
		Status:           in.Status.String(),
		CreatedAt:        in.CreatedAt,
	}
}

func toInternResponses(interns []domain.Intern) []internResponse {
	out := make([]internResponse, 0, len(interns))
	for i := range interns {
		out = append(out, toInternResponse(&interns[i]))
	}
	return out
}

func toPublicIntern(in *domain.Intern) publicInternResponse {
	return publicInternResponse{
		FullName:         in.FullName,
		Role:             in.Role,
		StartDate:        in.StartDate.Format(domain.DateLayout),
		EndDate:          in.EndDate.Format(domain.DateLayout),
		CertificateID:    in.CertificateID,
		VerificationCode: in.VerificationCode,
		Status:           in.Status.String(),
	}
}
