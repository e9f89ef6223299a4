package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Test-app01/sans-intern-verify/internal/certificate"
	"github.com/Test-app01/sans-intern-verify/internal/domain"
	"github.com/Test-app01/sans-intern-verify/internal/service/verification"
)

// verificationService defines the public lookup operations.
type verificationService interface {
	Verify(ctx context.Context, code string) (*verification.Result, error)
	Lookup(ctx context.Context, code string) (*domain.Intern, error)
}

// VerifyHandler serves the public verification endpoints.
type VerifyHandler struct {
	svc      verificationService
	renderer certificateRenderer
	log      *slog.Logger
}

// NewVerifyHandler creates a VerifyHandler.
func NewVerifyHandler(svc verificationService, renderer certificateRenderer, logger *slog.Logger) *VerifyHandler {
	return &VerifyHandler{svc: svc, renderer: renderer, log: logger.With("handler", "verify")}
}

type verifyFoundResponse struct {
	Found    bool                 `json:"found"`
	Verified bool                 `json:"verified"`
	Intern   publicInternResponse `json:"intern"`
	ShareURL string               `json:"shareUrl"`
}

type verifyNotFoundResponse struct {
	Found bool   `json:"found"`
	Code  string `json:"code"`
}

// Verify handles GET /api/verify/{code}. An unknown code is a 404 that
// echoes the input.
func (h *VerifyHandler) Verify(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	res, err := h.svc.Verify(r.Context(), code)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if !res.Found {
		writeJSON(w, http.StatusNotFound, verifyNotFoundResponse{Found: false, Code: res.Code})
		return
	}

	writeJSON(w, http.StatusOK, verifyFoundResponse{
		Found:    true,
		Verified: res.Verified,
		Intern:   toPublicIntern(res.Intern),
		ShareURL: res.ShareURL,
	})
}

// Certificate handles GET /api/verify/{code}/certificate. Revoked
// certificates are gone.
func (h *VerifyHandler) Certificate(w http.ResponseWriter, r *http.Request) {
	in, err := h.svc.Lookup(r.Context(), r.PathValue("code"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Certificate not found")
			return
		}
		handleError(h.log, w, r, err)
		return
	}
	if in.IsRevoked() {
		writeError(w, http.StatusGone, "Certificate has been revoked")
		return
	}

	doc, err := h.renderer.Render(r.Context(), certificate.DataFromIntern(in))
	if err != nil {
		h.log.ErrorContext(r.Context(), "render certificate",
			slog.String("certificate_id", in.CertificateID),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, msgRenderFailed)
		return
	}

	writePDF(w, doc)
}
