package rest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Test-app01/sans-intern-verify/internal/certificate"
	"github.com/Test-app01/sans-intern-verify/internal/domain"
	"github.com/Test-app01/sans-intern-verify/internal/service/intern"
)

// internService defines the directory operations needed by InternHandler.
type internService interface {
	Issue(ctx context.Context, input intern.IssueInput) (*domain.Intern, error)
	List(ctx context.Context, f domain.InternFilter) ([]domain.Intern, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Intern, error)
	Edit(ctx context.Context, id uuid.UUID, input intern.EditInput) (*domain.Intern, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, status domain.InternStatus) (*domain.Intern, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Export(ctx context.Context, f domain.InternFilter, w io.Writer) (int, error)
}

type certificateRenderer interface {
	Render(ctx context.Context, d certificate.Data) (*certificate.Document, error)
}

type shareLinker interface {
	ShareURL(verificationCode string) string
}

// InternHandler serves the admin directory endpoints.
type InternHandler struct {
	svc      internService
	renderer certificateRenderer
	links    shareLinker
	log      *slog.Logger
	now      func() time.Time
}

// NewInternHandler creates an InternHandler.
func NewInternHandler(svc internService, renderer certificateRenderer, links shareLinker, logger *slog.Logger) *InternHandler {
	return &InternHandler{
		svc:      svc,
		renderer: renderer,
		links:    links,
		log:      logger.With("handler", "intern"),
		now:      time.Now,
	}
}

type internEnvelope struct {
	Success bool           `json:"success"`
	Intern  internResponse `json:"intern"`
}

type internListResponse struct {
	Interns []internResponse `json:"interns"`
}

type internGetResponse struct {
	Intern internResponse `json:"intern"`
}

type shareResponse struct {
	URL string `json:"url"`
}

// Create handles POST /api/interns.
func (h *InternHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req internRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.svc.Issue(r.Context(), intern.IssueInput(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, internEnvelope{Success: true, Intern: toInternResponse(created)})
}

// List handles GET /api/interns?search=&status=.
func (h *InternHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	interns, err := h.svc.List(r.Context(), f)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, internListResponse{Interns: toInternResponses(interns)})
}

// Export handles GET /api/interns/export?search=&status=.
func (h *InternHandler) Export(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if _, err := h.svc.Export(r.Context(), f, &buf); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment(intern.ExportFilename(h.now())))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}

// Get handles GET /api/interns/{id}.
func (h *InternHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	in, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, internGetResponse{Intern: toInternResponse(in)})
}

// Update handles PUT /api/interns/{id}.
func (h *InternHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req internRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.svc.Edit(r.Context(), id, intern.EditInput(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, internEnvelope{Success: true, Intern: toInternResponse(updated)})
}

// ChangeStatus handles PATCH /api/interns/{id}/status.
func (h *InternHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Status == "" {
		writeError(w, http.StatusBadRequest, intern.MsgInvalidStatus)
		return
	}

	updated, err := h.svc.ChangeStatus(r.Context(), id, domain.InternStatus(req.Status))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, internEnvelope{Success: true, Intern: toInternResponse(updated)})
}

// Delete handles DELETE /api/interns/{id}.
func (h *InternHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Certificate handles GET /api/interns/{id}/certificate.
func (h *InternHandler) Certificate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	in, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	doc, err := h.renderer.Render(r.Context(), certificate.DataFromIntern(in))
	if err != nil {
		h.log.ErrorContext(r.Context(), "render certificate",
			slog.String("intern_id", id.String()),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, msgRenderFailed)
		return
	}

	writePDF(w, doc)
}

// Share handles GET /api/interns/{id}/share.
func (h *InternHandler) Share(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	in, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, shareResponse{URL: h.links.ShareURL(in.VerificationCode)})
}

func (h *InternHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, intern.ErrCodeGeneration) {
		h.log.ErrorContext(r.Context(), "generate codes", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to generate unique codes")
		return
	}
	handleError(h.log, w, r, err)
}

func (h *InternHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid intern id")
		return uuid.Nil, false
	}
	return id, true
}

// parseFilter reads search and status query parameters. An empty or "all"
// status means no status filter.
func parseFilter(r *http.Request) (domain.InternFilter, error) {
	q := r.URL.Query()
	f := domain.InternFilter{Search: q.Get("search")}

	raw := strings.TrimSpace(q.Get("status"))
	if raw == "" || strings.EqualFold(raw, "all") {
		return f, nil
	}
	st, err := domain.ParseInternStatus(raw)
	if err != nil {
		return f, domain.NewValidationError("status", intern.MsgInvalidStatus)
	}
	f.Status = &st
	return f, nil
}

const msgRenderFailed = "Failed to generate certificate"

func attachment(filename string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
}

func writePDF(w http.ResponseWriter, doc *certificate.Document) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", attachment(doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.PDF)))
	w.WriteHeader(http.StatusOK)
	w.Write(doc.PDF) //nolint:errcheck
}
