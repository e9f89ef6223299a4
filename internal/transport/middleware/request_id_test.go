package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Test-app01/sans-intern-verify/pkg/ctxutil"
)

func serveRequestID(t *testing.T, incoming string) (ctxID, headerID string) {
	t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/verify/SMVERI0001", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()

	RequestID()(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	return ctxID, rec.Header().Get(RequestIDHeader)
}

func TestRequestID_ReuseIncoming(t *testing.T) {
	for _, incoming := range []string{uuid.New().String(), "verify-page.7f3a_01"} {
		ctxID, headerID := serveRequestID(t, incoming)
		if ctxID != incoming || headerID != incoming {
			t.Errorf("incoming %q: context %q, header %q", incoming, ctxID, headerID)
		}
	}
}

func TestRequestID_ReplacesMissingOrMalformed(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "missing", incoming: ""},
		{name: "too long", incoming: strings.Repeat("a", maxRequestIDLen+1)},
		{name: "spaces", incoming: "id with spaces"},
		{name: "log injection", incoming: "abc\" level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctxID, headerID := serveRequestID(t, tt.incoming)
			if _, err := uuid.Parse(ctxID); err != nil {
				t.Errorf("expected generated UUID in context, got %q", ctxID)
			}
			if headerID != ctxID {
				t.Errorf("header %q does not match context %q", headerID, ctxID)
			}
		})
	}
}

func TestRequestID_ReadableAcrossOrigins(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	chained := Chain(RequestID(), CORS(corsConfig("https://verify.example.com", false)))(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/verify/SMVERI0001", nil)
	req.Header.Set("Origin", "https://verify.example.com")
	rec := httptest.NewRecorder()

	chained.ServeHTTP(rec, req)

	if rec.Header().Get(RequestIDHeader) == "" {
		t.Fatal("expected request id header")
	}
	if exposed := rec.Header().Get("Access-Control-Expose-Headers"); !strings.Contains(exposed, RequestIDHeader) {
		t.Errorf("request id header not exposed to browsers: %q", exposed)
	}
}
