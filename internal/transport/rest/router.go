package rest

import (
	"net/http"

	"github.com/Test-app01/sans-intern-verify/internal/transport/middleware"
)

// RouterDeps holds everything the HTTP surface needs.
type RouterDeps struct {
	Auth    *AuthHandler
	Interns *InternHandler
	Verify  *VerifyHandler
	Health  *HealthHandler

	// Global wraps the whole mux (recovery, request ID, logging, CORS, auth).
	Global middleware.Middleware
	// Public guards the unauthenticated endpoints, typically a rate limiter.
	Public middleware.Middleware
}

// NewRouter registers every route on a ServeMux.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	public := d.Public
	if public == nil {
		public = middleware.Chain()
	}
	admin := func(h http.HandlerFunc) http.Handler { return middleware.RequireAdmin(h) }
	limited := func(h http.HandlerFunc) http.Handler { return public(h) }

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	mux.Handle("POST /api/auth/login", limited(d.Auth.Login))

	mux.Handle("POST /api/interns", admin(d.Interns.Create))
	mux.Handle("GET /api/interns", admin(d.Interns.List))
	mux.Handle("GET /api/interns/export", admin(d.Interns.Export))
	mux.Handle("GET /api/interns/{id}", admin(d.Interns.Get))
	mux.Handle("PUT /api/interns/{id}", admin(d.Interns.Update))
	mux.Handle("DELETE /api/interns/{id}", admin(d.Interns.Delete))
	mux.Handle("PATCH /api/interns/{id}/status", admin(d.Interns.ChangeStatus))
	mux.Handle("GET /api/interns/{id}/certificate", admin(d.Interns.Certificate))
	mux.Handle("GET /api/interns/{id}/share", admin(d.Interns.Share))

	mux.Handle("GET /api/verify/{code}", limited(d.Verify.Verify))
	mux.Handle("GET /api/verify/{code}/certificate", limited(d.Verify.Certificate))

	if d.Global == nil {
		return mux
	}
	return d.Global(mux)
}
