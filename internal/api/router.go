package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starford/dagaz/internal/dashboard"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(engine *dashboard.Engine, src dashboard.SnapshotSource, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(engine, src)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Dashboard.
	r.Get("/dashboard", h.GetDashboard)
	r.Get("/dashboard/{section}", h.GetSection)
	r.Get("/generation", h.GetGeneration)

	// Note listing.
	r.Get("/notes", h.ListNotes)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
