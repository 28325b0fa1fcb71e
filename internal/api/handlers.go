package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/dashboard"
	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/query"
)

// Handler holds API route handlers.
type Handler struct {
	engine *dashboard.Engine
	src    dashboard.SnapshotSource
}

// NewHandler creates a new Handler.
func NewHandler(engine *dashboard.Engine, src dashboard.SnapshotSource) *Handler {
	return &Handler{engine: engine, src: src}
}

// GetDashboard handles GET /api/dashboard.
//
//	@Summary		Render the full dashboard
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{object}	dashboard.Dashboard
//	@Security		BearerAuth
//	@Router			/dashboard [get]
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.engine.Render(r.Context())
	if err != nil {
		slog.Error("dashboard render failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// GetSection handles GET /api/dashboard/{section}.
//
//	@Summary		Render a single dashboard section
//	@Tags			dashboard
//	@Produce		json
//	@Param			section	path		string	true	"Section ID"	Enums(recent, daily, groups, tags, stats, tasks, bookmarks)
//	@Success		200		{object}	dashboard.Section
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/dashboard/{section} [get]
func (h *Handler) GetSection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "section")
	sec, err := h.engine.RenderSection(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("unknown section"))
		} else {
			slog.Error("section render failed", slog.String("section", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

// ListNotes handles GET /api/notes.
//
//	@Summary		List indexed notes with optional query filtering
//	@Tags			notes
//	@Produce		json
//	@Param			q		query		string	false	"Filter query: #tag, folder/, or keyword"
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	NoteListResponse
//	@Security		BearerAuth
//	@Router			/notes [get]
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.src.Snapshot()
	if err != nil {
		slog.Error("list notes failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	q := r.URL.Query()
	spec := query.Parse(q.Get("q"))
	var matched []models.Note
	for _, n := range notes {
		if spec.Matches(n) {
			matched = append(matched, n)
		}
	}
	matched = dashboard.SortByRecency(matched)

	total := len(matched)
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	items := make([]NoteListItem, len(matched))
	for i, n := range matched {
		items[i] = NoteListItem{
			Path:       n.Path,
			Title:      n.Title,
			Folder:     n.Folder,
			Tags:       n.Tags,
			ModifiedAt: n.ModifiedAt,
		}
	}
	writeJSON(w, http.StatusOK, NoteListResponse{Notes: items, Total: total})
}

// GetGeneration handles GET /api/generation.
//
//	@Summary		Current render generation
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{object}	map[string]uint64
//	@Security		BearerAuth
//	@Router			/generation [get]
func (h *Handler) GetGeneration(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]uint64{"generation": h.engine.Generation()})
}
