package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/starford/dagaz/internal/dashboard"
	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/testutil"
)

type sliceSource []models.Note

func (s sliceSource) Snapshot() ([]models.Note, error) {
	return append([]models.Note(nil), s...), nil
}

func testNotes() []models.Note {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []models.Note{
		{Path: "Projects/roadmap.md", Folder: "Projects", Basename: "roadmap",
			Title: "Roadmap", Tags: []string{"project"}, ModifiedAt: base.Add(2 * time.Hour)},
		{Path: "Projects/ideas.md", Folder: "Projects", Basename: "ideas",
			Title: "Ideas", Tags: []string{"project", "draft"}, ModifiedAt: base.Add(time.Hour)},
		{Path: "Journal/today.md", Folder: "Journal", Basename: "today",
			Title: "Today", ModifiedAt: base},
	}
}

// testEnv builds a snapshot-backed engine and router over a temp vault.
// authToken empty means disabled mode.
func testEnv(t *testing.T, authToken string) http.Handler {
	t.Helper()

	_, store := testutil.TestVault(t)

	cfg := dashboard.Config{
		Recent: dashboard.RecentConfig{Enabled: true, Limit: 8},
		Groups: dashboard.GroupsConfig{Enabled: true},
		Tags:   dashboard.TagsConfig{Enabled: true, Limit: 20},
		Stats:  dashboard.StatsConfig{Enabled: true},
		Tasks:  dashboard.TasksConfig{Enabled: true, Limit: 10},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	src := sliceSource(testNotes())
	engine := dashboard.New(cfg, src, store, logger)

	return NewRouter(engine, src, authToken != "", authToken, nil)
}

func get(t *testing.T, router http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetDashboard(t *testing.T) {
	router := testEnv(t, "")

	w := get(t, router, "/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var d dashboard.Dashboard
	if err := json.Unmarshal(w.Body.Bytes(), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(d.Sections) != 7 {
		t.Errorf("sections = %d, want 7", len(d.Sections))
	}
	byID := map[string]dashboard.Section{}
	for _, s := range d.Sections {
		byID[s.ID] = s
	}
	if byID[dashboard.SectionRecent].Status != dashboard.StatusOK {
		t.Errorf("recent status = %q", byID[dashboard.SectionRecent].Status)
	}
	if byID[dashboard.SectionDaily].Status != dashboard.StatusDisabled {
		t.Errorf("daily status = %q", byID[dashboard.SectionDaily].Status)
	}
}

func TestGetSection(t *testing.T) {
	router := testEnv(t, "")

	w := get(t, router, "/dashboard/tags", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var sec dashboard.Section
	if err := json.Unmarshal(w.Body.Bytes(), &sec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sec.ID != dashboard.SectionTags || sec.Status != dashboard.StatusOK {
		t.Errorf("section = %+v", sec)
	}
}

func TestGetSection_Unknown(t *testing.T) {
	router := testEnv(t, "")

	w := get(t, router, "/dashboard/nope", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestListNotes_FilterAndPagination(t *testing.T) {
	router := testEnv(t, "")

	w := get(t, router, "/notes?q=%23project", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp NoteListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Total != 2 || len(resp.Notes) != 2 {
		t.Fatalf("total = %d, notes = %d, want 2", resp.Total, len(resp.Notes))
	}
	// Recency order: roadmap is newer than ideas.
	if resp.Notes[0].Path != "Projects/roadmap.md" {
		t.Errorf("first = %q", resp.Notes[0].Path)
	}

	w = get(t, router, "/notes?limit=1&offset=1", "")
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Total != 3 || len(resp.Notes) != 1 {
		t.Errorf("total = %d, page = %d, want 3/1", resp.Total, len(resp.Notes))
	}
}

func TestListNotes_OffsetBeyondEnd(t *testing.T) {
	router := testEnv(t, "")

	w := get(t, router, "/notes?offset=99", "")
	var resp NoteListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Notes) != 0 || resp.Total != 3 {
		t.Errorf("notes = %d, total = %d", len(resp.Notes), resp.Total)
	}
}

func TestGetGeneration(t *testing.T) {
	router := testEnv(t, "")

	w := get(t, router, "/generation", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp map[string]uint64
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := resp["generation"]; !ok {
		t.Errorf("missing generation: %v", resp)
	}
}

func TestAuth_TokenMode(t *testing.T) {
	router := testEnv(t, "secret")

	w := get(t, router, "/dashboard", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token status = %d, want 401", w.Code)
	}

	w = get(t, router, "/dashboard", "wrong")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong token status = %d, want 401", w.Code)
	}

	w = get(t, router, "/dashboard", "secret")
	if w.Code != http.StatusOK {
		t.Errorf("valid token status = %d, want 200", w.Code)
	}
}
