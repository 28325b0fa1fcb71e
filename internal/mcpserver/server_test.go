package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/dagaz/internal/dashboard"
	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/storage"
	"github.com/starford/dagaz/internal/testutil"
)

type sliceSource []models.Note

func (s sliceSource) Snapshot() ([]models.Note, error) {
	return append([]models.Note(nil), s...), nil
}

func testServer(t *testing.T) (*Server, storage.Provider) {
	t.Helper()

	_, store := testutil.TestVault(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	src := sliceSource{
		{Path: "Projects/roadmap.md", Folder: "Projects", Basename: "roadmap",
			Title: "Roadmap", Tags: []string{"project"}, ModifiedAt: base},
		{Path: "Journal/today.md", Folder: "Journal", Basename: "today",
			Title: "Today", Tags: []string{"journal"}, ModifiedAt: base.Add(time.Hour)},
	}

	cfg := dashboard.Config{
		Recent: dashboard.RecentConfig{Enabled: true, Limit: 8},
		Groups: dashboard.GroupsConfig{Enabled: true},
		Tags:   dashboard.TagsConfig{Enabled: true, Limit: 20},
		Stats:  dashboard.StatsConfig{Enabled: true},
		Tasks:  dashboard.TasksConfig{Enabled: true, Limit: 10},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := dashboard.New(cfg, src, store, logger)

	return New(engine, store), store
}

func toolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, r *mcp.CallToolResult) string {
	t.Helper()
	if len(r.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := r.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", r.Content[0])
	}
	return tc.Text
}

func TestGetDashboard(t *testing.T) {
	srv, _ := testServer(t)

	res, err := srv.getDashboard(context.Background(), toolRequest("get_dashboard", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("tool error: %s", resultText(t, res))
	}

	var d dashboard.Dashboard
	if err := json.Unmarshal([]byte(resultText(t, res)), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(d.Sections) != 7 {
		t.Errorf("sections = %d, want 7", len(d.Sections))
	}
}

func TestGetSection(t *testing.T) {
	srv, _ := testServer(t)

	res, err := srv.getSection(context.Background(),
		toolRequest("get_section", map[string]interface{}{"section": "tags"}))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("tool error: %s", resultText(t, res))
	}
	if !strings.Contains(resultText(t, res), `"tags"`) {
		t.Errorf("unexpected result: %s", resultText(t, res))
	}
}

func TestGetSection_Unknown(t *testing.T) {
	srv, _ := testServer(t)

	res, err := srv.getSection(context.Background(),
		toolRequest("get_section", map[string]interface{}{"section": "nope"}))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Error("unknown section should be a tool error")
	}
}

func TestTagCounts(t *testing.T) {
	srv, _ := testServer(t)

	res, err := srv.tagCounts(context.Background(), toolRequest("tag_counts", nil))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, "project") || !strings.Contains(text, "journal") {
		t.Errorf("tag counts missing tags: %s", text)
	}
}

func TestDailyNote_NotConfigured(t *testing.T) {
	srv, _ := testServer(t)

	res, err := srv.getDailyNote(context.Background(), toolRequest("get_daily_note", nil))
	if err != nil {
		t.Fatal(err)
	}
	if got := resultText(t, res); got != "daily: disabled" {
		t.Errorf("result = %q, want daily: disabled", got)
	}
}

func TestListBookmarks_Disabled(t *testing.T) {
	srv, _ := testServer(t)

	res, err := srv.listBookmarks(context.Background(), toolRequest("list_bookmarks", nil))
	if err != nil {
		t.Fatal(err)
	}
	if got := resultText(t, res); got != "bookmarks: disabled" {
		t.Errorf("result = %q, want bookmarks: disabled", got)
	}
}

func TestReadNote(t *testing.T) {
	srv, store := testServer(t)

	if err := store.Write("hello.md", []byte("# Hello\nWorld")); err != nil {
		t.Fatal(err)
	}

	res, err := srv.readNote(context.Background(),
		toolRequest("read_note", map[string]interface{}{"path": "hello.md"}))
	if err != nil {
		t.Fatal(err)
	}
	if got := resultText(t, res); !strings.Contains(got, "# Hello") {
		t.Errorf("content = %q", got)
	}
}

func TestReadNote_NotMarkdown(t *testing.T) {
	srv, _ := testServer(t)

	res, err := srv.readNote(context.Background(),
		toolRequest("read_note", map[string]interface{}{"path": "image.png"}))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Error("non-markdown path should be a tool error")
	}
}
