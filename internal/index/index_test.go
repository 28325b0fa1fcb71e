package index

import (
	"os"
	"testing"
	"time"

	"github.com/starford/dagaz/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "dagaz-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM notes`).Scan(&count); err != nil {
		t.Fatalf("notes table missing: %v", err)
	}
	if err := db.conn.QueryRow(`SELECT count(*) FROM list_items`).Scan(&count); err != nil {
		t.Fatalf("list_items table missing: %v", err)
	}
}

func TestFolderOf(t *testing.T) {
	tests := []struct{ path, want string }{
		{"note.md", models.RootFolder},
		{"Projects/plan.md", "Projects"},
		{"Projects/Alpha/plan.md", "Projects/Alpha"},
	}
	for _, tt := range tests {
		if got := FolderOf(tt.path); got != tt.want {
			t.Errorf("FolderOf(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestBasenameOf(t *testing.T) {
	if got := BasenameOf("Projects/Alpha/plan.md"); got != "plan" {
		t.Errorf("BasenameOf = %q, want plan", got)
	}
}

func TestUpsertAndSnapshot(t *testing.T) {
	db := testDB(t)
	mtime := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	row := NoteRow{
		Path:        "Projects/hello.md",
		Title:       "Hello World",
		Checksum:    "abc123",
		Tags:        []string{"go", "test"},
		Frontmatter: map[string]any{"form": "haiku"},
		ListItems: []models.ListItem{
			{Line: 3, Marker: models.MarkerOpen},
			{Line: 4, Marker: models.MarkerDone},
		},
		ModifiedAt: mtime,
	}
	if err := db.UpsertNote(row); err != nil {
		t.Fatalf("UpsertNote: %v", err)
	}

	notes, err := db.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("len(notes) = %d, want 1", len(notes))
	}
	n := notes[0]
	if n.Path != "Projects/hello.md" || n.Folder != "Projects" || n.Basename != "hello" {
		t.Errorf("note identity = %q / %q / %q", n.Path, n.Folder, n.Basename)
	}
	if len(n.Tags) != 2 || n.Tags[0] != "go" {
		t.Errorf("tags = %v", n.Tags)
	}
	if n.Frontmatter["form"] != "haiku" {
		t.Errorf("frontmatter = %v", n.Frontmatter)
	}
	if len(n.ListItems) != 2 || n.ListItems[0].Marker != models.MarkerOpen {
		t.Errorf("list items = %v", n.ListItems)
	}
	if !n.ModifiedAt.Equal(mtime) {
		t.Errorf("mtime = %v, want %v", n.ModifiedAt, mtime)
	}
}

func TestUpsertReplacesListItems(t *testing.T) {
	db := testDB(t)
	row := NoteRow{
		Path:      "a.md",
		Checksum:  "1",
		ListItems: []models.ListItem{{Line: 0, Marker: models.MarkerOpen}},
	}
	if err := db.UpsertNote(row); err != nil {
		t.Fatal(err)
	}
	row.Checksum = "2"
	row.ListItems = []models.ListItem{{Line: 5, Marker: models.MarkerInProgress}}
	if err := db.UpsertNote(row); err != nil {
		t.Fatal(err)
	}
	notes, err := db.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(notes[0].ListItems) != 1 || notes[0].ListItems[0].Line != 5 {
		t.Errorf("list items = %v, want single line-5 item", notes[0].ListItems)
	}
}

func TestDeleteNote(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertNote(NoteRow{Path: "gone.md", Checksum: "1",
		ListItems: []models.ListItem{{Line: 0, Marker: models.MarkerOpen}}})
	if err := db.DeleteNote("gone.md"); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	notes, _ := db.Snapshot()
	if len(notes) != 0 {
		t.Errorf("snapshot after delete = %v", notes)
	}
	var count int
	_ = db.conn.QueryRow(`SELECT count(*) FROM list_items`).Scan(&count)
	if count != 0 {
		t.Errorf("list_items not cleaned up: %d rows", count)
	}
}

func TestAllChecksums(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertNote(NoteRow{Path: "a.md", Checksum: "ca"})
	_ = db.UpsertNote(NoteRow{Path: "b.md", Checksum: "cb"})
	cs, err := db.AllChecksums()
	if err != nil {
		t.Fatal(err)
	}
	if cs["a.md"] != "ca" || cs["b.md"] != "cb" {
		t.Errorf("checksums = %v", cs)
	}
}
