package dashboard

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/starford/dagaz/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestCountNotesAndWords_ExcludedTopFolders(t *testing.T) {
	store := memStore{
		"Templates/x.md": "one two three",
		"Notes/y.md":     "four five",
	}
	notes := []models.Note{
		{Path: "Templates/x.md"},
		{Path: "Notes/y.md"},
	}
	stats, err := CountNotesAndWords(context.Background(), notes, []string{"templates"}, nil, store, testLogger())
	if err != nil {
		t.Fatalf("CountNotesAndWords: %v", err)
	}
	if stats.NoteCount != 1 {
		t.Errorf("noteCount = %d, want 1", stats.NoteCount)
	}
	if stats.WordCount != 2 {
		t.Errorf("wordCount = %d, want 2", stats.WordCount)
	}
}

func TestCountNotesAndWords_FrontmatterNotCounted(t *testing.T) {
	store := memStore{
		"a.md": "---\ntitle: Ignored Words Here\n---\nalpha beta gamma\n",
	}
	notes := []models.Note{{Path: "a.md"}}
	stats, err := CountNotesAndWords(context.Background(), notes, nil, nil, store, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if stats.WordCount != 3 {
		t.Errorf("wordCount = %d, want 3", stats.WordCount)
	}
}

func TestCountNotesAndWords_WordcountExclusionStillCountsNote(t *testing.T) {
	store := memStore{
		"Journal/long.md": "many words in here indeed",
		"Notes/y.md":      "two words",
	}
	notes := []models.Note{
		{Path: "Journal/long.md"},
		{Path: "Notes/y.md"},
	}
	stats, err := CountNotesAndWords(context.Background(), notes, nil, []string{"journal"}, store, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if stats.NoteCount != 2 {
		t.Errorf("noteCount = %d, want 2", stats.NoteCount)
	}
	if stats.WordCount != 2 {
		t.Errorf("wordCount = %d, want 2", stats.WordCount)
	}
}

func TestCountNotesAndWords_ReadFailureContributesZero(t *testing.T) {
	store := memStore{
		"ok.md": "one two",
	}
	notes := []models.Note{
		{Path: "ok.md"},
		{Path: "missing.md"},
	}
	stats, err := CountNotesAndWords(context.Background(), notes, nil, nil, store, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if stats.NoteCount != 2 {
		t.Errorf("noteCount = %d, want 2", stats.NoteCount)
	}
	if stats.WordCount != 2 {
		t.Errorf("wordCount = %d, want 2 (failed read contributes zero)", stats.WordCount)
	}
}
