package bookmarks

import (
	"errors"
	"testing"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/storage"
)

func TestFlatten_GroupsExpandedInOrder(t *testing.T) {
	entries := []models.Bookmark{
		{Kind: models.BookmarkFile, Path: "a.md"},
		{Kind: models.BookmarkGroup, ID: "g1", Title: "Group", Children: []models.Bookmark{
			{Kind: models.BookmarkHeading, Path: "b.md", Subpath: "Intro"},
			{Kind: models.BookmarkGroup, ID: "g2", Children: []models.Bookmark{
				{Kind: models.BookmarkSearch, Query: "tag:#todo"},
			}},
		}},
		{Kind: models.BookmarkFolder, Path: "Projects"},
	}
	got := Flatten(entries)
	wantPaths := []string{"a.md", "b.md", "", "Projects"}
	if len(got) != 4 {
		t.Fatalf("Flatten = %v", got)
	}
	for i, b := range got {
		if b.Path != wantPaths[i] {
			t.Errorf("got[%d].Path = %q, want %q", i, b.Path, wantPaths[i])
		}
		if b.Kind == models.BookmarkGroup {
			t.Errorf("group node leaked into flat list: %v", b)
		}
	}
}

func TestFlatten_CycleProtection(t *testing.T) {
	// Build a cyclic structure by aliasing slices: g1 contains g2, g2
	// claims g1's ID again. The visited set must stop the recursion.
	inner := models.Bookmark{Kind: models.BookmarkGroup, ID: "g1", Children: []models.Bookmark{
		{Kind: models.BookmarkFile, Path: "loop.md"},
	}}
	entries := []models.Bookmark{
		{Kind: models.BookmarkGroup, ID: "g1", Children: []models.Bookmark{
			{Kind: models.BookmarkFile, Path: "once.md"},
			inner,
		}},
	}
	got := Flatten(entries)
	if len(got) != 1 || got[0].Path != "once.md" {
		t.Errorf("Flatten = %v, want only once.md", got)
	}
}

func TestLoad_MissingFileUnavailable(t *testing.T) {
	store, err := storage.NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Load(store, ""); !errors.Is(err, apperr.ErrUnavailable) {
		t.Errorf("Load on missing file = %v, want ErrUnavailable", err)
	}
}

func TestLoad_ParsesAndFlattens(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	data := []byte(`bookmarks:
  - kind: file
    path: Home.md
  - kind: group
    id: g1
    title: Reading
    children:
      - kind: file
        path: Books/list.md
`)
	if err := store.Write(DefaultPath, data); err != nil {
		t.Fatal(err)
	}
	got, err := Load(store, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 || got[0].Path != "Home.md" || got[1].Path != "Books/list.md" {
		t.Errorf("Load = %v", got)
	}
}
