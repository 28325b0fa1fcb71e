// Package bookmarks loads the vault bookmark file and flattens its nested
// group tree into a display-ready list.
package bookmarks

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/storage"
)

// DefaultPath is the bookmark file location relative to the vault root.
const DefaultPath = ".dagaz/bookmarks.yml"

type bookmarkFile struct {
	Bookmarks []models.Bookmark `yaml:"bookmarks"`
}

// Load reads the bookmark file from the vault and returns the flattened
// entry list. A missing file maps to apperr.ErrUnavailable so callers can
// render an "unavailable" section instead of failing.
func Load(store storage.Provider, path string) ([]models.Bookmark, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrUnavailable
		}
		return nil, fmt.Errorf("bookmarks: read %s: %w", path, err)
	}
	var f bookmarkFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("bookmarks: parse %s: %w", path, err)
	}
	return Flatten(f.Bookmarks), nil
}

// Flatten expands group entries depth-first, preserving document order.
// Group nodes themselves are not emitted, only their leaves. A visited set
// over group identifiers guards against cycles in malformed data; groups
// without an ID are always descended into (they cannot form a YAML cycle).
func Flatten(entries []models.Bookmark) []models.Bookmark {
	out := make([]models.Bookmark, 0, len(entries))
	visited := make(map[string]struct{})
	var walk func(items []models.Bookmark)
	walk = func(items []models.Bookmark) {
		for _, b := range items {
			if b.Kind != models.BookmarkGroup {
				leaf := b
				leaf.Children = nil
				out = append(out, leaf)
				continue
			}
			if b.ID != "" {
				if _, seen := visited[b.ID]; seen {
					continue
				}
				visited[b.ID] = struct{}{}
			}
			walk(b.Children)
		}
	}
	walk(entries)
	return out
}
