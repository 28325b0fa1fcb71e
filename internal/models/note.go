// Package models defines the domain types for Dagaz.
package models

import "time"

// RootFolder is the sentinel folder value for notes at the vault root.
const RootFolder = "root"

// Task markers recognised on Markdown list items.
const (
	MarkerOpen       = "open"        // - [ ]
	MarkerInProgress = "in-progress" // - [/]
	MarkerDone       = "done"        // - [x] or any other checked state
	MarkerNone       = "none"        // plain list item without a checkbox
)

// ListItem is one Markdown list entry within a note. Line is 0-based.
type ListItem struct {
	Line   int    `json:"line"`
	Marker string `json:"marker"`
}

// Note is the read-only metadata snapshot of one vault document.
// The dashboard core never mutates a Note; every render computes fresh
// derived values from a slice of these.
type Note struct {
	Path        string         `json:"path"`
	Basename    string         `json:"basename"`
	Folder      string         `json:"folder"` // immediate parent, RootFolder at vault root
	Title       string         `json:"title,omitempty"`
	Checksum    string         `json:"checksum"`
	Frontmatter map[string]any `json:"frontmatter,omitempty"`
	Tags        []string       `json:"tags,omitempty"` // lower-cased, deduplicated, no leading #
	ListItems   []ListItem     `json:"list_items,omitempty"`
	ModifiedAt  time.Time      `json:"modified_at"`
}

// NoteMetadata is a lightweight representation returned by storage listing.
type NoteMetadata struct {
	Path       string    `json:"path"`
	Checksum   string    `json:"checksum"`
	ModifiedAt time.Time `json:"modified_at"`
}

// FolderGroup is one entry of the two-level folder grid: a top-level folder,
// its direct notes, and one recursive note list per immediate subfolder.
// Rebuilt from the Note snapshot on every render.
type FolderGroup struct {
	FolderPath  string            `json:"folder_path"`
	DirectNotes []Note            `json:"direct_notes"`
	Subgroups   map[string][]Note `json:"subgroups,omitempty"`
	// SubgroupOrder lists Subgroups keys in display order.
	SubgroupOrder []string `json:"subgroup_order,omitempty"`
	AllRecursive  []Note   `json:"all_recursive"`
}

// DisplayList is a paginated note list: Items holds every match, the first
// InitialCount entries are initially visible, the rest sit behind an
// overflow affordance owned by the presentation layer.
type DisplayList struct {
	Items        []Note `json:"items"`
	InitialCount int    `json:"initial_count"`
	TotalCount   int    `json:"total_count"`
}

// TagCount is one aggregated tag with the number of distinct notes
// containing it (one increment per note, not per occurrence).
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Task is one open or in-progress list item extracted for display.
type Task struct {
	NotePath string `json:"note_path"`
	Line     int    `json:"line"`
	Text     string `json:"text"`
	Status   string `json:"status"`
	// ModifiedAt mirrors the owning note's mtime, the primary sort key.
	ModifiedAt time.Time `json:"modified_at"`
}

// VaultStats holds the note and word counters.
type VaultStats struct {
	NoteCount int `json:"note_count"`
	WordCount int `json:"word_count"`
}

// Bookmark kinds as stored in the vault bookmark file.
const (
	BookmarkFile    = "file"
	BookmarkFolder  = "folder"
	BookmarkHeading = "heading"
	BookmarkBlock   = "block"
	BookmarkSearch  = "search"
	BookmarkGroup   = "group"
)

// Bookmark is one entry of the (possibly nested) bookmark tree.
type Bookmark struct {
	ID       string     `json:"id,omitempty" yaml:"id"`
	Kind     string     `json:"kind" yaml:"kind"`
	Title    string     `json:"title,omitempty" yaml:"title"`
	Path     string     `json:"path,omitempty" yaml:"path"`
	Subpath  string     `json:"subpath,omitempty" yaml:"subpath"` // heading or block anchor
	Query    string     `json:"query,omitempty" yaml:"query"`     // search bookmarks
	Children []Bookmark `json:"children,omitempty" yaml:"children"`
}
