package index

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/starford/dagaz/internal/models"
)

// NoteRow represents a row in the notes table.
type NoteRow struct {
	Path        string
	Title       string
	Checksum    string
	Tags        []string
	Frontmatter map[string]any
	ListItems   []models.ListItem
	ModifiedAt  time.Time
}

// FolderOf returns the immediate parent of a slash-separated note path,
// or models.RootFolder for notes at the vault root.
func FolderOf(p string) string {
	dir := path.Dir(p)
	if dir == "." || dir == "/" {
		return models.RootFolder
	}
	return dir
}

// BasenameOf returns the file name without the .md extension.
func BasenameOf(p string) string {
	return strings.TrimSuffix(path.Base(p), ".md")
}

// UpsertNote inserts or replaces a note and its list items within a transaction.
func (db *DB) UpsertNote(n NoteRow) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	tagsJSON, _ := json.Marshal(n.Tags)
	fmJSON, _ := json.Marshal(n.Frontmatter)

	_, err = tx.Exec(`
		INSERT INTO notes (path, folder, basename, title, checksum, tags, frontmatter, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			folder      = excluded.folder,
			basename    = excluded.basename,
			title       = excluded.title,
			checksum    = excluded.checksum,
			tags        = excluded.tags,
			frontmatter = excluded.frontmatter,
			modified_at = excluded.modified_at
	`, n.Path, FolderOf(n.Path), BasenameOf(n.Path), n.Title, n.Checksum,
		string(tagsJSON), string(fmJSON), n.ModifiedAt)
	if err != nil {
		return fmt.Errorf("index: upsert note: %w", err)
	}

	// Replace list items: delete old then bulk insert.
	_, _ = tx.Exec(`DELETE FROM list_items WHERE path = ?`, n.Path)
	if len(n.ListItems) > 0 {
		stmt, err := tx.Prepare(`INSERT OR IGNORE INTO list_items (path, line, marker) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("index: prepare list item insert: %w", err)
		}
		defer stmt.Close()
		for _, item := range n.ListItems {
			if _, err := stmt.Exec(n.Path, item.Line, item.Marker); err != nil {
				return fmt.Errorf("index: insert list item: %w", err)
			}
		}
	}

	return tx.Commit()
}

// DeleteNote removes a note and its list items.
func (db *DB) DeleteNote(path string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, _ = tx.Exec(`DELETE FROM list_items WHERE path = ?`, path)
	_, _ = tx.Exec(`DELETE FROM notes WHERE path = ?`, path)

	return tx.Commit()
}

// GetChecksum returns the stored checksum for a note, or empty string if not found.
func (db *DB) GetChecksum(path string) (string, error) {
	var cs string
	err := db.conn.QueryRow(`SELECT checksum FROM notes WHERE path = ?`, path).Scan(&cs)
	if err != nil {
		return "", nil // not found is fine
	}
	return cs, nil
}

// AllChecksums returns a path → checksum map for every indexed note.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT path, checksum FROM notes`)
	if err != nil {
		return nil, fmt.Errorf("index: all checksums: %w", err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var p, cs string
		if err := rows.Scan(&p, &cs); err != nil {
			return nil, err
		}
		out[p] = cs
	}
	return out, rows.Err()
}

// Snapshot returns every indexed note with its metadata and list items,
// ordered by path. The result is a fresh value on every call; the dashboard
// treats it as immutable for the duration of one render.
func (db *DB) Snapshot() ([]models.Note, error) {
	rows, err := db.conn.Query(`
		SELECT path, folder, basename, title, checksum, tags, frontmatter, modified_at
		FROM notes ORDER BY path
	`)
	if err != nil {
		return nil, fmt.Errorf("index: snapshot: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	byPath := make(map[string]int)
	for rows.Next() {
		var n models.Note
		var tagsJSON, fmJSON string
		if err := rows.Scan(&n.Path, &n.Folder, &n.Basename, &n.Title, &n.Checksum,
			&tagsJSON, &fmJSON, &n.ModifiedAt); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(tagsJSON), &n.Tags)
		_ = json.Unmarshal([]byte(fmJSON), &n.Frontmatter)
		byPath[n.Path] = len(notes)
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := db.conn.Query(`SELECT path, line, marker FROM list_items ORDER BY path, line`)
	if err != nil {
		return nil, fmt.Errorf("index: snapshot list items: %w", err)
	}
	defer items.Close()
	for items.Next() {
		var p string
		var li models.ListItem
		if err := items.Scan(&p, &li.Line, &li.Marker); err != nil {
			return nil, err
		}
		if i, ok := byPath[p]; ok {
			notes[i].ListItems = append(notes[i].ListItems, li)
		}
	}
	return notes, items.Err()
}
