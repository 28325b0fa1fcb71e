// Package storage defines the vault file-system abstraction.
package storage

import "github.com/starford/dagaz/internal/models"

// Provider is the interface for vault file operations. The dashboard core
// only ever reads; Write exists for tooling and test fixtures.
type Provider interface {
	// List returns metadata for every .md file under dir (relative to vault root).
	List(dir string) ([]models.NoteMetadata, error)
	// Read returns the raw bytes of the file at path (relative to vault root).
	Read(path string) ([]byte, error)
	// ReadLine returns the 0-based physical line of the file at path.
	ReadLine(path string, line int) (string, error)
	// Write atomically writes content to path (relative to vault root).
	Write(path string, content []byte) error
}
