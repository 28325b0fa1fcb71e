package index

import "github.com/starford/dagaz/internal/models"

// VaultIndex defines the interface for vault metadata access. Consumers
// should depend on this interface rather than the concrete *DB type to
// facilitate testing with mocks.
type VaultIndex interface {
	UpsertNote(n NoteRow) error
	DeleteNote(path string) error
	GetChecksum(path string) (string, error)
	AllChecksums() (map[string]string, error)
	Snapshot() ([]models.Note, error)
	Close() error
}

// Verify *DB satisfies VaultIndex at compile time.
var _ VaultIndex = (*DB)(nil)
