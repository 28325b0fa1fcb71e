// Package apperr defines sentinel errors shared across feature boundaries.
package apperr

import "errors"

var (
	// ErrNotFound signals a missing note or resource.
	ErrNotFound = errors.New("not found")
	// ErrNotConfigured signals a feature whose required configuration
	// (query string, frontmatter key, allowed values) is empty.
	ErrNotConfigured = errors.New("not configured")
	// ErrUnavailable signals a host capability that is absent, e.g. a
	// missing bookmark file.
	ErrUnavailable = errors.New("unavailable")
)
