package api

import (
	"time"
)

// NoteListItem is a lightweight item in a note list response.
type NoteListItem struct {
	Path       string   `json:"path" example:"Projects/roadmap.md" validate:"required"`
	Title      string   `json:"title" example:"Roadmap"`
	Folder     string   `json:"folder" example:"Projects" validate:"required"`
	Tags       []string `json:"tags" example:"project,active"`
	ModifiedAt time.Time `json:"modified_at"`
}

// NoteListResponse wraps paginated note listings.
type NoteListResponse struct {
	Notes []NoteListItem `json:"notes" validate:"required"`
	Total int            `json:"total" example:"42" validate:"required"`
}
