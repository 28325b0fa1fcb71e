package dashboard

import (
	"sort"

	"golang.org/x/text/collate"

	"github.com/starford/dagaz/internal/models"
)

// SortByRecency returns a copy of notes ordered by modification time,
// newest first. The sort is stable: equal timestamps keep their original
// relative order.
func SortByRecency(notes []models.Note) []models.Note {
	out := make([]models.Note, len(notes))
	copy(out, notes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ModifiedAt.After(out[j].ModifiedAt)
	})
	return out
}

// SortByName returns a copy of notes ordered by basename ascending using
// the given collator. A nil collator falls back to byte order.
func SortByName(notes []models.Note, c *collate.Collator) []models.Note {
	out := make([]models.Note, len(notes))
	copy(out, notes)
	sort.SliceStable(out, func(i, j int) bool {
		return less(c, out[i].Basename, out[j].Basename)
	})
	return out
}

// less compares two strings with the collator when available.
func less(c *collate.Collator, a, b string) bool {
	if c != nil {
		return c.CompareString(a, b) < 0
	}
	return a < b
}

// Paginate wraps notes in a DisplayList. initialCount is assumed already
// clamped to >= 1 by configuration normalisation; when the list fits, the
// initial count collapses to the total so presentation renders no overflow
// affordance.
func Paginate(notes []models.Note, initialCount int) models.DisplayList {
	total := len(notes)
	initial := initialCount
	if initial > total {
		initial = total
	}
	return models.DisplayList{
		Items:        notes,
		InitialCount: initial,
		TotalCount:   total,
	}
}
