package dashboard

import (
	"math"
	"strings"
	"time"

	"github.com/starford/dagaz/internal/models"
)

// FilterDailyCandidates selects notes whose frontmatter field key holds one
// of the allowed values. Matching is case-insensitive and supports both
// scalar and array-valued fields. Allowed values are expected lower-cased.
func FilterDailyCandidates(notes []models.Note, key string, allowed map[string]struct{}) []models.Note {
	var out []models.Note
	for _, n := range notes {
		if n.Frontmatter == nil {
			continue
		}
		if fieldMatches(n.Frontmatter[key], allowed) {
			out = append(out, n)
		}
	}
	return out
}

func fieldMatches(value any, allowed map[string]struct{}) bool {
	switch v := value.(type) {
	case string:
		_, ok := allowed[strings.ToLower(strings.TrimSpace(v))]
		return ok
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				if _, hit := allowed[strings.ToLower(strings.TrimSpace(s))]; hit {
					return true
				}
			}
		}
	}
	return false
}

// SelectDaily picks one candidate per calendar day, stable across
// invocations within that day. The index derives from the fractional part
// of sin(yyyymmdd)*10000 — a deliberately simple formula, not uniform and
// not cryptographic, kept so the selection is reproducible without
// persisted state. Changing the formula would change which note every
// vault sees on a given day, so it stays as is.
func SelectDaily(candidates []models.Note, date time.Time) *models.Note {
	if len(candidates) == 0 {
		return nil
	}
	seed := date.Year()*10000 + int(date.Month())*100 + date.Day()
	frac := math.Sin(float64(seed)) * 10000
	frac -= math.Floor(frac)
	idx := int(math.Floor(frac * float64(len(candidates))))
	// Clamp against floating-point edge cases at the boundary.
	if idx < 0 {
		idx = 0
	}
	if idx >= len(candidates) {
		idx = len(candidates) - 1
	}
	n := candidates[idx]
	return &n
}
