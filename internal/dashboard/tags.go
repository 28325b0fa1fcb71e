package dashboard

import (
	"sort"
	"strings"

	"github.com/starford/dagaz/internal/models"
)

// CountTags aggregates tag frequencies across notes, skipping notes under
// any excluded path prefix. A tag counts once per note containing it,
// regardless of how many times it occurs there. The result is ordered by
// count descending, ties broken by first-seen order.
func CountTags(notes []models.Note, excludedPrefixes []string) []models.TagCount {
	counts := make(map[string]int)
	order := make(map[string]int)

	for _, n := range notes {
		if underAny(n.Path, excludedPrefixes) {
			continue
		}
		// Note.Tags is already deduplicated per note, but dedupe again so
		// snapshots from other sources keep the once-per-note contract.
		seen := make(map[string]struct{}, len(n.Tags))
		for _, t := range n.Tags {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			if _, known := counts[t]; !known {
				order[t] = len(order)
			}
			counts[t]++
		}
	}

	out := make([]models.TagCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, models.TagCount{Tag: tag, Count: count})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return order[out[i].Tag] < order[out[j].Tag]
	})
	return out
}

// underAny reports whether path falls under one of the given prefixes.
// A prefix matches whole path segments only: "Templates" covers
// "Templates/x.md" and the note "Templates.md"-style exact match, but not
// "TemplatesOld/x.md".
func underAny(path string, prefixes []string) bool {
	lower := strings.ToLower(path)
	for _, p := range prefixes {
		if p == "" {
			continue
		}
		p = strings.ToLower(strings.TrimSuffix(p, "/"))
		if lower == p || strings.HasPrefix(lower, p+"/") {
			return true
		}
	}
	return false
}
