// Package query parses the small filter strings used by dashboard features
// (tag, folder-path, or keyword queries) into predicates over notes.
package query

import (
	"strings"

	"github.com/starford/dagaz/internal/models"
)

// Kind discriminates the query variants.
type Kind string

const (
	KindNone    Kind = "none"
	KindTag     Kind = "tag"
	KindFolder  Kind = "folder"
	KindKeyword Kind = "keyword"
)

// Spec is a parsed, immutable query. Matching is case-insensitive
// throughout; Value is stored already lower-cased.
type Spec struct {
	Kind  Kind
	Value string
}

// Parse turns a raw configuration string into a Spec. Detection order is
// fixed: leading # → tag, any / → folder prefix, otherwise keyword. A string
// containing both # and / is a tag query only when it starts with #; this
// precedence is documented behaviour and must not change silently.
func Parse(raw string) Spec {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "":
		return Spec{Kind: KindNone}
	case strings.HasPrefix(s, "#"):
		return Spec{Kind: KindTag, Value: s[1:]}
	case strings.Contains(s, "/"):
		if !strings.HasSuffix(s, "/") {
			s += "/"
		}
		return Spec{Kind: KindFolder, Value: s}
	default:
		return Spec{Kind: KindKeyword, Value: s}
	}
}

// Matches reports whether the note satisfies the query. A none-kind Spec
// matches every note.
func (q Spec) Matches(n models.Note) bool {
	switch q.Kind {
	case KindNone:
		return true
	case KindTag:
		return hasTag(n, q.Value)
	case KindFolder:
		return strings.HasPrefix(strings.ToLower(n.Path), q.Value)
	case KindKeyword:
		return strings.Contains(strings.ToLower(n.Path), q.Value)
	default:
		return false
	}
}

// hasTag checks the union of body tags and the frontmatter "tags" field.
// Note.Tags already carries both, normalised at parse time, but the
// frontmatter field is consulted again so that snapshots built from raw
// host metadata (tags not yet merged) still match.
func hasTag(n models.Note, tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	if n.Frontmatter == nil {
		return false
	}
	switch v := n.Frontmatter["tags"].(type) {
	case string:
		return normalizeTag(v) == tag
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && normalizeTag(s) == tag {
				return true
			}
		}
	}
	return false
}

func normalizeTag(s string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))
}
