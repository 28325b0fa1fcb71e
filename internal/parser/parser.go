// Package parser extracts frontmatter, tags, and task list items from
// Markdown content.
package parser

import (
	"bytes"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/starford/dagaz/internal/models"
)

var (
	tagRe = regexp.MustCompile(`(?:^|\s)#([A-Za-z][A-Za-z0-9_/-]*)`)
	// listItemRe matches a bullet or ordered-list prefix with an optional
	// checkbox group: "- [ ] text", "* [/] text", "3. text".
	listItemRe = regexp.MustCompile(`^\s*(?:[-*+]|\d+[.)])\s+(?:\[(.)\]\s)?`)
	// frontmatterRe matches the shortest leading delimiter-bounded block.
	frontmatterRe = regexp.MustCompile(`(?s)\A---\r?\n.*?\r?\n---\r?\n?`)
)

// Result holds the output of parsing a Markdown file.
type Result struct {
	Frontmatter map[string]any
	Body        string
	Tags        []string
	Title       string
	ListItems   []models.ListItem
}

// Parse extracts frontmatter, body, tags, and list items from raw Markdown
// bytes. Tags are lower-cased and deduplicated. List item line numbers are
// 0-based positions in the raw file, not in the frontmatter-stripped body.
func Parse(data []byte) (*Result, error) {
	fm, body, err := splitFrontmatter(data)
	if err != nil {
		return nil, err
	}

	return &Result{
		Frontmatter: fm,
		Body:        body,
		Tags:        extractTags(body, fm),
		Title:       deriveTitle(fm, body),
		ListItems:   extractListItems(string(data)),
	}, nil
}

// StripFrontmatter removes a leading delimiter-bounded metadata block if one
// opens the file, matching the shortest such block. Used for word counting.
func StripFrontmatter(content string) string {
	return frontmatterRe.ReplaceAllString(content, "")
}

// splitFrontmatter separates YAML frontmatter (between leading --- delimiters)
// from the Markdown body. If no frontmatter is found the entire content is body.
func splitFrontmatter(data []byte) (map[string]any, string, error) {
	const delim = "---"
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return nil, string(data), nil
	}

	// Find end delimiter.
	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		// No closing delimiter — treat everything as body.
		return nil, string(data), nil
	}

	yamlBlock := rest[:idx]
	// Body starts after closing delimiter line.
	afterDelim := rest[idx+1+len(delim):]
	body := strings.TrimLeft(string(afterDelim), "\n\r")

	var fm map[string]any
	if err := yaml.Unmarshal(yamlBlock, &fm); err != nil {
		// Invalid YAML — return body only, no error.
		return nil, string(data), nil
	}

	return fm, body, nil
}

// extractTags collects #tags from the body and entries of the frontmatter
// "tags" field (string or list of strings). Everything is normalised:
// lower-cased, leading # stripped, duplicates removed, first-seen order.
func extractTags(body string, fm map[string]any) []string {
	seen := make(map[string]struct{})
	var out []string

	add := func(raw string) {
		t := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(raw), "#"))
		if t == "" {
			return
		}
		if _, dup := seen[t]; dup {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	if fm != nil {
		switch v := fm["tags"].(type) {
		case string:
			add(v)
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok {
					add(s)
				}
			}
		}
	}

	for _, m := range tagRe.FindAllStringSubmatch(body, -1) {
		add(m[1])
	}

	return out
}

// extractListItems scans raw content line by line for Markdown list entries.
func extractListItems(content string) []models.ListItem {
	var out []models.ListItem
	for i, line := range strings.Split(content, "\n") {
		m := listItemRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		out = append(out, models.ListItem{Line: i, Marker: markerFor(m[1])})
	}
	return out
}

// markerFor maps a checkbox character to its task marker. An empty string
// means the item had no checkbox at all.
func markerFor(box string) string {
	switch box {
	case "":
		return models.MarkerNone
	case " ":
		return models.MarkerOpen
	case "/":
		return models.MarkerInProgress
	default:
		// x, X, and any custom checked state count as completed.
		return models.MarkerDone
	}
}

// deriveTitle returns the frontmatter "title" if present, otherwise the first
// H1 heading, otherwise empty string.
func deriveTitle(fm map[string]any, body string) string {
	if fm != nil {
		if t, ok := fm["title"]; ok {
			if s, ok := t.(string); ok && s != "" {
				return s
			}
		}
	}
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}
