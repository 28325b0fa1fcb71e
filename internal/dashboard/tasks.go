package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/query"
	"github.com/starford/dagaz/internal/storage"
)

// taskPrefixRe strips the bullet and optional checkbox group from a task
// line to leave the display text.
var taskPrefixRe = regexp.MustCompile(`^\s*(?:[-*+]|\d+[.)])\s+(?:\[.\]\s*)?`)

// ExtractTasks collects open and in-progress list items from every note
// that passes the query filter and is not under an excluded folder. The
// result is ordered by owning note's mtime descending, then line number
// ascending, and truncated to limit. A single note's read failure yields a
// placeholder text instead of aborting the rest of the extraction.
func ExtractTasks(ctx context.Context, notes []models.Note, filter query.Spec, excludedFolders []string, limit int, store storage.Provider, logger *slog.Logger) []models.Task {
	var out []models.Task
	for _, n := range notes {
		if err := ctx.Err(); err != nil {
			break
		}
		if underAny(n.Path, excludedFolders) || !filter.Matches(n) {
			continue
		}

		var lines []string
		haveLines := false
		for _, item := range n.ListItems {
			if item.Marker != models.MarkerOpen && item.Marker != models.MarkerInProgress {
				continue
			}
			if !haveLines {
				lines = readLines(n.Path, store, logger)
				haveLines = true
			}
			out = append(out, models.Task{
				NotePath:   n.Path,
				Line:       item.Line,
				Text:       taskText(lines, item.Line, n.Basename),
				Status:     item.Marker,
				ModifiedAt: n.ModifiedAt,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ModifiedAt.Equal(out[j].ModifiedAt) {
			return out[i].ModifiedAt.After(out[j].ModifiedAt)
		}
		if out[i].NotePath != out[j].NotePath {
			return out[i].NotePath < out[j].NotePath
		}
		return out[i].Line < out[j].Line
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// readLines fetches a note's physical lines, returning nil on failure so
// the caller substitutes a placeholder per task.
func readLines(path string, store storage.Provider, logger *slog.Logger) []string {
	data, err := store.Read(path)
	if err != nil {
		logger.Warn("tasks: read failed", slog.String("path", path), slog.String("error", err.Error()))
		return nil
	}
	return strings.Split(string(data), "\n")
}

// taskText strips the list marker prefix from the physical line, or builds
// an error placeholder carrying the note identity when the line is
// unavailable.
func taskText(lines []string, line int, basename string) string {
	if lines == nil || line < 0 || line >= len(lines) {
		return fmt.Sprintf("(unreadable task in %s)", basename)
	}
	raw := strings.TrimSuffix(lines[line], "\r")
	return strings.TrimSpace(taskPrefixRe.ReplaceAllString(raw, ""))
}
