package dashboard

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/parser"
	"github.com/starford/dagaz/internal/storage"
)

// wordCountConcurrency bounds the number of files read at once.
const wordCountConcurrency = 8

// CountNotesAndWords computes the vault statistics panel. The note count
// covers notes outside the excluded top folders; the word count
// additionally skips notes under any excluded word-count path and sums the
// whitespace-separated words of each remaining note's body (frontmatter
// block stripped). File reads run concurrently; a failed read contributes
// zero words and is logged, never fatal.
func CountNotesAndWords(ctx context.Context, notes []models.Note, excludedTopFolders, excludedWordcountPaths []string, store storage.Provider, logger *slog.Logger) (models.VaultStats, error) {
	var counted []models.Note
	for _, n := range notes {
		if underAny(n.Path, excludedTopFolders) {
			continue
		}
		counted = append(counted, n)
	}

	var words atomic.Int64
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(wordCountConcurrency)

	for _, n := range counted {
		if underAny(n.Path, excludedWordcountPaths) {
			continue
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			data, err := store.Read(n.Path)
			if err != nil {
				logger.Warn("stats: read failed", slog.String("path", n.Path), slog.String("error", err.Error()))
				return nil
			}
			body := parser.StripFrontmatter(string(data))
			words.Add(int64(len(strings.Fields(body))))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.VaultStats{}, err
	}

	return models.VaultStats{
		NoteCount: len(counted),
		WordCount: int(words.Load()),
	}, nil
}
