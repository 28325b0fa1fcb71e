// Package dashboard computes the homepage dashboard from an immutable
// vault metadata snapshot: recent notes, the deterministic daily note, the
// folder grid, tag counts, vault statistics, open tasks, and bookmarks.
// Every feature is a pure computation over the snapshot; the only I/O is
// per-file reads for word counting and task text.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/bookmarks"
	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/query"
	"github.com/starford/dagaz/internal/storage"
)

// Section statuses. Every feature section carries exactly one; a failing
// feature never takes its siblings down with it.
const (
	StatusOK            = "ok"
	StatusDisabled      = "disabled"
	StatusEmpty         = "empty"
	StatusNotConfigured = "not-configured"
	StatusUnavailable   = "unavailable"
	StatusError         = "error"
)

// Feature section IDs in render order.
const (
	SectionRecent    = "recent"
	SectionDaily     = "daily"
	SectionGroups    = "groups"
	SectionTags      = "tags"
	SectionStats     = "stats"
	SectionTasks     = "tasks"
	SectionBookmarks = "bookmarks"
)

// SnapshotSource supplies the note snapshot a render computes over.
type SnapshotSource interface {
	Snapshot() ([]models.Note, error)
}

// Section is one feature's render result.
type Section struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// Dashboard is one full render. Generation identifies the vault state the
// render was started against; callers discard a Dashboard whose generation
// is no longer current rather than let a stale render overwrite a newer one.
type Dashboard struct {
	Generation  uint64    `json:"generation"`
	GeneratedAt time.Time `json:"generated_at"`
	Homepage    string    `json:"homepage,omitempty"`
	Accordion   string    `json:"accordion"`
	Sections    []Section `json:"sections"`
}

// Engine runs the feature descriptor list over vault snapshots.
type Engine struct {
	cfg      Config
	src      SnapshotSource
	store    storage.Provider
	logger   *slog.Logger
	collator *collate.Collator
	now      func() time.Time

	generation atomic.Uint64
}

// New creates an Engine. The locale in cfg selects the collation used for
// name ordering; an empty or unparseable locale falls back to the neutral
// collation.
func New(cfg Config, src SnapshotSource, store storage.Provider, logger *slog.Logger) *Engine {
	tag := language.Und
	if cfg.Locale != "" {
		if parsed, err := language.Parse(cfg.Locale); err == nil {
			tag = parsed
		} else {
			logger.Warn("dashboard: invalid locale, using neutral collation",
				slog.String("locale", cfg.Locale))
		}
	}
	return &Engine{
		cfg:      cfg,
		src:      src,
		store:    store,
		logger:   logger,
		collator: collate.New(tag),
		now:      time.Now,
	}
}

// Bump advances the render generation. The vault watcher calls this on
// every index mutation; in-flight renders become stale.
func (e *Engine) Bump() uint64 {
	return e.generation.Add(1)
}

// Generation returns the current render generation.
func (e *Engine) Generation() uint64 {
	return e.generation.Load()
}

// IsCurrent reports whether a rendered dashboard still reflects the latest
// vault generation.
func (e *Engine) IsCurrent(d *Dashboard) bool {
	return d != nil && d.Generation == e.generation.Load()
}

// IsHomepage reports whether path is the configured homepage note. The
// active-view state is derived from this on every navigation rather than
// kept as a flag.
func (e *Engine) IsHomepage(path string) bool {
	return e.cfg.Homepage != "" && strings.EqualFold(path, e.cfg.Homepage)
}

// feature is one declarative entry of the render list.
type feature struct {
	id      string
	enabled bool
	compute func(ctx context.Context, notes []models.Note) (any, error)
}

func (e *Engine) features() []feature {
	return []feature{
		{SectionRecent, e.cfg.Recent.Enabled, e.computeRecent},
		{SectionDaily, e.cfg.Daily.Enabled, e.computeDaily},
		{SectionGroups, e.cfg.Groups.Enabled, e.computeGroups},
		{SectionTags, e.cfg.Tags.Enabled, e.computeTags},
		{SectionStats, e.cfg.Stats.Enabled, e.computeStats},
		{SectionTasks, e.cfg.Tasks.Enabled, e.computeTasks},
		{SectionBookmarks, e.cfg.Bookmarks.Enabled, e.computeBookmarks},
	}
}

// Render computes every feature section over a single snapshot. Feature
// failures are isolated: each section degrades to its own status and the
// rest of the dashboard renders normally.
func (e *Engine) Render(ctx context.Context) (*Dashboard, error) {
	gen := e.generation.Load()
	notes, err := e.src.Snapshot()
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		Generation:  gen,
		GeneratedAt: e.now(),
		Homepage:    e.cfg.Homepage,
		Accordion:   e.cfg.Accordion.Mode(),
	}
	for _, f := range e.features() {
		if !f.enabled {
			d.Sections = append(d.Sections, Section{ID: f.id, Status: StatusDisabled})
			continue
		}
		d.Sections = append(d.Sections, e.runFeature(ctx, f, notes))
	}
	return d, nil
}

// RenderSection computes a single feature section by ID, for the
// per-feature API routes. Unknown IDs map to apperr.ErrNotFound.
func (e *Engine) RenderSection(ctx context.Context, id string) (*Section, error) {
	notes, err := e.src.Snapshot()
	if err != nil {
		return nil, err
	}
	for _, f := range e.features() {
		if f.id != id {
			continue
		}
		if !f.enabled {
			return &Section{ID: f.id, Status: StatusDisabled}, nil
		}
		sec := e.runFeature(ctx, f, notes)
		return &sec, nil
	}
	return nil, apperr.ErrNotFound
}

// runFeature executes one feature with panic and error isolation.
func (e *Engine) runFeature(ctx context.Context, f feature, notes []models.Note) (sec Section) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("dashboard: feature panicked",
				slog.String("feature", f.id), slog.Any("panic", r))
			sec = Section{ID: f.id, Status: StatusError, Error: "internal error"}
		}
	}()

	data, err := f.compute(ctx, notes)
	switch {
	case errors.Is(err, apperr.ErrNotConfigured):
		return Section{ID: f.id, Status: StatusNotConfigured}
	case errors.Is(err, apperr.ErrUnavailable):
		return Section{ID: f.id, Status: StatusUnavailable}
	case err != nil:
		e.logger.Error("dashboard: feature failed",
			slog.String("feature", f.id), slog.String("error", err.Error()))
		return Section{ID: f.id, Status: StatusError, Error: "error loading " + f.id}
	case data == nil:
		return Section{ID: f.id, Status: StatusEmpty}
	}
	return Section{ID: f.id, Status: StatusOK, Data: data}
}

// computeRecent filters the snapshot by the configured query and returns
// the paginated recency-ordered list. Data is nil when nothing matches.
func (e *Engine) computeRecent(_ context.Context, notes []models.Note) (any, error) {
	spec := query.Parse(e.cfg.Recent.Query)
	var matched []models.Note
	for _, n := range notes {
		if spec.Matches(n) {
			matched = append(matched, n)
		}
	}
	if len(matched) == 0 {
		return nil, nil
	}
	list := Paginate(SortByRecency(matched), e.cfg.Recent.Limit)
	return list, nil
}

// computeDaily filters candidates by the configured frontmatter field and
// picks today's note deterministically.
func (e *Engine) computeDaily(_ context.Context, notes []models.Note) (any, error) {
	if e.cfg.Daily.Key == "" || emptyList(e.cfg.Daily.Values) {
		return nil, apperr.ErrNotConfigured
	}
	allowed := SplitSet(e.cfg.Daily.Values)
	candidates := FilterDailyCandidates(notes, e.cfg.Daily.Key, allowed)
	selected := SelectDaily(candidates, e.now())
	if selected == nil {
		return nil, nil
	}
	return selected, nil
}

// computeGroups builds the folder grid.
func (e *Engine) computeGroups(_ context.Context, notes []models.Note) (any, error) {
	excluded := SplitSet(e.cfg.Groups.ExcludedFolders)
	groups := BuildFolderGroups(notes, excluded, e.collator)
	if len(groups) == 0 {
		return nil, nil
	}
	return groups, nil
}

// computeTags aggregates tag counts, truncated to the configured limit.
func (e *Engine) computeTags(_ context.Context, notes []models.Note) (any, error) {
	counts := CountTags(notes, SplitList(e.cfg.Tags.ExcludedPaths))
	if len(counts) == 0 {
		return nil, nil
	}
	if len(counts) > e.cfg.Tags.Limit {
		counts = counts[:e.cfg.Tags.Limit]
	}
	return counts, nil
}

// computeStats counts notes and words with the configured exclusions.
func (e *Engine) computeStats(ctx context.Context, notes []models.Note) (any, error) {
	stats, err := CountNotesAndWords(ctx, notes,
		SplitList(e.cfg.Stats.ExcludedFolders),
		SplitList(e.cfg.Stats.ExcludedWordcountPaths),
		e.store, e.logger)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// computeTasks extracts open and in-progress tasks.
func (e *Engine) computeTasks(ctx context.Context, notes []models.Note) (any, error) {
	tasks := ExtractTasks(ctx, notes,
		query.Parse(e.cfg.Tasks.Query),
		SplitList(e.cfg.Tasks.ExcludedFolders),
		e.cfg.Tasks.Limit,
		e.store, e.logger)
	if len(tasks) == 0 {
		return nil, nil
	}
	return tasks, nil
}

// computeBookmarks loads and flattens the vault bookmark file.
func (e *Engine) computeBookmarks(_ context.Context, _ []models.Note) (any, error) {
	entries, err := bookmarks.Load(e.store, e.cfg.Bookmarks.Path)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries, nil
}

// emptyList reports an all-whitespace comma list.
func emptyList(raw string) bool {
	return len(SplitList(raw)) == 0
}
