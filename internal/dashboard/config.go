package dashboard

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/dagaz/internal/bookmarks"
)

// Config is the dashboard feature surface: one block per feature with its
// enable flag, limits, query strings, and exclusion lists. Exclusion lists
// and allowed-value lists are comma-separated in YAML and parsed with
// SplitList.
type Config struct {
	// Homepage is the vault path of the note hosting the dashboard.
	Homepage  string          `yaml:"homepage"`
	Locale    string          `yaml:"locale"`
	Accordion AccordionConfig `yaml:"accordion"`
	Recent    RecentConfig    `yaml:"recent"`
	Daily     DailyConfig     `yaml:"daily"`
	Groups    GroupsConfig    `yaml:"groups"`
	Tags      TagsConfig      `yaml:"tags"`
	Stats     StatsConfig     `yaml:"stats"`
	Tasks     TasksConfig     `yaml:"tasks"`
	Bookmarks BookmarksConfig `yaml:"bookmarks"`
}

// AccordionConfig selects the auto-close policy for collapsible sections.
// When both flags are set, global wins.
type AccordionConfig struct {
	Global  bool `yaml:"global"`
	Sibling bool `yaml:"sibling"`
}

// Mode resolves the configured flags to a single accordion mode.
func (c AccordionConfig) Mode() string {
	switch {
	case c.Global:
		return AccordionGlobal
	case c.Sibling:
		return AccordionSibling
	default:
		return AccordionOff
	}
}

// RecentConfig drives the recent-notes list.
type RecentConfig struct {
	Enabled bool   `yaml:"enabled"`
	Query   string `yaml:"query"`
	Limit   int    `yaml:"limit"`
}

// DailyConfig drives the deterministic daily note. Key names the
// frontmatter field; Values is the comma-separated allowed-values list.
type DailyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Key     string `yaml:"key"`
	Values  string `yaml:"values"`
}

// GroupsConfig drives the folder grid.
type GroupsConfig struct {
	Enabled         bool   `yaml:"enabled"`
	ExcludedFolders string `yaml:"excluded_folders"`
}

// TagsConfig drives the tag-count panel.
type TagsConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Limit         int    `yaml:"limit"`
	ExcludedPaths string `yaml:"excluded_paths"`
}

// StatsConfig drives the note/word counters.
type StatsConfig struct {
	Enabled                bool   `yaml:"enabled"`
	ExcludedFolders        string `yaml:"excluded_folders"`
	ExcludedWordcountPaths string `yaml:"excluded_wordcount_paths"`
}

// TasksConfig drives open-task extraction.
type TasksConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Query           string `yaml:"query"`
	Limit           int    `yaml:"limit"`
	ExcludedFolders string `yaml:"excluded_folders"`
}

// BookmarksConfig drives the bookmark list. Path is relative to the vault
// root and defaults to the standard bookmark file location.
type BookmarksConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Normalize clamps non-positive limits to 1 and fills path defaults.
// Pagination utilities assume this has run.
func (c *Config) Normalize() {
	if c.Recent.Limit < 1 {
		c.Recent.Limit = 1
	}
	if c.Tags.Limit < 1 {
		c.Tags.Limit = 1
	}
	if c.Tasks.Limit < 1 {
		c.Tasks.Limit = 1
	}
	if c.Bookmarks.Path == "" {
		c.Bookmarks.Path = bookmarks.DefaultPath
	}
}

// Validate validates the dashboard configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Recent,
		validation.Field(&c.Recent.Limit, validation.Min(1)),
	); err != nil {
		return err
	}
	if err := validation.ValidateStruct(&c.Tags,
		validation.Field(&c.Tags.Limit, validation.Min(1)),
	); err != nil {
		return err
	}
	return validation.ValidateStruct(&c.Tasks,
		validation.Field(&c.Tasks.Limit, validation.Min(1)),
	)
}

// SplitList parses a comma-separated configuration list into trimmed,
// lower-cased, non-empty entries.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SplitSet is SplitList collected into a membership set.
func SplitSet(raw string) map[string]struct{} {
	items := SplitList(raw)
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		out[item] = struct{}{}
	}
	return out
}
