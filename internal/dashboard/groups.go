package dashboard

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"

	"github.com/starford/dagaz/internal/models"
)

// BuildFolderGroups partitions the vault into the two-level folder grid:
// one FolderGroup per retained top-level folder plus a trailing root
// pseudo-group for notes at the vault root. Every note under a top-level
// folder lands in exactly one of that group's subgroups or its direct note
// list; nesting deeper than one subfolder level collapses into the
// subfolder's recursive list.
func BuildFolderGroups(allNotes []models.Note, excludedFolders map[string]struct{}, c *collate.Collator) []models.FolderGroup {
	tops := topLevelFolders(allNotes, excludedFolders)
	sortTopFolders(tops, c)

	groups := make([]models.FolderGroup, 0, len(tops)+1)
	for _, top := range tops {
		g := buildGroup(top, allNotes, c)
		if len(g.AllRecursive) == 0 {
			continue
		}
		groups = append(groups, g)
	}

	if root := rootGroup(allNotes, c); root != nil {
		groups = append(groups, *root)
	}
	return groups
}

// topLevelFolders collects the distinct first path segments of nested
// notes, minus the excluded names (compared case-insensitively).
func topLevelFolders(notes []models.Note, excluded map[string]struct{}) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, n := range notes {
		i := strings.Index(n.Path, "/")
		if i < 0 {
			continue
		}
		top := n.Path[:i]
		if _, dup := seen[top]; dup {
			continue
		}
		seen[top] = struct{}{}
		if _, skip := excluded[strings.ToLower(top)]; skip {
			continue
		}
		out = append(out, top)
	}
	return out
}

// sortTopFolders orders folders digit-first: names starting with a digit
// sort before the rest, each bucket in collation order. This keeps
// numbering schemes (10 Projects, 20 Areas, ...) ahead of plain names.
func sortTopFolders(folders []string, c *collate.Collator) {
	startsDigit := func(s string) bool {
		return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
	}
	sort.SliceStable(folders, func(i, j int) bool {
		di, dj := startsDigit(folders[i]), startsDigit(folders[j])
		if di != dj {
			return di
		}
		return less(c, folders[i], folders[j])
	})
}

// buildGroup assembles one top-level FolderGroup.
func buildGroup(top string, allNotes []models.Note, c *collate.Collator) models.FolderGroup {
	prefix := top + "/"
	g := models.FolderGroup{
		FolderPath: top,
		Subgroups:  make(map[string][]models.Note),
	}

	for _, n := range allNotes {
		if !strings.HasPrefix(n.Path, prefix) {
			continue
		}
		g.AllRecursive = append(g.AllRecursive, n)

		if n.Folder == top {
			// A note named after its folder is the folder's index note;
			// listing it would duplicate the folder label.
			if strings.EqualFold(n.Basename, top) {
				continue
			}
			g.DirectNotes = append(g.DirectNotes, n)
			continue
		}

		// Everything nested deeper collapses into the immediate subfolder.
		rest := n.Path[len(prefix):]
		i := strings.Index(rest, "/")
		if i < 0 {
			continue
		}
		sub := prefix + rest[:i]
		g.Subgroups[sub] = append(g.Subgroups[sub], n)
	}

	g.DirectNotes = SortByName(g.DirectNotes, c)
	for sub, notes := range g.Subgroups {
		g.Subgroups[sub] = SortByName(notes, c)
		g.SubgroupOrder = append(g.SubgroupOrder, sub)
	}
	sort.SliceStable(g.SubgroupOrder, func(i, j int) bool {
		return less(c, g.SubgroupOrder[i], g.SubgroupOrder[j])
	})
	if len(g.Subgroups) == 0 {
		g.Subgroups = nil
	}
	return g
}

// rootGroup builds the pseudo-group of notes sitting at the vault root,
// or nil when there are none.
func rootGroup(allNotes []models.Note, c *collate.Collator) *models.FolderGroup {
	var roots []models.Note
	for _, n := range allNotes {
		if n.Folder == models.RootFolder {
			roots = append(roots, n)
		}
	}
	if len(roots) == 0 {
		return nil
	}
	roots = SortByName(roots, c)
	return &models.FolderGroup{
		FolderPath:   models.RootFolder,
		DirectNotes:  roots,
		AllRecursive: roots,
	}
}
