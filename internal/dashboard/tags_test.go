package dashboard

import (
	"testing"

	"github.com/starford/dagaz/internal/models"
)

func TestCountTags_OncePerNote(t *testing.T) {
	// A note's tag set is already deduplicated: "todo" in body and
	// frontmatter still yields one entry.
	notes := []models.Note{
		{Path: "A.md", Tags: []string{"todo"}},
		{Path: "B.md"},
	}
	got := CountTags(notes, nil)
	if len(got) != 1 || got[0].Tag != "todo" || got[0].Count != 1 {
		t.Errorf("CountTags = %v, want [{todo 1}]", got)
	}
}

func TestCountTags_OrderAndTies(t *testing.T) {
	notes := []models.Note{
		{Path: "1.md", Tags: []string{"alpha", "beta"}},
		{Path: "2.md", Tags: []string{"beta"}},
		{Path: "3.md", Tags: []string{"gamma"}},
	}
	got := CountTags(notes, nil)
	// beta=2 first; alpha and gamma tie at 1, alpha was seen first.
	if len(got) != 3 {
		t.Fatalf("CountTags = %v", got)
	}
	if got[0].Tag != "beta" || got[0].Count != 2 {
		t.Errorf("got[0] = %v", got[0])
	}
	if got[1].Tag != "alpha" || got[2].Tag != "gamma" {
		t.Errorf("tie order = %v, %v", got[1], got[2])
	}
}

func TestCountTags_ExcludedPrefixes(t *testing.T) {
	notes := []models.Note{
		{Path: "Templates/t.md", Tags: []string{"skip"}},
		{Path: "TemplatesOld/t.md", Tags: []string{"keep"}},
		{Path: "Notes/n.md", Tags: []string{"keep"}},
	}
	got := CountTags(notes, []string{"templates"})
	if len(got) != 1 || got[0].Tag != "keep" || got[0].Count != 2 {
		t.Errorf("CountTags = %v, want [{keep 2}]", got)
	}
}

func TestCountTags_DuplicateWithinSnapshotNote(t *testing.T) {
	// Defensive: a snapshot built elsewhere may carry duplicates.
	notes := []models.Note{
		{Path: "x.md", Tags: []string{"dup", "dup", "dup"}},
	}
	got := CountTags(notes, nil)
	if len(got) != 1 || got[0].Count != 1 {
		t.Errorf("CountTags = %v, want single count of 1", got)
	}
}

func TestUnderAny(t *testing.T) {
	tests := []struct {
		path     string
		prefixes []string
		want     bool
	}{
		{"Templates/x.md", []string{"templates"}, true},
		{"templates/x.md", []string{"Templates/"}, true},
		{"TemplatesOld/x.md", []string{"templates"}, false},
		{"Notes/y.md", []string{"templates"}, false},
		{"Notes/y.md", nil, false},
	}
	for _, tt := range tests {
		if got := underAny(tt.path, tt.prefixes); got != tt.want {
			t.Errorf("underAny(%q, %v) = %v, want %v", tt.path, tt.prefixes, got, tt.want)
		}
	}
}
