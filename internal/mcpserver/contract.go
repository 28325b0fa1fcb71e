package mcpserver

// DashboardFormatContract describes the dashboard payload structure that
// LLM consumers receive from the get_dashboard tool.
const DashboardFormatContract = `# Dagaz Dashboard Format

The ` + "`" + `get_dashboard` + "`" + ` tool returns a single JSON object:

` + "```" + `json
{
  "generation": 42,
  "generated_at": "2026-03-01T12:00:00Z",
  "homepage": "Home.md",
  "accordion": "off",
  "sections": [ ... ]
}
` + "```" + `

- ` + "`" + `generation` + "`" + ` identifies the vault state the render was computed against.
  It increases on every vault change. Compare against the ` + "`" + `generation` + "`" + `
  field of ` + "`" + `dashboard.updated` + "`" + ` events to detect stale renders.
- ` + "`" + `accordion` + "`" + ` is one of ` + "`" + `off` + "`" + `, ` + "`" + `sibling` + "`" + `, ` + "`" + `global` + "`" + `.

## Sections

Every section appears in the list, even when disabled:

` + "```" + `json
{ "id": "recent", "status": "ok", "data": { ... } }
` + "```" + `

Section IDs, in render order: ` + "`" + `recent` + "`" + `, ` + "`" + `daily` + "`" + `, ` + "`" + `groups` + "`" + `,
` + "`" + `tags` + "`" + `, ` + "`" + `stats` + "`" + `, ` + "`" + `tasks` + "`" + `, ` + "`" + `bookmarks` + "`" + `.

Statuses:

| Status | Meaning |
|---|---|
| ` + "`" + `ok` + "`" + ` | Section rendered; ` + "`" + `data` + "`" + ` is present |
| ` + "`" + `disabled` + "`" + ` | Feature switched off in configuration |
| ` + "`" + `empty` + "`" + ` | Nothing matched (no query hits, no tags, no tasks) |
| ` + "`" + `not-configured` + "`" + ` | Feature enabled but missing required settings |
| ` + "`" + `unavailable` + "`" + ` | Backing data missing (e.g. no bookmark file) |
| ` + "`" + `error` + "`" + ` | Section failed; ` + "`" + `error` + "`" + ` carries a short message |

A failing section never affects its siblings. ` + "`" + `data` + "`" + ` is omitted for
every status except ` + "`" + `ok` + "`" + `.

## Section data shapes

- ` + "`" + `recent` + "`" + `: paginated display list with ` + "`" + `items` + "`" + `, ` + "`" + `initial_count` + "`" + `, ` + "`" + `total_count` + "`" + `.
- ` + "`" + `daily` + "`" + `: a single note object. The same note is selected for the
  whole calendar day.
- ` + "`" + `groups` + "`" + `: folder grid entries ordered digit-prefixed folders first, then
  by locale collation, with the vault root last.
- ` + "`" + `tags` + "`" + `: ` + "`" + `[{"tag": "project", "count": 12}, ...]` + "`" + `, counted once per note.
- ` + "`" + `stats` + "`" + `: ` + "`" + `{"note_count": N, "word_count": M}` + "`" + `.
- ` + "`" + `tasks` + "`" + `: open and in-progress checklist items, newest notes first.
- ` + "`" + `bookmarks` + "`" + `: flattened bookmark entries in definition order.
`
