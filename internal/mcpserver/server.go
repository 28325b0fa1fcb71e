// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Dagaz dashboard tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/dagaz/internal/dashboard"
	"github.com/starford/dagaz/internal/storage"
)

// Server wraps the MCP server with Dagaz tools.
type Server struct {
	mcp    *server.MCPServer
	engine *dashboard.Engine
	store  storage.Provider
}

// New creates a new MCP server with all Dagaz tools registered.
func New(engine *dashboard.Engine, store storage.Provider) *Server {
	s := &Server{engine: engine, store: store}

	s.mcp = server.NewMCPServer(
		"Dagaz",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("get_dashboard",
		mcp.WithDescription("Render the full homepage dashboard: recent notes, daily note, "+
			"folder grid, tag counts, vault statistics, open tasks, and bookmarks. "+
			"Each section carries its own status; see the dagaz://dashboard-format resource."),
	), s.getDashboard)

	s.mcp.AddTool(mcp.NewTool("get_section",
		mcp.WithDescription("Render a single dashboard section by ID."),
		mcp.WithString("section", mcp.Required(),
			mcp.Description("Section ID: recent, daily, groups, tags, stats, tasks, or bookmarks")),
	), s.getSection)

	s.mcp.AddTool(mcp.NewTool("get_daily_note",
		mcp.WithDescription("Return today's deterministically selected daily note. "+
			"The same note is returned for the whole calendar day."),
	), s.getDailyNote)

	s.mcp.AddTool(mcp.NewTool("list_open_tasks",
		mcp.WithDescription("List open and in-progress tasks extracted from vault notes, "+
			"most recently modified notes first."),
	), s.listOpenTasks)

	s.mcp.AddTool(mcp.NewTool("tag_counts",
		mcp.WithDescription("Count how many notes carry each tag, most used first. "+
			"A tag counts once per note regardless of repetition."),
	), s.tagCounts)

	s.mcp.AddTool(mcp.NewTool("vault_stats",
		mcp.WithDescription("Total note and word counts for the vault, "+
			"honoring the configured exclusions."),
	), s.vaultStats)

	s.mcp.AddTool(mcp.NewTool("list_bookmarks",
		mcp.WithDescription("Flattened list of vault bookmarks in definition order."),
	), s.listBookmarks)

	s.mcp.AddTool(mcp.NewTool("read_note",
		mcp.WithDescription("Read the full content of a Markdown note."),
		mcp.WithString("path", mcp.Required(),
			mcp.Description("Relative path to the note (e.g. folder/note.md)")),
	), s.readNote)

	// Resource: dashboard payload format.
	s.mcp.AddResource(
		mcp.NewResource("dagaz://dashboard-format", "Dashboard Format",
			mcp.WithResourceDescription("Structure and section statuses of the dashboard payload."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readDashboardFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) getDashboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, err := s.engine.Render(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(d, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getSection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sec, err := s.engine.RenderSection(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("unknown section: %s", id)), nil
	}
	out, _ := json.MarshalIndent(sec, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getDailyNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.sectionResult(ctx, dashboard.SectionDaily)
}

func (s *Server) listOpenTasks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.sectionResult(ctx, dashboard.SectionTasks)
}

func (s *Server) tagCounts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.sectionResult(ctx, dashboard.SectionTags)
}

func (s *Server) vaultStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.sectionResult(ctx, dashboard.SectionStats)
}

func (s *Server) listBookmarks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.sectionResult(ctx, dashboard.SectionBookmarks)
}

// sectionResult renders one section and reports non-ok statuses as plain
// text so tool consumers see "disabled" or "empty" instead of a bare null.
func (s *Server) sectionResult(ctx context.Context, id string) (*mcp.CallToolResult, error) {
	sec, err := s.engine.RenderSection(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if sec.Status != dashboard.StatusOK {
		msg := fmt.Sprintf("%s: %s", id, sec.Status)
		if sec.Error != "" {
			msg += " (" + sec.Error + ")"
		}
		return mcp.NewToolResultText(msg), nil
	}
	out, _ := json.MarshalIndent(sec.Data, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !strings.HasSuffix(path, ".md") {
		return mcp.NewToolResultError(fmt.Sprintf("not a Markdown note: %s", path)), nil
	}
	data, err := s.store.Read(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) readDashboardFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "dagaz://dashboard-format",
			MIMEType: "text/markdown",
			Text:     DashboardFormatContract,
		},
	}, nil
}
