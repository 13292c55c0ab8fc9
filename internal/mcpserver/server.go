// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mcpserver exposes the research Toolkit as Model Context Protocol
// tools so agent frameworks can call them over stdio.
package mcpserver

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pdiddy/agentic-researcher/internal/tools"
	"github.com/pdiddy/agentic-researcher/pkg/types"
)

// ServerName identifies this server in the MCP handshake.
const ServerName = "agentic-researcher"

// New returns an MCP server with the Toolkit's three tools registered.
func New(kit *tools.Toolkit, version string) *server.MCPServer {
	s := server.NewMCPServer(ServerName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	h := &handlers{kit: kit}

	s.AddTool(mcp.NewTool(tools.SearchInfo.Name,
		mcp.WithTitleAnnotation(tools.SearchInfo.Title),
		mcp.WithDescription(tools.SearchInfo.Description),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Scientific topic or keywords to search for in academic sources"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of results to return (1-10)"),
			mcp.DefaultNumber(types.DefaultMaxResults),
		),
	), h.search)

	s.AddTool(mcp.NewTool(tools.SummarizerInfo.Name,
		mcp.WithTitleAnnotation(tools.SummarizerInfo.Title),
		mcp.WithDescription(tools.SummarizerInfo.Description),
		mcp.WithString("findings",
			mcp.Required(),
			mcp.Description("Research findings and information to summarize"),
		),
	), h.summarize)

	s.AddTool(mcp.NewTool(tools.CitationInfo.Name,
		mcp.WithTitleAnnotation(tools.CitationInfo.Title),
		mcp.WithDescription(tools.CitationInfo.Description),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text containing references to cite properly"),
		),
	), h.cite)

	return s
}

// ServeStdio serves s over the given streams until ctx ends or stdin closes.
func ServeStdio(ctx context.Context, s *server.MCPServer, stdin io.Reader, stdout io.Writer) error {
	return server.NewStdioServer(s).Listen(ctx, stdin, stdout)
}

type handlers struct {
	kit *tools.Toolkit
}

func (h *handlers) search(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	q := types.SearchQuery{
		Query:      query,
		MaxResults: req.GetInt("max_results", types.DefaultMaxResults),
	}
	return toolResult(h.kit.SearchLiterature(ctx, q)), nil
}

func (h *handlers) summarize(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	findings, err := req.RequireString("findings")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(h.kit.SummarizeFindings(ctx, findings)), nil
}

func (h *handlers) cite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(h.kit.AuditCitations(ctx, text)), nil
}

// toolResult maps a Result onto MCP text content. Only error Results set
// isError; rejected input is ordinary text the agent can act on.
func toolResult(res types.Result) *mcp.CallToolResult {
	if res.Failed() {
		return mcp.NewToolResultError(res.Text)
	}
	return mcp.NewToolResultText(res.Text)
}
