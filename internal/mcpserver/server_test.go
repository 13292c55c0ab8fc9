// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/agentic-researcher/internal/citation"
	"github.com/pdiddy/agentic-researcher/internal/tools"
	"github.com/pdiddy/agentic-researcher/pkg/types"
)

type stubSource struct {
	got types.SearchQuery
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Search(_ context.Context, q types.SearchQuery) []types.PaperRecord {
	s.got = q
	return []types.PaperRecord{{
		Title:     "Attention Is All You Need",
		Authors:   []string{"Ashish Vaswani"},
		Abstract:  "The dominant sequence transduction models.",
		Published: "2017-06-12",
		Link:      "http://arxiv.org/abs/1706.03762v7",
	}}
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return tc.Text
}

func TestSearchHandler(t *testing.T) {
	src := &stubSource{}
	h := &handlers{kit: tools.New(nil, src)}

	res, err := h.search(context.Background(), callRequest(tools.SearchInfo.Name, map[string]any{
		"query":       "transformers",
		"max_results": float64(3),
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "1. **Attention Is All You Need**")
	assert.Equal(t, "transformers", src.got.Query)
	assert.Equal(t, 3, src.got.MaxResults)
}

func TestSearchHandlerDefaultMaxResults(t *testing.T) {
	src := &stubSource{}
	h := &handlers{kit: tools.New(nil, src)}

	_, err := h.search(context.Background(), callRequest(tools.SearchInfo.Name, map[string]any{"query": "q"}))
	require.NoError(t, err)
	assert.Equal(t, types.DefaultMaxResults, src.got.MaxResults)
}

func TestSearchHandlerBlankQueryIsText(t *testing.T) {
	h := &handlers{kit: tools.New(nil, &stubSource{})}

	res, err := h.search(context.Background(), callRequest(tools.SearchInfo.Name, map[string]any{"query": "  "}))
	require.NoError(t, err)
	assert.False(t, res.IsError, "rejected input is not a tool error")
	assert.Equal(t, tools.EmptyQuery, resultText(t, res))
}

func TestHandlersMissingArgument(t *testing.T) {
	h := &handlers{kit: tools.New(nil)}
	cases := []struct {
		name string
		call func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
	}{
		{tools.SearchInfo.Name, h.search},
		{tools.SummarizerInfo.Name, h.summarize},
		{tools.CitationInfo.Name, h.cite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tc.call(context.Background(), callRequest(tc.name, map[string]any{}))
			require.NoError(t, err)
			assert.True(t, res.IsError)
		})
	}
}

func TestSummarizeHandler(t *testing.T) {
	h := &handlers{kit: tools.New(nil)}

	res, err := h.summarize(context.Background(), callRequest(tools.SummarizerInfo.Name, map[string]any{"findings": "too short"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.True(t, strings.HasPrefix(resultText(t, res), "Insufficient research data provided."))
}

func TestCiteHandler(t *testing.T) {
	h := &handlers{kit: tools.New(nil)}
	text := "Studies show that sleep improves memory consolidation."

	res, err := h.cite(context.Background(), callRequest(tools.CitationInfo.Name, map[string]any{"text": text}))
	require.NoError(t, err)
	assert.Equal(t, citation.Audit(text).Text, resultText(t, res))
}

func TestToolResult(t *testing.T) {
	assert.False(t, toolResult(types.OK("fine")).IsError)
	assert.False(t, toolResult(types.Rejected("nope")).IsError)
	assert.True(t, toolResult(types.Errorf("boom: %s", "x")).IsError)
}

func TestServerListsTools(t *testing.T) {
	s := New(tools.New(nil), "test")
	ctx := context.Background()

	initMsg := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"0"}}}`
	require.NotNil(t, s.HandleMessage(ctx, json.RawMessage(initMsg)))

	resp := s.HandleMessage(ctx, json.RawMessage(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`))
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	for _, info := range tools.All {
		assert.Contains(t, string(data), `"name":"`+info.Name+`"`)
	}
	assert.Contains(t, string(data), `"query"`)
	assert.Contains(t, string(data), `"findings"`)
}
