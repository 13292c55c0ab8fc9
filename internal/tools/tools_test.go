// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/agentic-researcher/internal/citation"
	"github.com/pdiddy/agentic-researcher/internal/history"
	"github.com/pdiddy/agentic-researcher/internal/summarize"
	"github.com/pdiddy/agentic-researcher/pkg/types"
)

// --- mock source ---

type mockSource struct {
	name    string
	papers  []types.PaperRecord
	queries []types.SearchQuery
	panics  bool
}

func (m *mockSource) Name() string { return m.name }

func (m *mockSource) Search(_ context.Context, q types.SearchQuery) []types.PaperRecord {
	m.queries = append(m.queries, q)
	if m.panics {
		panic("source exploded")
	}
	return m.papers
}

// --- mock recorder ---

type mockRecorder struct {
	runs []history.Run
	err  error
}

func (m *mockRecorder) Record(_ context.Context, run history.Run) (int64, error) {
	m.runs = append(m.runs, run)
	return int64(len(m.runs)), m.err
}

func paper(title string) types.PaperRecord {
	return types.PaperRecord{Title: title, Abstract: "abstract", Published: "2024-01-01", Link: "http://arxiv.org/abs/" + title}
}

func testKit(sources ...*mockSource) (*Toolkit, *mockRecorder) {
	rec := &mockRecorder{}
	kit := New(nil)
	for _, s := range sources {
		kit.Sources = append(kit.Sources, s)
	}
	kit.Summarizer = &summarize.Summarizer{Now: func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) }}
	kit.History = rec
	return kit, rec
}

func TestSearchLiteratureConcatenatesSources(t *testing.T) {
	a := &mockSource{name: "a", papers: []types.PaperRecord{paper("A1"), paper("A2")}}
	b := &mockSource{name: "b", papers: []types.PaperRecord{paper("B1")}}
	kit, rec := testKit(a, b)

	res := kit.SearchLiterature(context.Background(), types.SearchQuery{Query: "  graphene  ", MaxResults: 3})
	require.Equal(t, types.ResultOK, res.Kind)

	assert.Contains(t, res.Text, "Scientific Literature Search Results for 'graphene':")
	assert.Contains(t, res.Text, "1. **A1**")
	assert.Contains(t, res.Text, "2. **A2**")
	assert.Contains(t, res.Text, "3. **B1**")

	require.Len(t, a.queries, 1)
	assert.Equal(t, "graphene", a.queries[0].Query)

	require.Len(t, rec.runs, 1)
	assert.Equal(t, SearchInfo.Name, rec.runs[0].Tool)
	assert.Equal(t, res.Text, rec.runs[0].Output)
}

func TestSearchLiteratureRendersAtMostLimit(t *testing.T) {
	a := &mockSource{name: "a", papers: []types.PaperRecord{paper("A1"), paper("A2"), paper("A3")}}
	kit, _ := testKit(a)

	res := kit.SearchLiterature(context.Background(), types.SearchQuery{Query: "q", MaxResults: 2})
	assert.Equal(t, 2, strings.Count(res.Text, "   Link: "))
}

func TestSearchLiteratureNoResults(t *testing.T) {
	kit, _ := testKit(&mockSource{name: "a"})
	res := kit.SearchLiterature(context.Background(), types.SearchQuery{Query: "unobtainium"})
	assert.Equal(t, types.ResultOK, res.Kind)
	assert.True(t, strings.HasPrefix(res.Text, "No scientific papers found for query: unobtainium."))
}

func TestSearchLiteratureEmptyQuery(t *testing.T) {
	src := &mockSource{name: "a", papers: []types.PaperRecord{paper("A1")}}
	kit, rec := testKit(src)

	res := kit.SearchLiterature(context.Background(), types.SearchQuery{Query: "   "})
	assert.Equal(t, types.ResultRejected, res.Kind)
	assert.Equal(t, EmptyQuery, res.Text)
	assert.Empty(t, src.queries, "sources must not be queried")
	assert.Len(t, rec.runs, 1)
}

func TestFindPapersEmptyQuery(t *testing.T) {
	kit, _ := testKit()
	_, err := kit.FindPapers(context.Background(), types.SearchQuery{})
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSearchLiteratureSourcePanicBecomesErrorResult(t *testing.T) {
	kit, rec := testKit(&mockSource{name: "bad", panics: true})

	res := kit.SearchLiterature(context.Background(), types.SearchQuery{Query: "graphene"})
	assert.Equal(t, types.ResultError, res.Kind)
	assert.True(t, strings.HasPrefix(res.Text, "Error searching scientific literature: source exploded"))
	require.Len(t, rec.runs, 1)
	assert.Equal(t, types.ResultError, rec.runs[0].Kind)
}

func TestSummarizeFindings(t *testing.T) {
	kit, rec := testKit()
	findings := strings.Repeat("Graphene conducts heat well. ", 3)

	res := kit.SummarizeFindings(context.Background(), findings)
	assert.Equal(t, summarize.New().Summarize(findings).Kind, res.Kind)
	assert.Contains(t, res.Text, "STRUCTURED RESEARCH SUMMARY")
	assert.Contains(t, res.Text, "- Generated: 2026-01-02")

	require.Len(t, rec.runs, 1)
	assert.Equal(t, SummarizerInfo.Name, rec.runs[0].Tool)
	assert.Equal(t, findings, rec.runs[0].Input)
}

func TestAuditCitations(t *testing.T) {
	kit, rec := testKit()
	text := "According to a 2023 review, graphene is strong."

	res := kit.AuditCitations(context.Background(), text)
	assert.Equal(t, citation.Audit(text), res)
	require.Len(t, rec.runs, 1)
	assert.Equal(t, CitationInfo.Name, rec.runs[0].Tool)
}

func TestRecordFailureDoesNotAffectResult(t *testing.T) {
	kit, rec := testKit()
	rec.err = errors.New("disk full")

	res := kit.AuditCitations(context.Background(), "short")
	assert.Equal(t, types.Rejected(citation.TooShort), res)
}

func TestToolkitWithoutHistory(t *testing.T) {
	kit := New(nil)
	res := kit.SummarizeFindings(context.Background(), "too short")
	assert.Equal(t, types.ResultRejected, res.Kind)
}

func TestToolInfoNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, info := range All {
		assert.NotEmpty(t, info.Description)
		assert.False(t, seen[info.Name], "duplicate tool name %q", info.Name)
		seen[info.Name] = true
	}
	assert.Len(t, All, 3)
}
