// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tools bundles the literature search, findings summarizer, and
// citation auditor into a Toolkit whose operations always return text.
// The CLI and the MCP server both call tools through a Toolkit.
package tools

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pdiddy/agentic-researcher/internal/citation"
	"github.com/pdiddy/agentic-researcher/internal/history"
	"github.com/pdiddy/agentic-researcher/internal/search"
	"github.com/pdiddy/agentic-researcher/internal/summarize"
	"github.com/pdiddy/agentic-researcher/pkg/types"
)

// Info describes a tool to agent frameworks.
type Info struct {
	Name        string
	Title       string
	Description string
}

var (
	SearchInfo = Info{
		Name:  "scientific_search",
		Title: "Scientific Literature Search",
		Description: "Search for scientific papers, research articles, and academic publications on arXiv. " +
			"Use this when you need credible scientific information or research papers. " +
			"Returns titles, authors, abstracts, publication dates, and links to papers.",
	}
	SummarizerInfo = Info{
		Name:  "research_summarizer",
		Title: "Research Summarizer",
		Description: "Organize research findings into a structured outline with key points to address " +
			"and writing recommendations for a one-page scientific document.",
	}
	CitationInfo = Info{
		Name:  "citation_formatter",
		Title: "Citation Formatter",
		Description: "Check a draft for source attribution phrases and return citation best practices " +
			"with example citation formats.",
	}
)

// All lists every tool in registration order.
var All = []Info{SearchInfo, SummarizerInfo, CitationInfo}

// ErrEmptyQuery is returned by FindPapers for a blank query.
var ErrEmptyQuery = errors.New("search query is empty")

// EmptyQuery is the text returned by SearchLiterature for a blank query.
const EmptyQuery = "No search query provided. Please supply a scientific topic or keywords to search for."

const errSearching = "Error searching scientific literature"

var validate = validator.New()

// Recorder stores tool runs. *history.Store implements it.
type Recorder interface {
	Record(ctx context.Context, run history.Run) (int64, error)
}

// Toolkit runs the tools. Sources are queried in order and their results
// concatenated. A nil History disables recording.
type Toolkit struct {
	Sources    []search.Source
	Summarizer *summarize.Summarizer
	History    Recorder
	Logger     *slog.Logger
}

// New returns a Toolkit over sources with a wall-clock summarizer.
func New(logger *slog.Logger, sources ...search.Source) *Toolkit {
	return &Toolkit{
		Sources:    sources,
		Summarizer: summarize.New(),
		Logger:     logger,
	}
}

// FindPapers validates q and collects the papers every source returns.
// The only error is ErrEmptyQuery.
func (k *Toolkit) FindPapers(ctx context.Context, q types.SearchQuery) ([]types.PaperRecord, error) {
	q.Query = strings.TrimSpace(q.Query)
	if err := validate.Struct(q); err != nil {
		return nil, ErrEmptyQuery
	}

	papers := []types.PaperRecord{}
	for _, src := range k.Sources {
		found := src.Search(ctx, q)
		k.logger().Debug("source searched", "source", src.Name(), "query", q.Query, "results", len(found))
		papers = append(papers, found...)
	}
	return papers, nil
}

// SearchLiterature finds papers for q and renders up to q.Limit() of them.
func (k *Toolkit) SearchLiterature(ctx context.Context, q types.SearchQuery) types.Result {
	res := types.Guard(errSearching, func() types.Result {
		papers, err := k.FindPapers(ctx, q)
		if err != nil {
			return types.Rejected(EmptyQuery)
		}
		return search.Format(strings.TrimSpace(q.Query), papers, q.Limit())
	})
	k.record(ctx, SearchInfo.Name, q.Query, res)
	return res
}

// SummarizeFindings returns the structured summary of findings.
func (k *Toolkit) SummarizeFindings(ctx context.Context, findings string) types.Result {
	s := k.Summarizer
	if s == nil {
		s = summarize.New()
	}
	res := s.Summarize(findings)
	k.record(ctx, SummarizerInfo.Name, findings, res)
	return res
}

// AuditCitations returns the citation audit of text.
func (k *Toolkit) AuditCitations(ctx context.Context, text string) types.Result {
	res := citation.Audit(text)
	k.record(ctx, CitationInfo.Name, text, res)
	return res
}

// record stores the run when a Recorder is attached. Failures are logged.
func (k *Toolkit) record(ctx context.Context, tool, input string, res types.Result) {
	if res.Failed() {
		k.logger().Error("tool failed", "tool", tool, "error", res.Text)
	}
	if k.History == nil {
		return
	}
	run := history.Run{Tool: tool, Input: input, Output: res.Text, Kind: res.Kind}
	if _, err := k.History.Record(ctx, run); err != nil {
		k.logger().Warn("recording run failed", "tool", tool, "error", err)
	}
}

func (k *Toolkit) logger() *slog.Logger {
	if k.Logger != nil {
		return k.Logger
	}
	return slog.New(slog.DiscardHandler)
}
