// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries literature sources and renders the returned papers
// as report fragments, JSON, CSL-YAML, or saved query files.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/agentic-researcher/pkg/types"
)

// Source searches a single bibliographic API. Search never fails; a source
// that cannot answer returns no records.
type Source interface {
	Name() string
	Search(ctx context.Context, q types.SearchQuery) []types.PaperRecord
}

// abstractPreview is the number of abstract characters shown per paper.
const abstractPreview = 300

// errFormatting prefixes the Result text when report assembly fails.
const errFormatting = "Error searching scientific literature"

// Format renders up to maxResults papers as a numbered report for query.
// An empty result set yields a "no papers found" message. A panic during
// assembly is returned as an error Result.
func Format(query string, results []types.PaperRecord, maxResults int) types.Result {
	return types.Guard(errFormatting, func() types.Result {
		if len(results) == 0 {
			return types.OK(fmt.Sprintf("No scientific papers found for query: %s. Try broader or different keywords.", query))
		}

		if maxResults < len(results) {
			results = results[:max(maxResults, 0)]
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Scientific Literature Search Results for '%s':\n\n", query)
		for i, p := range results {
			fmt.Fprintf(&b, "%d. **%s**\n", i+1, p.Title)
			fmt.Fprintf(&b, "   Authors: %s\n", p.AuthorList())
			fmt.Fprintf(&b, "   Published: %s\n", p.Published)
			// The ellipsis is appended even when the abstract is shorter
			// than the preview.
			fmt.Fprintf(&b, "   Abstract: %s...\n", prefix(p.Abstract, abstractPreview))
			fmt.Fprintf(&b, "   Link: %s\n\n", p.Link)
		}
		return types.OK(b.String())
	})
}

// jsonOutput is the JSON shape of a search.
type jsonOutput struct {
	Query   string              `json:"query"`
	Results []types.PaperRecord `json:"results"`
}

// FormatJSON writes the query and its results as indented JSON to w.
func FormatJSON(query string, results []types.PaperRecord, w io.Writer) error {
	if results == nil {
		results = []types.PaperRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonOutput{Query: query, Results: results})
}
