// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the scientific research tools.
package types

import "strings"

// DefaultMaxResults is the number of papers requested when a query does not
// say otherwise.
const DefaultMaxResults = 5

// UnknownField is rendered in place of a missing author list or date.
const UnknownField = "Unknown"

// PaperRecord is one paper returned by a literature source. Records are
// built once per feed entry and never modified afterwards.
type PaperRecord struct {
	// Title is the whitespace-normalized paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists author display names in feed order. It may be empty.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the whitespace-normalized paper summary.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Published is the ISO date (first 10 characters of the source
	// timestamp) or "Unknown".
	Published string `json:"published" yaml:"published"`

	// Link is the entry identifier URI, or empty when the feed omits it.
	Link string `json:"link" yaml:"link"`
}

// AuthorList returns the comma-joined author names, or "Unknown" when the
// record has none.
func (p PaperRecord) AuthorList() string {
	if len(p.Authors) == 0 {
		return UnknownField
	}
	return strings.Join(p.Authors, ", ")
}

// SearchQuery is a caller-supplied literature search request.
type SearchQuery struct {
	// Query is the topic or keywords to search for.
	Query string `json:"query" yaml:"query" validate:"required"`

	// MaxResults bounds the number of papers requested and rendered.
	// Zero or negative means DefaultMaxResults. The intended range is
	// 1-10 but larger values are passed through.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Limit returns MaxResults, substituting the default for non-positive values.
func (q SearchQuery) Limit() int {
	if q.MaxResults <= 0 {
		return DefaultMaxResults
	}
	return q.MaxResults
}
