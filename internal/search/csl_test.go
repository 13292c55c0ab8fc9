package search

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdiddy/agentic-researcher/pkg/types"
)

func TestToCSLItemArxiv(t *testing.T) {
	r := types.PaperRecord{
		Title:     "Attention Is All You Need",
		Authors:   []string{"Ashish Vaswani", "Noam Shazeer"},
		Abstract:  "The dominant sequence transduction models...",
		Published: "2017-06-12",
		Link:      "http://arxiv.org/abs/1706.03762v7",
	}

	item := toCSLItem(0, r)

	if item.ID != "1706.03762" {
		t.Errorf("ID = %q, want %q", item.ID, "1706.03762")
	}
	if item.Type != "article" {
		t.Errorf("Type = %q, want %q", item.Type, "article")
	}
	if item.Number != "arXiv:1706.03762" {
		t.Errorf("Number = %q, want %q", item.Number, "arXiv:1706.03762")
	}
	if item.URL != r.Link {
		t.Errorf("URL = %q, want %q", item.URL, r.Link)
	}
	if len(item.Author) != 2 || item.Author[0].Family != "Vaswani" || item.Author[0].Given != "Ashish" {
		t.Errorf("Author = %+v", item.Author)
	}
	if item.Issued == nil || item.Issued.DateParts[0][0] != 2017 || item.Issued.DateParts[0][1] != 6 || item.Issued.DateParts[0][2] != 12 {
		t.Errorf("Issued = %+v, want 2017-06-12", item.Issued)
	}
}

func TestToCSLItemWithoutArxivLink(t *testing.T) {
	r := types.PaperRecord{Title: "Untitled", Published: "Unknown"}

	item := toCSLItem(2, r)

	if item.ID != "paper-3" {
		t.Errorf("ID = %q, want positional key %q", item.ID, "paper-3")
	}
	if item.Number != "" {
		t.Errorf("Number should be empty without an arXiv ID, got %q", item.Number)
	}
	if item.Issued != nil {
		t.Errorf("Issued should be nil for an unknown date, got %+v", item.Issued)
	}
}

func TestParseAuthorName(t *testing.T) {
	tests := []struct {
		in   string
		want CSLName
	}{
		{"Ada Lovelace", CSLName{Given: "Ada", Family: "Lovelace"}},
		{"A. H. Castro Neto", CSLName{Given: "A. H. Castro", Family: "Neto"}},
		{"Plato", CSLName{Literal: "Plato"}},
		{"  ", CSLName{}},
	}
	for _, tt := range tests {
		if got := parseAuthorName(tt.in); got != tt.want {
			t.Errorf("parseAuthorName(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestExtractArxivID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"http://arxiv.org/abs/2301.07041v1", "2301.07041"},
		{"http://arxiv.org/abs/2301.07041", "2301.07041"},
		{"http://arxiv.org/abs/hep-th/9901001v3", "hep-th/9901001"},
		{"https://example.com/paper", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := extractArxivID(tt.in); got != tt.want {
			t.Errorf("extractArxivID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCSL(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatCSL(samplePapers(2), &buf); err != nil {
		t.Fatalf("FormatCSL: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"2401.00001", "2401.00002", "type: article", "date-parts:", "family: Lovelace"} {
		if !strings.Contains(out, want) {
			t.Errorf("CSL output missing %q:\n%s", want, out)
		}
	}
}
