package search

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/agentic-researcher/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID       string    `yaml:"id"`
	Type     string    `yaml:"type"`
	Title    string    `yaml:"title"`
	Author   []CSLName `yaml:"author,omitempty"`
	Abstract string    `yaml:"abstract,omitempty"`
	Issued   *CSLDate  `yaml:"issued,omitempty"`
	URL      string    `yaml:"URL,omitempty"`
	Number   string    `yaml:"number,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes papers as a CSL-YAML list to w.
func FormatCSL(results []types.PaperRecord, w io.Writer) error {
	items := make([]CSLItem, len(results))
	for i, r := range results {
		items[i] = toCSLItem(i, r)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts the i-th PaperRecord to a CSLItem. The arXiv ID becomes
// the citation key; records without one get a positional key.
func toCSLItem(i int, r types.PaperRecord) CSLItem {
	item := CSLItem{
		ID:       fmt.Sprintf("paper-%d", i+1),
		Type:     "article",
		Title:    r.Title,
		Abstract: r.Abstract,
		URL:      r.Link,
	}
	if id := extractArxivID(r.Link); id != "" {
		item.ID = id
		item.Number = "arXiv:" + id
	}

	for _, a := range r.Authors {
		item.Author = append(item.Author, parseAuthorName(a))
	}

	if t, err := time.Parse("2006-01-02", r.Published); err == nil {
		item.Issued = &CSLDate{
			DateParts: [][]int{{t.Year(), int(t.Month()), t.Day()}},
		}
	}

	return item
}

// parseAuthorName turns "Given Names Family" into a CSL name. The last
// word is the family name; a one-word name is kept as a literal.
func parseAuthorName(name string) CSLName {
	words := strings.Fields(name)
	switch n := len(words); n {
	case 0:
		return CSLName{}
	case 1:
		return CSLName{Literal: words[0]}
	default:
		return CSLName{Given: strings.Join(words[:n-1], " "), Family: words[n-1]}
	}
}

// extractArxivID returns the versionless arXiv identifier from an abstract
// link ("http://arxiv.org/abs/2301.07041v1" gives "2301.07041"), or "" when
// the link is not an arXiv abstract page.
func extractArxivID(link string) string {
	_, id, ok := strings.Cut(link, "/abs/")
	if !ok {
		return ""
	}
	if i := strings.LastIndexByte(id, 'v'); i > 0 && allDigits(id[i+1:]) {
		return id[:i]
	}
	return id
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
