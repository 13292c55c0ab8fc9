// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation audits prose for attribution phrases and reports on how
// well the text cites its sources.
package citation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/agentic-researcher/pkg/types"
)

// MinTextLength is the minimum input length in characters.
const MinTextLength = 20

// TooShort is returned for text shorter than MinTextLength.
const TooShort = "Text too short to analyze for citations. Please provide at least 20 characters of text."

const errAuditing = "Error formatting citations"

// Phrases are the attribution indicators searched for, in report order.
// Matching is case-insensitive substring containment.
var Phrases = []string{
	"research shows",
	"studies show",
	"according to",
	"data shows",
	"evidence suggests",
	"researchers found",
	"study found",
	"published in",
	"scientists discovered",
}

// BestPractices is appended to every audit.
var BestPractices = []string{
	"Cite primary research articles rather than secondary summaries",
	"Include author names, publication year, and journal or venue",
	"Prefer peer-reviewed sources published within the last five years",
	"Provide a DOI or stable link for every reference",
	"Use one citation style consistently throughout the document",
}

// ExampleFormats shows one citation in each supported style.
var ExampleFormats = []string{
	"APA: Doudna, J. A., & Charpentier, E. (2014). The new frontier of genome engineering with CRISPR-Cas9. Science, 346(6213), 1258096.",
	"In-text: (Doudna & Charpentier, 2014)",
	"arXiv: Vaswani, A., et al. (2017). Attention Is All You Need. arXiv:1706.03762",
}

// Detect returns the Phrases contained in text, in Phrases order.
func Detect(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, p := range Phrases {
		if strings.Contains(lower, p) {
			found = append(found, p)
		}
	}
	return found
}

// Audit scans text for attribution phrases and returns the advisory report.
// Text shorter than MinTextLength is rejected with TooShort.
func Audit(text string) types.Result {
	return types.Guard(errAuditing, func() types.Result {
		if utf8.RuneCountInString(text) < MinTextLength {
			return types.Rejected(TooShort)
		}

		var b strings.Builder
		b.WriteString("=== CITATION ANALYSIS ===\n\n")

		if found := Detect(text); len(found) > 0 {
			b.WriteString("CITATION INDICATORS FOUND:\n")
			for _, p := range found {
				fmt.Fprintf(&b, "- %q\n", p)
			}
		} else {
			b.WriteString("WARNING: NO CITATION INDICATORS FOUND\n")
			b.WriteString("Claims in this text are not attributed to any source.\n")
		}
		b.WriteString("\n")

		b.WriteString("CITATION BEST PRACTICES\n")
		for i, item := range BestPractices {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		}
		b.WriteString("\n")

		b.WriteString("EXAMPLE CITATION FORMATS\n")
		for _, item := range ExampleFormats {
			fmt.Fprintf(&b, "- %s\n", item)
		}

		return types.OK(b.String())
	})
}
