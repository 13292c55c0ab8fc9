// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize restructures free-form research findings into a
// fixed-section outline that a writer can work from.
package summarize

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pdiddy/agentic-researcher/pkg/types"
)

const (
	// MinFindingsLength is the minimum input length in characters.
	MinFindingsLength = 50

	// MaxEchoLength caps the echoed findings in characters.
	MaxEchoLength = 2000

	truncationMarker = "..."
	dateLayout       = "2006-01-02"
	errSummarizing   = "Error summarizing research findings"
)

// InsufficientData is returned for findings shorter than MinFindingsLength.
const InsufficientData = "Insufficient research data provided. Please supply at least 50 characters of findings to summarize."

// Checklist lists the points every scientific document should cover.
var Checklist = []string{
	"Background and context of the topic",
	"Key scientific principles and mechanisms",
	"Recent findings and breakthroughs",
	"Practical applications and implications",
	"Current limitations and open challenges",
	"Future research directions",
}

// Recommendations lists the writing guidance appended to every summary.
var Recommendations = []string{
	"Open with a clear statement of the topic and why it matters",
	"Support every major claim with a cited source",
	"Explain technical terms for a general scientific audience",
	"Keep the document focused and within one page",
	"Close with a concise statement of the outlook",
}

// Summarizer builds structured summaries. Now supplies the report date.
type Summarizer struct {
	Now func() time.Time
}

// New returns a Summarizer that reads the wall clock.
func New() *Summarizer {
	return &Summarizer{Now: time.Now}
}

// Summarize summarizes findings using the wall clock for the report date.
func Summarize(findings string) types.Result {
	return New().Summarize(findings)
}

// Summarize returns the structured summary of findings. Findings shorter
// than MinFindingsLength are rejected with InsufficientData.
func (s *Summarizer) Summarize(findings string) types.Result {
	return types.Guard(errSummarizing, func() types.Result {
		if utf8.RuneCountInString(findings) < MinFindingsLength {
			return types.Rejected(InsufficientData)
		}

		var b strings.Builder
		b.WriteString("=== STRUCTURED RESEARCH SUMMARY ===\n\n")

		b.WriteString("OVERVIEW\n")
		fmt.Fprintf(&b, "- Word count: %d\n", len(strings.Fields(findings)))
		fmt.Fprintf(&b, "- Generated: %s\n\n", s.now().Format(dateLayout))

		b.WriteString("KEY POINTS TO ADDRESS\n")
		for i, item := range Checklist {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		}
		b.WriteString("\n")

		b.WriteString("WRITING RECOMMENDATIONS\n")
		for _, item := range Recommendations {
			fmt.Fprintf(&b, "- %s\n", item)
		}
		b.WriteString("\n")

		b.WriteString("ORIGINAL FINDINGS\n")
		b.WriteString(echo(findings))
		b.WriteString("\n")

		return types.OK(b.String())
	})
}

func (s *Summarizer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// echo returns findings capped at MaxEchoLength characters, with the
// truncation marker appended when anything was cut.
func echo(findings string) string {
	r := []rune(findings)
	if len(r) <= MaxEchoLength {
		return findings
	}
	return string(r[:MaxEchoLength]) + truncationMarker
}
