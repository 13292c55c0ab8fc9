// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/agentic-researcher/internal/httputil"
	"github.com/pdiddy/agentic-researcher/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// maxFeedBytes caps the response body read from the API.
const maxFeedBytes = 16 << 20

// ArxivClient queries the arXiv Atom API.
type ArxivClient struct {
	Client *http.Client
	Config types.SearchConfig
	Logger *slog.Logger
}

// NewArxivClient returns a client using a shared http.Client whose timeout
// matches cfg.Timeout.
func NewArxivClient(cfg types.SearchConfig, logger *slog.Logger) *ArxivClient {
	return &ArxivClient{
		Client: &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Logger: logger,
	}
}

// Name returns the source identifier.
func (c *ArxivClient) Name() string { return "arxiv" }

// Search queries arXiv and returns the parsed papers. It never fails: a
// non-200 status, transport error, timeout, or malformed feed yields an
// empty slice and a warning on the logger.
func (c *ArxivClient) Search(ctx context.Context, q types.SearchQuery) []types.PaperRecord {
	papers, err := c.fetch(ctx, q)
	if err != nil {
		c.logger().Warn("arxiv search failed", "query", q.Query, "error", err)
		return []types.PaperRecord{}
	}
	c.logger().Debug("arxiv search", "query", q.Query, "results", len(papers))
	return papers
}

func (c *ArxivClient) fetch(ctx context.Context, q types.SearchQuery) ([]types.PaperRecord, error) {
	if c.Config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Config.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, buildArxivURL(q), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.Config.UserAgent != "" {
		req.Header.Set("User-Agent", c.Config.UserAgent)
	}

	var resp *http.Response
	if c.Config.MaxRetries > 0 {
		resp, err = httputil.DoWithRetry(ctx, c.httpClient(), req, c.Config.MaxRetries, c.logger())
	} else {
		resp, err = c.httpClient().Do(req)
	}
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	return parseArxivFeed(io.LimitReader(resp.Body, maxFeedBytes))
}

func (c *ArxivClient) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return http.DefaultClient
}

func (c *ArxivClient) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// buildArxivURL encodes the query as all:<query> sorted by relevance,
// starting at offset 0 with a window of q.Limit() results.
func buildArxivURL(q types.SearchQuery) string {
	params := url.Values{}
	params.Set("search_query", "all:"+q.Query)
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(q.Limit()))
	params.Set("sortBy", "relevance")
	params.Set("sortOrder", "descending")
	return arxivAPIBase + "?" + params.Encode()
}

// arXiv Atom feed XML structures. Every element lives in the Atom
// namespace; pointer fields distinguish an absent element from an empty one.
type arxivFeed struct {
	Entries []arxivEntry `xml:"http://www.w3.org/2005/Atom entry"`
}

type arxivEntry struct {
	ID        *string       `xml:"http://www.w3.org/2005/Atom id"`
	Title     *string       `xml:"http://www.w3.org/2005/Atom title"`
	Summary   *string       `xml:"http://www.w3.org/2005/Atom summary"`
	Published *string       `xml:"http://www.w3.org/2005/Atom published"`
	Authors   []arxivAuthor `xml:"http://www.w3.org/2005/Atom author"`
}

type arxivAuthor struct {
	Name *string `xml:"http://www.w3.org/2005/Atom name"`
}

// parseArxivFeed decodes an Atom feed. Entries without both a title and a
// summary element are skipped.
func parseArxivFeed(r io.Reader) ([]types.PaperRecord, error) {
	var feed arxivFeed
	if err := xml.NewDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	papers := make([]types.PaperRecord, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		if entry.Title == nil || entry.Summary == nil {
			continue
		}

		p := types.PaperRecord{
			Title:     normalizeText(*entry.Title),
			Abstract:  normalizeText(*entry.Summary),
			Published: publishedDate(entry.Published),
		}
		if entry.ID != nil {
			p.Link = strings.TrimSpace(*entry.ID)
		}
		for _, a := range entry.Authors {
			if a.Name == nil {
				continue
			}
			if name := strings.TrimSpace(*a.Name); name != "" {
				p.Authors = append(p.Authors, name)
			}
		}
		papers = append(papers, p)
	}
	return papers, nil
}

// normalizeText trims surrounding whitespace, then replaces each remaining
// newline with a space.
func normalizeText(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
}

// publishedDate keeps the date part of an RFC 3339 timestamp
// ("2017-06-12T17:57:34Z" → "2017-06-12").
func publishedDate(ts *string) string {
	if ts == nil {
		return types.UnknownField
	}
	s := strings.TrimSpace(*ts)
	if s == "" {
		return types.UnknownField
	}
	return prefix(s, 10)
}

// prefix returns the first n characters of s.
func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
