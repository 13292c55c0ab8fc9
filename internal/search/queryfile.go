// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/agentic-researcher/pkg/types"
)

// QueryFile is the on-disk representation of a search query and its results.
// A researcher can save a search to a file and reload the papers later
// without querying arXiv again.
type QueryFile struct {
	Query   types.SearchQuery   `yaml:"query"`
	Sources []string            `yaml:"sources,omitempty"`
	Results []types.PaperRecord `yaml:"results"`
	Summary QuerySummary        `yaml:"summary"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp,omitempty"`
}

// WriteQueryFile saves the query and its results to a YAML file.
func WriteQueryFile(path string, query types.SearchQuery, sources []string, results []types.PaperRecord) error {
	qf := QueryFile{
		Query:   query,
		Sources: sources,
		Results: results,
		Summary: QuerySummary{
			Total:     len(results),
			Timestamp: time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	if qf.Query.Query == "" {
		return nil, fmt.Errorf("query file %s has no query", path)
	}
	return &qf, nil
}

// FormatYAML writes the query and results to w in query file layout,
// without the timestamp summary.
func FormatYAML(query types.SearchQuery, results []types.PaperRecord, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(QueryFile{
		Query:   query,
		Results: results,
		Summary: QuerySummary{Total: len(results)},
	})
}
