package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/agentic-researcher/internal/search"
	"github.com/pdiddy/agentic-researcher/internal/tools"
	"github.com/pdiddy/agentic-researcher/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [topic]",
	Short: "Search arXiv for scientific papers on a topic",
	Long: `Search queries arXiv for papers matching a topic, ranked by relevance, and
prints titles, authors, publication dates, abstracts, and links.

A failed or rate-limited request prints the "no papers found" report rather
than an error. Use --format to print JSON, YAML, or CSL-YAML instead, and
--save to keep the results in a query file.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	kit, cleanup, err := newToolkit(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	query, _ := cmd.Flags().GetString("query")
	if query == "" {
		query = strings.Join(args, " ")
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults == 0 {
		maxResults = cfg.Search.MaxResults
	}
	q := types.SearchQuery{Query: query, MaxResults: maxResults}

	format, _ := cmd.Flags().GetString("format")
	savePath, _ := cmd.Flags().GetString("save")
	out := cmd.OutOrStdout()

	if format == "text" && savePath == "" {
		printResult(out, kit.SearchLiterature(cmd.Context(), q))
		return nil
	}

	papers, err := kit.FindPapers(cmd.Context(), q)
	if err != nil {
		fmt.Fprintln(out, tools.EmptyQuery)
		return nil
	}
	q.Query = strings.TrimSpace(q.Query)
	if len(papers) > q.Limit() {
		papers = papers[:q.Limit()]
	}

	if savePath != "" {
		if err := search.WriteQueryFile(savePath, q, sourceNames(kit), papers); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %d results to %s\n", len(papers), savePath)
	}

	switch format {
	case "text":
		printResult(out, search.Format(q.Query, papers, q.Limit()))
		return nil
	case "json":
		return search.FormatJSON(q.Query, papers, out)
	case "yaml":
		return search.FormatYAML(q, papers, out)
	case "csl":
		return search.FormatCSL(papers, out)
	default:
		return fmt.Errorf("unknown format %q: use text, json, yaml, or csl", format)
	}
}

func sourceNames(kit *tools.Toolkit) []string {
	names := make([]string, len(kit.Sources))
	for i, s := range kit.Sources {
		names[i] = s.Name()
	}
	return names
}

func init() {
	searchCmd.Flags().StringP("query", "q", "", "scientific topic or keywords (default: the arguments)")
	searchCmd.Flags().IntP("max-results", "n", 0, "maximum number of results to return (default from config, 5)")
	searchCmd.Flags().String("format", "text", "output format: text, json, yaml, csl")
	searchCmd.Flags().String("save", "", "save the query and results to a YAML query file")

	rootCmd.AddCommand(searchCmd)
}
