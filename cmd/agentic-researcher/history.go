// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/agentic-researcher/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List or show recorded tool runs",
	Long: `History reads the run history database written when tools run with
--history (or history.enabled in the config file). Without --show it lists
the most recent runs; with --show it prints one run's full output.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	store, err := history.Open(cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	jsonOut, _ := cmd.Flags().GetBool("json")

	if id, _ := cmd.Flags().GetInt64("show"); id > 0 {
		run, err := store.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		if jsonOut {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(run)
		}
		fmt.Fprintf(out, "Run %d  %s  %s  %s\n", run.ID, run.Tool, run.Kind, run.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(out, "Input: %s\n\n", run.Input)
		fmt.Fprint(out, run.Output)
		if !strings.HasSuffix(run.Output, "\n") {
			fmt.Fprintln(out)
		}
		return nil
	}

	tool, _ := cmd.Flags().GetString("tool")
	contains, _ := cmd.Flags().GetString("contains")
	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(cmd.Context(), history.ListOptions{Tool: tool, Contains: contains, Limit: limit})
	if err != nil {
		return err
	}

	if jsonOut {
		if runs == nil {
			runs = []history.Run{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No recorded runs.")
		return nil
	}
	fmt.Fprintf(out, "%-5s  %-19s  %-20s  %-8s  %s\n", "ID", "Time", "Tool", "Kind", "Input")
	fmt.Fprintln(out, strings.Repeat("-", 100))
	for _, r := range runs {
		fmt.Fprintf(out, "%-5d  %-19s  %-20s  %-8s  %s\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Tool, r.Kind, oneLine(r.Input, 40))
	}
	return nil
}

// oneLine flattens s to a single line of at most n characters.
func oneLine(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	historyCmd.Flags().String("tool", "", "filter by tool: scientific_search, research_summarizer, citation_formatter")
	historyCmd.Flags().String("contains", "", "filter by text contained in the input")
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyCmd.Flags().Int64("show", 0, "print the full output of the run with this ID")
	historyCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(historyCmd)
}
