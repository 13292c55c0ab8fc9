package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/agentic-researcher/internal/mcpserver"
	"github.com/pdiddy/agentic-researcher/internal/tools"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the research tools over the Model Context Protocol on stdio",
	Long: `Serve starts an MCP server on stdin/stdout exposing scientific_search,
research_summarizer, and citation_formatter. Point an agent framework's MCP
client at this command to give its agents the tools.

Logs go to stderr so they never mix with protocol messages.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		kit, cleanup, err := newToolkit(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		names := make([]string, len(tools.All))
		for i, t := range tools.All {
			names[i] = t.Name
		}
		fmt.Fprintf(os.Stderr, "Serving MCP tools on stdio: %v\n", names)

		return mcpserver.ServeStdio(cmd.Context(), mcpserver.New(kit, version), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
