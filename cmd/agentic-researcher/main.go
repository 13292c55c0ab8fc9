// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the agentic-researcher CLI.
// It exposes the scientific research tools as subcommands and as an MCP
// server for agent frameworks.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/agentic-researcher/internal/history"
	"github.com/pdiddy/agentic-researcher/internal/search"
	"github.com/pdiddy/agentic-researcher/internal/tools"
	"github.com/pdiddy/agentic-researcher/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the agentic-researcher CLI.
var rootCmd = &cobra.Command{
	Use:   "agentic-researcher",
	Short: "Scientific literature tools for research, writing, and editing agents",
	Long: `agentic-researcher provides the tools a research → write → edit agent crew
relies on: an arXiv literature search, a research findings summarizer, and a
citation auditor.

Each tool is a subcommand. The serve subcommand exposes the same tools over
the Model Context Protocol on stdio so an agent framework can call them.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./agentic-researcher.yaml or ~/.config/agentic-researcher/config.yaml)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.Duration("timeout", 0, "timeout for a literature search")
	pf.Bool("history", false, "record tool runs in the history database")
	pf.String("history-db", "", "history database path")

	viper.BindPFlag("log_level", pf.Lookup("log-level"))
	viper.BindPFlag("search.timeout", pf.Lookup("timeout"))
	viper.BindPFlag("history.enabled", pf.Lookup("history"))
	viper.BindPFlag("history.path", pf.Lookup("history-db"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("agentic-researcher")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "agentic-researcher"))
		}
	}

	viper.SetEnvPrefix("AGENTIC_RESEARCHER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setConfigDefaults(viper.GetViper(), types.DefaultToolsConfig())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setConfigDefaults registers every default so AutomaticEnv and Unmarshal
// see the full key set.
func setConfigDefaults(v *viper.Viper, d types.ToolsConfig) {
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("search.timeout", d.Search.Timeout)
	v.SetDefault("search.user_agent", d.Search.UserAgent)
	v.SetDefault("search.max_results", d.Search.MaxResults)
	v.SetDefault("search.max_retries", d.Search.MaxRetries)
	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("history.path", d.History.Path)
}

// loadConfig decodes and validates the merged configuration.
func loadConfig(v *viper.Viper) (types.ToolsConfig, error) {
	cfg := types.DefaultToolsConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger returns a text logger on stderr at the configured level.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// newToolkit builds the Toolkit from configuration. The returned cleanup
// closes the history database when one was opened.
func newToolkit(cfg types.ToolsConfig) (*tools.Toolkit, func(), error) {
	logger := newLogger(cfg.LogLevel)
	kit := tools.New(logger, search.NewArxivClient(cfg.Search, logger))

	if !cfg.History.Enabled {
		return kit, func() {}, nil
	}
	store, err := history.Open(cfg.History)
	if err != nil {
		return nil, nil, err
	}
	kit.History = store
	return kit, func() { store.Close() }, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
