// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// HTTPConfig holds shared HTTP settings used by sources that make network requests.
type HTTPConfig struct {
	// Timeout bounds a whole search call, including any retries.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "agentic-researcher/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent" validate:"required"`
}

// SearchConfig holds settings for the literature search tool.
type SearchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// MaxResults is the default number of papers per query (default 5).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results" validate:"gte=0"`

	// MaxRetries is the number of retries on HTTP 429. Zero disables
	// retrying: a rate-limited search yields no results.
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries" validate:"gte=0,lte=10"`
}

// HistoryConfig controls the optional run history database.
type HistoryConfig struct {
	// Enabled turns recording of tool runs on.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Path is the SQLite database file.
	Path string `json:"path" yaml:"path" mapstructure:"path" validate:"required_if=Enabled true"`
}

// ToolsConfig groups the configuration of every tool and outer surface.
type ToolsConfig struct {
	Search  SearchConfig  `json:"search" yaml:"search" mapstructure:"search"`
	History HistoryConfig `json:"history" yaml:"history" mapstructure:"history"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

// DefaultToolsConfig returns the configuration used when no file, flag, or
// environment variable overrides a value.
func DefaultToolsConfig() ToolsConfig {
	return ToolsConfig{
		Search: SearchConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   10 * time.Second,
				UserAgent: "agentic-researcher/0.1",
			},
			MaxResults: DefaultMaxResults,
		},
		History: HistoryConfig{
			Path: ".agentic-researcher/history.db",
		},
		LogLevel: "warn",
	}
}

// Validate checks field constraints and reports the first violation.
func (c ToolsConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
