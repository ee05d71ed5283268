// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration of the cfgexpand tool.
// It is populated by merging built-in defaults, an optional settings file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — environment variable name for scalar fields.
//   - yaml      — key in the settings file.
type StructuredConfig struct {
	// Input describes the root document to expand.
	Input Input `envPrefix:"INPUT_" yaml:"input"`

	// Output controls how expanded documents are printed.
	Output Output `envPrefix:"OUTPUT_" yaml:"output"`

	// Server holds the settings of the "serve" command.
	Server Server `envPrefix:"SERVER_" yaml:"server"`

	// Log controls the tool's own logging.
	Log Log `envPrefix:"LOG_" yaml:"log"`

	// ConfigFilePath is the optional path to a settings file (YAML, JSON or
	// TOML, "@file" directives allowed). It is taken from flags or the
	// environment and is never read from the file itself.
	// Env: CFGEXPAND_CONFIG
	ConfigFilePath string `env:"CONFIG" yaml:"-"`
}

// Input describes the root document.
type Input struct {
	// Path of the root document.
	// Env: CFGEXPAND_INPUT_PATH
	Path string `env:"PATH" yaml:"path"`

	// Format forces a document format ("yaml", "json", "toml"). Inferred
	// from the file extension when empty.
	// Env: CFGEXPAND_INPUT_FORMAT
	Format string `env:"FORMAT" yaml:"format"`

	// Lazy defers loading until the document is first needed.
	// Env: CFGEXPAND_INPUT_LAZY
	Lazy bool `env:"LAZY" yaml:"lazy"`
}

// Output controls document rendering.
type Output struct {
	// Format of printed documents: "yaml" or "json".
	// Env: CFGEXPAND_OUTPUT_FORMAT
	Format string `env:"FORMAT" yaml:"format"`
}

// Server holds network and timeout settings for the HTTP surface.
type Server struct {
	// HTTPAddress is the TCP address to listen on, in "host:port" format.
	// Env: CFGEXPAND_SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" yaml:"address"`

	// RequestTimeout bounds the handling of a single request (e.g. "10s").
	// Env: CFGEXPAND_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" yaml:"request_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: CFGEXPAND_SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout"`
}

// Log controls logging.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: CFGEXPAND_LOG_LEVEL
	Level string `env:"LEVEL" yaml:"level"`

	// Console switches from JSON lines to human readable output.
	// Env: CFGEXPAND_LOG_CONSOLE
	Console bool `env:"CONSOLE" yaml:"console"`
}

// Defaults returns the built-in settings every other source is merged over.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Output: Output{Format: "yaml"},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Log: Log{Level: "info", Console: true},
	}
}

// GetStructuredConfig loads, merges, and validates the tool configuration
// from all sources in the following priority order (first source wins for
// non-zero fields):
//  1. Command-line flags registered with [BindFlags]
//  2. Environment variables (prefix CFGEXPAND_)
//  3. Settings file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// flags may be nil when no flag set is involved. Returns an error if any
// source fails to load or the final config fails validation.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withFile().
		withDefaults().
		build()
}

// BindFlags registers the tool flags on fs and returns the struct they
// write into once fs is parsed. Pass it to [GetStructuredConfig].
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := new(StructuredConfig)

	fs.StringVarP(&cfg.ConfigFilePath, "config", "c", "", "settings file path")
	fs.StringVarP(&cfg.Input.Format, "format", "f", "", "input format: yaml, json or toml (default: from extension)")
	fs.BoolVar(&cfg.Input.Lazy, "lazy", false, "defer loading until the document is first needed")
	fs.StringVarP(&cfg.Output.Format, "output", "o", "", "output format: yaml or json")
	fs.Var((*netAddress)(&cfg.Server.HTTPAddress), "address", "HTTP listen address host:port (serve)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "request timeout, e.g. 10s (serve)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "log level: debug, info, warn, error")

	return cfg
}
