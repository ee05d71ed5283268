// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-cfg-expand/internal/codec"
	"github.com/MKhiriev/go-cfg-expand/internal/config"
	"github.com/MKhiriev/go-cfg-expand/internal/expander"
	"github.com/MKhiriev/go-cfg-expand/internal/logger"
)

var errNoInput = errors.New("no input document: pass a path or set CFGEXPAND_INPUT_PATH")

// app holds what every sub-command needs once the root command has resolved
// the configuration.
type app struct {
	flags *config.StructuredConfig
	cfg   *config.StructuredConfig
	log   *logger.Logger
	build buildInfo
}

func newRootCmd(build buildInfo) *cobra.Command {
	a := &app{build: build}

	root := &cobra.Command{
		Use:   "cfgexpand",
		Short: "Expand @file inclusion directives in configuration documents",
		Long: `cfgexpand loads a YAML, JSON or TOML document and replaces every
"@file" key in its mappings with the contents of the named document.
Included documents are expanded too. Relative paths are tried as given
first, then against the directory of the root document.`,
		Version: build.version,
		// errors are ours to report; usage output would only hide them
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.SetVersionTemplate(`{{printf "cfgexpand version %s\n" .Version}}`)

	a.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newExpandCmd(a),
		newRawCmd(a),
		newServeCmd(a),
		newVersionCmd(build),
	)

	return root
}

func (a *app) init() error {
	cfg, err := config.GetStructuredConfig(a.flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	if cfg.Log.Console {
		a.log = logger.NewConsoleLogger("cfgexpand", level)
	} else {
		a.log = logger.NewLogger("cfgexpand", level)
	}
	a.cfg = cfg

	a.log.Debug().Any("config", cfg).Msg("received configs")
	return nil
}

// inputPath prefers the positional argument over the configured path.
func (a *app) inputPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if a.cfg.Input.Path != "" {
		return a.cfg.Input.Path, nil
	}
	return "", errNoInput
}

// newExpander builds the expander for path honoring the input format and
// laziness settings.
func (a *app) newExpander(path string) (*expander.ConfigExpander, error) {
	opts := []expander.Option{expander.WithLogger(a.log)}
	if a.cfg.Input.Lazy {
		opts = append(opts, expander.WithLazy())
	}

	if a.cfg.Input.Format == "" {
		return expander.NewForPath(path, opts...)
	}

	format, err := codec.ParseFormat(a.cfg.Input.Format)
	if err != nil {
		return nil, err
	}
	loader, err := codec.NewLoader(format)
	if err != nil {
		return nil, err
	}
	return expander.New(loader, path, opts...)
}

func (a *app) outputEncoder() (codec.Encoder, error) {
	format, err := codec.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return codec.NewEncoder(format)
}
