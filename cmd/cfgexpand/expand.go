// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-cfg-expand/internal/document"
	"github.com/MKhiriev/go-cfg-expand/internal/expander"
)

func newExpandCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "expand [file]",
		Short: "Print the document with every @file directive resolved",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, args, func(e *expander.ConfigExpander) (*document.Mapping, error) {
				return e.Load()
			})
		},
	}
}

func newRawCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "raw [file]",
		Short: "Print the root document as parsed, directives left in place",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, args, func(e *expander.ConfigExpander) (*document.Mapping, error) {
				if _, err := e.Load(); err != nil {
					return nil, err
				}
				raw, _ := e.Raw()
				return raw, nil
			})
		},
	}
}

// print builds the expander for the input, picks a document with pick and
// writes it to the command output.
func (a *app) print(cmd *cobra.Command, args []string, pick func(*expander.ConfigExpander) (*document.Mapping, error)) error {
	path, err := a.inputPath(args)
	if err != nil {
		return err
	}

	encoder, err := a.outputEncoder()
	if err != nil {
		return err
	}

	e, err := a.newExpander(path)
	if err != nil {
		return err
	}

	doc, err := pick(e)
	if err != nil {
		return err
	}

	a.log.Debug().Str("path", e.Path()).Int("files", e.Files()).Msg("writing document")
	return encoder.Encode(cmd.OutOrStdout(), doc)
}
