// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type buildInfo struct {
	version string
	date    string
	commit  string
}

// currentBuild reads the values injected with -ldflags "-X main.buildVersion=...".
func currentBuild() buildInfo {
	info := buildInfo{version: buildVersion, date: buildDate, commit: buildCommit}

	if info.version == "" {
		info.version = "N/A"
	}

	if info.date == "" {
		info.date = "N/A"
	}

	if info.commit == "" {
		info.commit = "N/A"
	}

	return info
}

func (b buildInfo) print(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", b.version)
	fmt.Fprintf(w, "Build date: %s\n", b.date)
	fmt.Fprintf(w, "Build commit: %s\n", b.commit)
}

func newVersionCmd(build buildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			build.print(cmd.OutOrStdout())
		},
	}
}
