// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command cfgexpand loads a configuration document, resolves its "@file"
// inclusion directives and prints or serves the result.
package main

import (
	"os"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd(currentBuild()).Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}
