// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the cfgexpand tool itself.
//
// Configuration is assembled from multiple sources. The first source that
// sets a field wins:
//  1. Command-line flags (see [BindFlags])
//  2. Environment variables prefixed with CFGEXPAND_
//  3. Settings file named by --config or CFGEXPAND_CONFIG
//  4. Built-in defaults (see [Defaults])
//
// The settings file may itself use "@file" directives.
package config
