// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [GetStructuredConfig] when a configuration
// group is incomplete or invalid.
var (
	// ErrInvalidInputConfigs indicates an unknown input format.
	ErrInvalidInputConfigs = errors.New("invalid input configuration")
	// ErrInvalidOutputConfigs indicates an unknown output format or one the
	// tool cannot write (for example, toml).
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidServerConfigs indicates missing HTTP address or timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
