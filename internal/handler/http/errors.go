// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors reported by the configuration handlers. Callers can match
// against them with [errors.Is].
var (
	// ErrKeyNotFound is returned when a requested key path does not exist
	// in the expanded configuration.
	ErrKeyNotFound = errors.New("key not found")

	// ErrRawNotLoaded is returned when the raw document is requested but
	// the source has nothing loaded.
	ErrRawNotLoaded = errors.New("raw document is not loaded")
)
