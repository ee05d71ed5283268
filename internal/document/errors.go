// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import "errors"

var (
	// ErrInvalidDirective is returned when a "@file" key bound to anything
	// other than a string is expanded.
	ErrInvalidDirective = errors.New("invalid inclusion directive")

	// ErrUnsupportedValue is returned by [FromAny] for Go values that have no
	// document representation (channels, funcs, non-string map keys, ...).
	ErrUnsupportedValue = errors.New("unsupported value type")
)
