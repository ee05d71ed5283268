// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "errors"

var (
	// ErrUnknownFormat is returned when a format name or file extension does
	// not map to any supported document format.
	ErrUnknownFormat = errors.New("unknown document format")

	// ErrEncodingNotSupported is returned by [NewEncoder] for formats that can
	// only be read.
	ErrEncodingNotSupported = errors.New("encoding is not supported for this format")

	// ErrSyntax is returned when the input is not well-formed for its format.
	ErrSyntax = errors.New("syntax error")

	// ErrUnsupportedKey is returned for mapping keys that are not scalars.
	ErrUnsupportedKey = errors.New("unsupported mapping key")
)
