// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package expander

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFilePath is matched (via errors.Is) by every
	// [*InvalidFilePathError].
	ErrInvalidFilePath = errors.New("invalid file path")

	// ErrIncludeCycle is returned when a document includes itself, directly
	// or through other documents.
	ErrIncludeCycle = errors.New("include cycle")

	// ErrNotMapping is returned when the root document or an included
	// document does not parse into a mapping.
	ErrNotMapping = errors.New("document is not a mapping")

	// ErrNilLoader is returned by [New] when no loader is given.
	ErrNilLoader = errors.New("loader is nil")
)

// InvalidFilePathError reports a path that could be resolved neither as
// given nor against the fallback directory, or that could not be opened.
type InvalidFilePathError struct {
	// Path is the path as written in the document (or given to [New]).
	Path string
	// Fallback is the fallback candidate that was tried, if any.
	Fallback string
	// Err is the underlying cause, if any (e.g. fs.ErrNotExist).
	Err error
}

func (e *InvalidFilePathError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is not a file", e.Path)
	if e.Fallback != "" && e.Fallback != e.Path {
		fmt.Fprintf(&b, " (also tried %s)", e.Fallback)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *InvalidFilePathError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidFilePath) hold.
func (e *InvalidFilePathError) Is(target error) bool {
	return target == ErrInvalidFilePath
}
