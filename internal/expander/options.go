// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package expander

import "github.com/MKhiriev/go-cfg-expand/internal/logger"

// Option configures a [ConfigExpander].
type Option func(*ConfigExpander)

// WithLazy defers all I/O until the first call to [ConfigExpander.Load].
func WithLazy() Option {
	return func(e *ConfigExpander) {
		e.lazy = true
	}
}

// WithLogger sets the logger used for resolution and include events.
func WithLogger(l *logger.Logger) Option {
	return func(e *ConfigExpander) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithFileSystem replaces the operating system file access.
func WithFileSystem(fsys FileSystem) Option {
	return func(e *ConfigExpander) {
		if fsys != nil {
			e.fs = fsys
		}
	}
}
