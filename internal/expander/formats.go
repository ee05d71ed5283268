// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package expander

import (
	"github.com/MKhiriev/go-cfg-expand/internal/codec"
)

// NewYAML creates an expander whose documents are all YAML.
func NewYAML(path string, opts ...Option) (*ConfigExpander, error) {
	return New(codec.Decompressing(codec.YAML{}), path, opts...)
}

// NewJSON creates an expander whose documents are all JSON (comments and
// trailing commas allowed).
func NewJSON(path string, opts ...Option) (*ConfigExpander, error) {
	return New(codec.Decompressing(codec.JSON{}), path, opts...)
}

// NewTOML creates an expander whose documents are all TOML.
func NewTOML(path string, opts ...Option) (*ConfigExpander, error) {
	return New(codec.Decompressing(codec.TOML{}), path, opts...)
}

// NewForPath picks the loader from the root document's extension. Included
// documents are parsed with the same loader.
func NewForPath(path string, opts ...Option) (*ConfigExpander, error) {
	format, err := codec.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	loader, err := codec.NewLoader(format)
	if err != nil {
		return nil, err
	}
	return New(loader, path, opts...)
}
