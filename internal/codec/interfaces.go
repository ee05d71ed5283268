// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

package codec

import (
	"io"

	"github.com/MKhiriev/go-cfg-expand/internal/document"
)

// Loader turns a byte stream into a document tree. Implementations must
// build mappings with [document.Mapping.Put] so that "@file" keys become
// inclusion directives.
type Loader interface {
	Load(r io.Reader) (document.Node, error)
}

// Encoder writes a document tree to w.
type Encoder interface {
	Encode(w io.Writer, n document.Node) error
}

// LoaderFunc adapts a plain function to [Loader].
type LoaderFunc func(r io.Reader) (document.Node, error)

// Load calls f(r).
func (f LoaderFunc) Load(r io.Reader) (document.Node, error) {
	return f(r)
}
