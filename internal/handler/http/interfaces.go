// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "github.com/MKhiriev/go-cfg-expand/internal/document"

//go:generate mockgen -source=interfaces.go -destination=../../mock/handler_mock.go -package=mock

// ConfigSource provides the documents served by [Handler].
// *expander.ConfigExpander satisfies it.
type ConfigSource interface {
	// Load returns the expanded configuration, loading it if needed.
	Load() (*document.Mapping, error)

	// Raw returns the root document before expansion, and false when nothing
	// has been loaded yet.
	Raw() (*document.Mapping, bool)
}
