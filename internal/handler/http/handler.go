// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-cfg-expand/internal/logger"
)

// Handler serves configuration documents read from a [ConfigSource].
type Handler struct {
	source  ConfigSource
	version string

	logger *logger.Logger
}

// NewHandler creates a Handler. version is reported by GET /api/version.
func NewHandler(source ConfigSource, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		source:  source,
		version: version,
		logger:  logger,
	}
}
