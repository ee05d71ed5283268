// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-cfg-expand/internal/codec"
	"github.com/MKhiriev/go-cfg-expand/internal/logger"
)

// validate checks that the final merged [StructuredConfig] is usable before
// any command runs. Format names are checked against the codecs, and the
// root document path is checked by the commands that need it.
func (cfg *StructuredConfig) validate() error {
	if cfg.Input.Format != "" {
		if _, err := codec.ParseFormat(cfg.Input.Format); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInputConfigs, err)
		}
	}

	format, err := codec.ParseFormat(cfg.Output.Format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOutputConfigs, err)
	}
	if _, err = codec.NewEncoder(format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOutputConfigs, err)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if _, err = logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
