// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-cfg-expand/internal/expander"
)

// parseFile reads the settings file at path. Its format follows the file
// extension, and "@file" directives inside it are expanded like in any
// other document.
func parseFile(path string) (*StructuredConfig, error) {
	e, err := expander.NewForPath(path, expander.WithLazy())
	if err != nil {
		return nil, fmt.Errorf("error opening settings file %s: %w", path, err)
	}

	cfg := new(StructuredConfig)
	if err = e.Decode(cfg); err != nil {
		return nil, fmt.Errorf("error reading settings file %s: %w", path, err)
	}

	return cfg, nil
}
