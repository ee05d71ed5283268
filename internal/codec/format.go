// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a supported document format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

var extensions = map[string]Format{
	".yaml":  FormatYAML,
	".yml":   FormatYAML,
	".json":  FormatJSON,
	".jsonc": FormatJSON,
	".toml":  FormatTOML,
}

// compression suffixes stripped before the format extension is looked up
var compressedExtensions = []string{".gz", ".zst"}

// ParseFormat resolves a user supplied format name ("yml" is accepted as
// an alias of "yaml").
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatYAML, FormatJSON, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "jsonc":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath infers the format from the file extension, looking through
// a trailing ".gz" or ".zst".
func FormatFromPath(path string) (Format, error) {
	name := strings.ToLower(filepath.Base(path))
	for _, ext := range compressedExtensions {
		name = strings.TrimSuffix(name, ext)
	}

	f, ok := extensions[filepath.Ext(name)]
	if !ok {
		return "", fmt.Errorf("%w: cannot infer format of %q", ErrUnknownFormat, path)
	}
	return f, nil
}

// NewLoader returns the loader for f. Every loader transparently accepts
// zstd and gzip compressed input.
func NewLoader(f Format) (Loader, error) {
	switch f {
	case FormatYAML:
		return Decompressing(YAML{}), nil
	case FormatJSON:
		return Decompressing(JSON{}), nil
	case FormatTOML:
		return Decompressing(TOML{}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// NewEncoder returns the encoder for f.
func NewEncoder(f Format) (Encoder, error) {
	switch f {
	case FormatYAML:
		return YAML{}, nil
	case FormatJSON:
		return JSON{}, nil
	case FormatTOML:
		return nil, fmt.Errorf("%w: %q", ErrEncodingNotSupported, f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// ContentType returns the MIME type used when serving documents encoded
// as f.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatTOML:
		return "application/toml"
	default:
		return "application/octet-stream"
	}
}
