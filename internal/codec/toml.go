// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"fmt"
	"io"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/MKhiriev/go-cfg-expand/internal/document"
)

// TOML reads TOML documents. Key order follows the order in which keys are
// defined in the source; keys the decoder metadata does not report come last
// in lexical order.
type TOML struct{}

// Load implements [Loader].
func (TOML) Load(r io.Reader) (document.Node, error) {
	var raw map[string]any
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("%w: toml: %w", ErrSyntax, err)
	}

	return tomlTable(raw, md.Keys(), nil)
}

func tomlNode(v any, keys []toml.Key, prefix toml.Key) (document.Node, error) {
	switch v := v.(type) {
	case map[string]any:
		return tomlTable(v, keys, prefix)
	case []map[string]any:
		seq := make(document.Sequence, 0, len(v))
		for _, t := range v {
			child, err := tomlTable(t, keys, prefix)
			if err != nil {
				return nil, err
			}
			seq = append(seq, child)
		}
		return seq, nil
	case []any:
		seq := make(document.Sequence, 0, len(v))
		for _, e := range v {
			child, err := tomlNode(e, keys, prefix)
			if err != nil {
				return nil, err
			}
			seq = append(seq, child)
		}
		return seq, nil
	default:
		return document.Scalar{Value: v}, nil
	}
}

func tomlTable(t map[string]any, keys []toml.Key, prefix toml.Key) (*document.Mapping, error) {
	order := tomlChildOrder(t, keys, prefix)
	m := document.NewMapping(len(order))
	for _, k := range order {
		child, err := tomlNode(t[k], keys, append(slices.Clip(prefix), k))
		if err != nil {
			return nil, err
		}
		m.Put(k, child)
	}
	return m, nil
}

// tomlChildOrder lists the keys of table t, found under prefix, in
// definition order.
func tomlChildOrder(t map[string]any, keys []toml.Key, prefix toml.Key) []string {
	order := make([]string, 0, len(t))
	seen := make(map[string]struct{}, len(t))

	for _, k := range keys {
		if len(k) <= len(prefix) || !slices.Equal(k[:len(prefix)], prefix) {
			continue
		}
		name := k[len(prefix)]
		if _, ok := t[name]; !ok {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		order = append(order, name)
	}

	var rest []string
	for name := range t {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)

	return append(order, rest...)
}
