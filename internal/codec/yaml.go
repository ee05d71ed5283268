// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-cfg-expand/internal/document"
)

const yamlMergeTag = "!!merge"

// YAML reads and writes YAML documents. Only the first document of a
// multi-document stream is loaded. Anchors, aliases and "<<" merge keys are
// resolved while loading.
type YAML struct{}

// Load implements [Loader]. An empty stream yields an empty mapping.
func (YAML) Load(r io.Reader) (document.Node, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return document.NewMapping(0), nil
		}
		return nil, fmt.Errorf("%w: yaml: %w", ErrSyntax, err)
	}

	return fromYAML(&root)
}

// Encode implements [Encoder] with a two-space indent.
func (YAML) Encode(w io.Writer, n document.Node) error {
	yn, err := document.ToYAMLNode(n)
	if err != nil {
		return fmt.Errorf("error converting document to yaml: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(yn); err != nil {
		return fmt.Errorf("error encoding yaml: %w", err)
	}
	return enc.Close()
}

func fromYAML(n *yaml.Node) (document.Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return document.NewMapping(0), nil
		}
		return fromYAML(n.Content[0])
	case yaml.AliasNode:
		return fromYAML(n.Alias)
	case yaml.MappingNode:
		return yamlMapping(n)
	case yaml.SequenceNode:
		seq := make(document.Sequence, 0, len(n.Content))
		for _, c := range n.Content {
			child, err := fromYAML(c)
			if err != nil {
				return nil, err
			}
			seq = append(seq, child)
		}
		return seq, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return document.Scalar{Value: v}, nil
	default:
		return nil, fmt.Errorf("line %d: unexpected yaml node kind %d", n.Line, n.Kind)
	}
}

func yamlMapping(n *yaml.Node) (*document.Mapping, error) {
	m := document.NewMapping(len(n.Content) / 2)

	// Keys pulled in through "<<" lose against keys written explicitly,
	// wherever the merge key appears.
	var merged []*document.Mapping

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]

		if isYAMLMergeKey(key) {
			sources, err := yamlMergeSources(value)
			if err != nil {
				return nil, err
			}
			merged = append(merged, sources...)
			continue
		}

		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: yaml %s key", ErrUnsupportedKey, key.Line, yamlKindName(key.Kind))
		}

		child, err := fromYAML(value)
		if err != nil {
			return nil, err
		}
		m.Put(key.Value, child)
	}

	for _, src := range merged {
		for k, v := range src.Fields() {
			if _, ok := m.Get(k); !ok {
				m.Set(k, v)
			}
		}
	}

	return withMergedDirective(m, merged), nil
}

// withMergedDirective carries the directive of the first merge source that
// has one into m, unless m sets its own. It goes first so that every key of
// m overrides what it includes.
func withMergedDirective(m *document.Mapping, merged []*document.Mapping) *document.Mapping {
	if m.HasIncludes() {
		return m
	}
	for _, src := range merged {
		inc, ok := src.Directive()
		if !ok {
			continue
		}
		out := document.NewMapping(m.Len() + 1)
		out.SetInclude(inc)
		out.Merge(m)
		return out
	}
	return m
}

func yamlMergeSources(n *yaml.Node) ([]*document.Mapping, error) {
	var nodes []*yaml.Node
	if n.Kind == yaml.SequenceNode {
		nodes = n.Content
	} else {
		nodes = []*yaml.Node{n}
	}

	sources := make([]*document.Mapping, 0, len(nodes))
	for _, c := range nodes {
		child, err := fromYAML(c)
		if err != nil {
			return nil, err
		}
		m, ok := child.(*document.Mapping)
		if !ok {
			return nil, fmt.Errorf("%w: line %d: merge key expects a mapping, got %s", ErrSyntax, c.Line, document.Kind(child))
		}
		sources = append(sources, m)
	}
	return sources, nil
}

func isYAMLMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Value == "<<" && (n.Tag == "" || n.Tag == yamlMergeTag)
}

func yamlKindName(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	default:
		return "scalar"
	}
}
