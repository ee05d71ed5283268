// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the mapping as a JSON object keeping item order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, it := range m.Items() {
		if i > 0 {
			buf.WriteByte(',')
		}

		var (
			key   string
			value any
		)
		switch it := it.(type) {
		case Field:
			key, value = it.Key, it.Value
		case Include:
			key, value = DirectiveKey, it.Path
			if it.Value != nil {
				value = it.Value
			}
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the sequence as a JSON array.
func (s Sequence) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, n := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		v, err := json.Marshal(n)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		buf.Write(v)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the underlying value.
func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Value)
}

// MarshalYAML implements yaml.Marshaler.
func (m *Mapping) MarshalYAML() (any, error) {
	return ToYAMLNode(m)
}

// MarshalYAML implements yaml.Marshaler.
func (s Sequence) MarshalYAML() (any, error) {
	return ToYAMLNode(s)
}

// MarshalYAML implements yaml.Marshaler.
func (s Scalar) MarshalYAML() (any, error) {
	return s.Value, nil
}

// ToYAMLNode converts n into a yaml.v3 node tree, keeping item order.
func ToYAMLNode(n Node) (*yaml.Node, error) {
	switch n := n.(type) {
	case *Mapping:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, it := range n.Items() {
			var (
				key   string
				value *yaml.Node
				err   error
			)
			switch it := it.(type) {
			case Field:
				key = it.Key
				value, err = ToYAMLNode(it.Value)
			case Include:
				key = DirectiveKey
				if it.Value != nil {
					value, err = ToYAMLNode(it.Value)
				} else {
					value = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: it.Path}
				}
			}
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			out.Content = append(out.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				value,
			)
		}
		return out, nil
	case Sequence:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, e := range n {
			child, err := ToYAMLNode(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out.Content = append(out.Content, child)
		}
		return out, nil
	case Scalar:
		out := new(yaml.Node)
		if err := out.Encode(n.Value); err != nil {
			return nil, err
		}
		return out, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, n)
	}
}

// Decode stores n into the Go value pointed to by v using yaml.v3 struct
// decoding rules (`yaml` struct tags).
func Decode(n Node, v any) error {
	yn, err := ToYAMLNode(n)
	if err != nil {
		return err
	}
	return yn.Decode(v)
}
