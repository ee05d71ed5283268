// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import "fmt"

// DirectiveKey is the reserved mapping key that marks an inclusion directive.
// Loaders never store it as a plain field: a "@file" key is turned into an
// [Include] item when the mapping is built with [Mapping.Put]. A mapping
// holds at most one directive.
const DirectiveKey = "@file"

// Node is a single value of a configuration document. The concrete type is
// always one of *[Mapping], [Sequence] or [Scalar].
type Node interface {
	node()
}

// Item is a single entry of a [Mapping]: either a [Field] or an [Include].
type Item interface {
	item()
}

// Scalar holds a leaf value as produced by the loader (string, bool, integer,
// float, time.Time or nil).
type Scalar struct {
	Value any
}

// Sequence is an ordered list of nodes. Its elements are never inspected
// during expansion, so directives nested in sequence elements stay as they
// were loaded.
type Sequence []Node

// Field binds a key to a value inside a [Mapping].
type Field struct {
	Key   string
	Value Node
}

// Include is an inclusion directive: the mapping it belongs to receives the
// top-level keys of the document found at Path.
type Include struct {
	Path string
	// Value holds the loaded value when it is not a string. Such a
	// directive is kept as loaded and only fails once it is expanded.
	Value Node
}

// Check reports an [ErrInvalidDirective] for a directive whose value is not
// a string.
func (i Include) Check() error {
	if i.Value == nil {
		return nil
	}
	return fmt.Errorf("%w: %q expects a string path, got %s", ErrInvalidDirective, DirectiveKey, describe(i.Value))
}

func describe(n Node) string {
	if s, ok := n.(Scalar); ok && s.Value != nil {
		return fmt.Sprintf("%T", s.Value)
	}
	return Kind(n)
}

func (*Mapping) node() {}
func (Sequence) node() {}
func (Scalar) node()   {}

func (Field) item()   {}
func (Include) item() {}

// String is a helper for building string scalars.
func String(s string) Scalar {
	return Scalar{Value: s}
}

// Kind returns a short human-readable name of the node type, used in error
// messages.
func Kind(n Node) string {
	switch n.(type) {
	case *Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	case Scalar:
		return "scalar"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", n)
	}
}
