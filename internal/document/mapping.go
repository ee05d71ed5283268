// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import "iter"

// Mapping is an insertion-ordered set of keyed fields interleaved with
// inclusion directives. The zero value is an empty mapping ready to use.
//
// Overwriting an existing key keeps the key at its original position;
// new keys are appended.
type Mapping struct {
	items []Item
	index map[string]int
	// position of the directive plus one, zero when there is none
	include int
}

// NewMapping returns an empty mapping with room for size items.
func NewMapping(size int) *Mapping {
	return &Mapping{
		items: make([]Item, 0, size),
		index: make(map[string]int, size),
	}
}

// Set binds key to value. The key is stored verbatim, even when it equals
// [DirectiveKey]; use [Mapping.Put] when building a mapping from source.
func (m *Mapping) Set(key string, value Node) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.items[i] = Field{Key: key, Value: value}
		return
	}
	m.index[key] = len(m.items)
	m.items = append(m.items, Field{Key: key, Value: value})
}

// Put is the builder entry point for loaders. A key equal to [DirectiveKey]
// becomes an [Include] item; every other key is stored with [Mapping.Set].
// A directive value that is not a string is kept in [Include.Value].
func (m *Mapping) Put(key string, value Node) {
	if key != DirectiveKey {
		m.Set(key, value)
		return
	}

	if s, ok := value.(Scalar); ok {
		if path, ok := s.Value.(string); ok {
			m.AddInclude(path)
			return
		}
	}
	m.SetInclude(Include{Value: value})
}

// AddInclude sets the directive of m to path.
func (m *Mapping) AddInclude(path string) {
	m.SetInclude(Include{Path: path})
}

// SetInclude sets the directive of m. A repeated directive replaces the
// previous one in place, the way a repeated key does.
func (m *Mapping) SetInclude(inc Include) {
	if m.include > 0 {
		m.items[m.include-1] = inc
		return
	}
	m.items = append(m.items, inc)
	m.include = len(m.items)
}

// Directive returns the directive of m, if any.
func (m *Mapping) Directive() (Include, bool) {
	if m == nil || m.include == 0 {
		return Include{}, false
	}
	return m.items[m.include-1].(Include), true
}

// Get returns the value bound to key.
func (m *Mapping) Get(key string) (Node, bool) {
	if m == nil {
		return nil, false
	}
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.items[i].(Field).Value, true
}

// Lookup walks nested mappings following path. An empty path returns m.
func (m *Mapping) Lookup(path ...string) (Node, bool) {
	var cur Node = m
	for _, key := range path {
		mm, ok := cur.(*Mapping)
		if !ok {
			return nil, false
		}
		if cur, ok = mm.Get(key); !ok {
			return nil, false
		}
	}
	return cur, true
}

// Len returns the number of items, directives included.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.items)
}

// Items returns the items in order. The slice is owned by the mapping and
// must not be modified.
func (m *Mapping) Items() []Item {
	if m == nil {
		return nil
	}
	return m.items
}

// Keys returns the field keys in order, skipping directives.
func (m *Mapping) Keys() []string {
	keys := make([]string, 0, m.Len())
	for k := range m.Fields() {
		keys = append(keys, k)
	}
	return keys
}

// Fields iterates over the keyed fields in order, skipping directives.
func (m *Mapping) Fields() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		for _, it := range m.Items() {
			f, ok := it.(Field)
			if !ok {
				continue
			}
			if !yield(f.Key, f.Value) {
				return
			}
		}
	}
}

// HasIncludes reports whether m carries a directive at its own level.
func (m *Mapping) HasIncludes() bool {
	_, ok := m.Directive()
	return ok
}

// Merge copies every field of src into m with [Mapping.Set], so keys of src
// win over keys already present in m. The directive of src, if any,
// replaces the directive of m.
func (m *Mapping) Merge(src *Mapping) {
	for _, it := range src.Items() {
		switch it := it.(type) {
		case Field:
			m.Set(it.Key, it.Value)
		case Include:
			m.SetInclude(it)
		}
	}
}
