// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"fmt"
	"reflect"
	"slices"
	"time"
)

// ToAny converts n into plain Go values: map[string]any, []any and scalars.
// Key order is lost. Unexpanded directives come out as "@file" keys.
func ToAny(n Node) any {
	switch n := n.(type) {
	case *Mapping:
		out := make(map[string]any, n.Len())
		for _, it := range n.Items() {
			switch it := it.(type) {
			case Field:
				out[it.Key] = ToAny(it.Value)
			case Include:
				if it.Value != nil {
					out[DirectiveKey] = ToAny(it.Value)
				} else {
					out[DirectiveKey] = it.Path
				}
			}
		}
		return out
	case Sequence:
		out := make([]any, len(n))
		for i, v := range n {
			out[i] = ToAny(v)
		}
		return out
	case Scalar:
		return n.Value
	default:
		return nil
	}
}

// FromAny builds a node from plain Go values. Map keys are sorted since Go
// maps carry no order. A "@file" key becomes a directive.
func FromAny(v any) (Node, error) {
	switch v := v.(type) {
	case nil:
		return Scalar{}, nil
	case Node:
		return v, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		m := NewMapping(len(keys))
		for _, k := range keys {
			child, err := FromAny(v[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			m.Put(k, child)
		}
		return m, nil
	case []any:
		seq := make(Sequence, len(v))
		for i, e := range v {
			child, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			seq[i] = child
		}
		return seq, nil
	case []map[string]any:
		seq := make(Sequence, len(v))
		for i, e := range v {
			child, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			seq[i] = child
		}
		return seq, nil
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64, time.Time:
		return Scalar{Value: v}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// Equal reports whether a and b are structurally equal, item order included.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Mapping:
		bm, ok := b.(*Mapping)
		if !ok || a.Len() != bm.Len() {
			return false
		}
		bi := bm.Items()
		for i, it := range a.Items() {
			switch it := it.(type) {
			case Field:
				other, ok := bi[i].(Field)
				if !ok || other.Key != it.Key || !Equal(it.Value, other.Value) {
					return false
				}
			case Include:
				other, ok := bi[i].(Include)
				if !ok || other.Path != it.Path || !Equal(it.Value, other.Value) {
					return false
				}
			}
		}
		return true
	case Sequence:
		bs, ok := b.(Sequence)
		if !ok || len(a) != len(bs) {
			return false
		}
		for i := range a {
			if !Equal(a[i], bs[i]) {
				return false
			}
		}
		return true
	case Scalar:
		bs, ok := b.(Scalar)
		return ok && reflect.DeepEqual(a.Value, bs.Value)
	default:
		return a == nil && b == nil
	}
}
