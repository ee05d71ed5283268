// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/tidwall/jsonc"

	"github.com/MKhiriev/go-cfg-expand/internal/document"
)

// JSON reads JSON documents and writes them indented by two spaces.
// Comments (// and /* */) and trailing commas are accepted on input.
type JSON struct{}

// Load implements [Loader]. A stream holding only whitespace or comments
// yields an empty mapping.
func (JSON) Load(r io.Reader) (document.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	stripped := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(stripped)) == 0 {
		return document.NewMapping(0), nil
	}
	if !json.Valid(stripped) {
		return nil, fmt.Errorf("%w: malformed json", ErrSyntax)
	}

	dec := json.NewDecoder(bytes.NewReader(stripped))
	dec.UseNumber()

	p := &jsonParser{dec: dec}
	return p.value()
}

// Encode implements [Encoder].
func (JSON) Encode(w io.Writer, n document.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("error encoding json: %w", err)
	}
	return nil
}

// jsonParser walks the token stream so that object key order survives.
// Input has already been validated, so structural errors are not expected.
type jsonParser struct {
	dec *json.Decoder
}

func (p *jsonParser) value() (document.Node, error) {
	tok, err := p.dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return p.object()
		case '[':
			return p.array()
		}
		return nil, fmt.Errorf("%w: unexpected %q", ErrSyntax, t)
	case json.Number:
		return jsonNumber(t)
	default:
		return document.Scalar{Value: t}, nil
	}
}

func (p *jsonParser) object() (*document.Mapping, error) {
	m := document.NewMapping(8)
	for p.dec.More() {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v is not a string", ErrSyntax, tok)
		}

		child, err := p.value()
		if err != nil {
			return nil, err
		}
		m.Put(key, child)
	}
	return m, p.closing('}')
}

func (p *jsonParser) array() (document.Sequence, error) {
	seq := make(document.Sequence, 0)
	for p.dec.More() {
		child, err := p.value()
		if err != nil {
			return nil, err
		}
		seq = append(seq, child)
	}
	return seq, p.closing(']')
}

func (p *jsonParser) closing(want json.Delim) error {
	tok, err := p.dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q", ErrSyntax, want)
	}
	return nil
}

func jsonNumber(n json.Number) (document.Node, error) {
	if i, err := n.Int64(); err == nil {
		return document.Scalar{Value: i}, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: number %s: %w", ErrSyntax, n, err)
	}
	return document.Scalar{Value: f}, nil
}
