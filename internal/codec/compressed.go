// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/MKhiriev/go-cfg-expand/internal/document"
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}
)

type decompressing struct {
	next Loader
}

// Decompressing wraps next so that zstd and gzip streams are inflated before
// parsing. Compression is detected from the stream's magic bytes; plain
// input is passed through.
func Decompressing(next Loader) Loader {
	return &decompressing{next: next}
}

func (d *decompressing) Load(r io.Reader) (document.Node, error) {
	br := bufio.NewReader(r)
	magic, _ := br.Peek(len(zstdMagic))

	switch {
	case bytes.HasPrefix(magic, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("error opening zstd stream: %w", err)
		}
		defer dec.Close()
		return d.next.Load(dec)
	case bytes.HasPrefix(magic, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("error opening gzip stream: %w", err)
		}
		defer zr.Close()
		return d.next.Load(zr)
	default:
		return d.next.Load(br)
	}
}
