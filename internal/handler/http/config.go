// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-cfg-expand/internal/codec"
	"github.com/MKhiriev/go-cfg-expand/internal/document"
)

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	config, err := h.source.Load()
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.render(w, r, config)
}

func (h *Handler) getRawConfig(w http.ResponseWriter, r *http.Request) {
	if _, err := h.source.Load(); err != nil {
		writeError(w, r, err)
		return
	}

	raw, ok := h.source.Raw()
	if !ok {
		writeError(w, r, ErrRawNotLoaded)
		return
	}

	h.render(w, r, raw)
}

// getConfigPath serves the node found by following the slash separated key
// path, e.g. /api/config/database/primary.
func (h *Handler) getConfigPath(w http.ResponseWriter, r *http.Request) {
	config, err := h.source.Load()
	if err != nil {
		writeError(w, r, err)
		return
	}

	keys := strings.FieldsFunc(chi.URLParam(r, "*"), func(c rune) bool { return c == '/' })
	node, ok := config.Lookup(keys...)
	if !ok {
		writeError(w, r, fmt.Errorf("%w: %s", ErrKeyNotFound, strings.Join(keys, "/")))
		return
	}

	h.render(w, r, node)
}

// render encodes n in the format the client asked for. The body is encoded
// in full before anything is written, so encoding failures still produce a
// proper error response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, n document.Node) {
	format, err := responseFormat(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	encoder, err := codec.NewEncoder(format)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err = encoder.Encode(&buf, n); err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Write(buf.Bytes())
}

// responseFormat picks the output format from the "format" query parameter,
// then the Accept header. JSON is the default.
func responseFormat(r *http.Request) (codec.Format, error) {
	if name := r.URL.Query().Get("format"); name != "" {
		return codec.ParseFormat(name)
	}

	accept := r.Header.Get("Accept")
	if strings.Contains(accept, "yaml") {
		return codec.FormatYAML, nil
	}
	return codec.FormatJSON, nil
}
