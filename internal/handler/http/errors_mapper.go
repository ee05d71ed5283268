// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-cfg-expand/internal/codec"
	"github.com/MKhiriev/go-cfg-expand/internal/logger"
)

var errorStatusMap = map[error]int{
	ErrKeyNotFound:  http.StatusNotFound,
	ErrRawNotLoaded: http.StatusServiceUnavailable,

	codec.ErrUnknownFormat:        http.StatusBadRequest,
	codec.ErrEncodingNotSupported: http.StatusNotAcceptable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with a JSON error body. Server side failures are
// logged with the request logger and their details are not exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
		message = http.StatusText(status)
	}

	body, _ := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: message})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
