// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/zeebo/blake3"
)

// withETag buffers successful responses, tags them with a weak entity tag
// derived from the body and answers 304 Not Modified when the client already
// holds that representation. Other statuses pass through unchanged.
//
// The tag is computed before compression, so it is the same for every
// content coding and must stay weak.
func (h *Handler) withETag(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bw := &bufferedResponseWriter{ResponseWriter: w}
		next.ServeHTTP(bw, r)

		status := bw.statusOrOK()
		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write(bw.body.Bytes())
			return
		}

		tag := entityTag(bw.body.Bytes())
		w.Header().Set("ETag", tag)

		if etagMatches(r.Header.Get("If-None-Match"), tag) {
			h.logger.Debug().Str("etag", tag).Msg("representation not modified")
			w.Header().Del("Content-Type")
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write(bw.body.Bytes())
	})
}

// entityTag returns the weak, quoted BLAKE3 digest of body.
func entityTag(body []byte) string {
	sum := blake3.Sum256(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`
}

// etagMatches implements the weak comparison If-None-Match calls for.
func etagMatches(header, tag string) bool {
	if header == "" {
		return false
	}
	tag = strings.TrimPrefix(tag, "W/")
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == tag {
			return true
		}
	}
	return false
}

// bufferedResponseWriter holds the status and body written by a handler
// until the middleware decides what to send.
type bufferedResponseWriter struct {
	http.ResponseWriter

	status int
	body   bytes.Buffer
}

func (w *bufferedResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}

func (w *bufferedResponseWriter) statusOrOK() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
