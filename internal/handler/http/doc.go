// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the cfgexpand "serve"
// command.
//
// It exposes the expanded configuration, the raw root document and single
// sub-trees over a read-only REST API. Cross-cutting concerns such as
// request tracing, access logging, response compression, and entity tags
// are handled in this package before requests reach the handlers.
package http
