// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"

	handler "github.com/MKhiriev/go-cfg-expand/internal/handler/http"
	"github.com/MKhiriev/go-cfg-expand/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve the expanded document over HTTP",
		Long: `serve loads the document once and exposes it read-only:

  GET /api/config           expanded document (JSON, or YAML via ?format=yaml)
  GET /api/config/raw       root document before expansion
  GET /api/config/{path...} sub-tree addressed by slash separated keys
  GET /api/health           liveness probe
  GET /api/version          build version

The server stops gracefully on SIGINT, SIGTERM or SIGQUIT.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.inputPath(args)
			if err != nil {
				return err
			}

			e, err := a.newExpander(path)
			if err != nil {
				return err
			}

			h := handler.NewHandler(e, a.build.version, a.log.GetChildLogger())
			srv, err := server.NewServer(h.Init(), a.cfg.Server, a.log)
			if err != nil {
				return err
			}

			return srv.RunServer()
		},
	}
}
