// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dome-metrics/biotools/pkg/api"
	"github.com/dome-metrics/biotools/pkg/defaults"
	"github.com/dome-metrics/biotools/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Build or load the tool table, then serve it over HTTP",
		Description: `Resolve the tool table exactly like the root command, then expose it
read-only until interrupted:
  - GET /v1/tools          list, filter with subdomain, hasRepository, limit, offset
  - GET /v1/tools/{id}     one tool by biotoolsID
  - GET /health, /ready    probes
  - GET /metrics           Prometheus metrics`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Usage:   "Listen address (host part only)",
				Sources: envVar("address"),
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "Listen port",
				Value:   defaults.ServerPort,
				Sources: cli.EnvVars(envPrefix+"PORT", "PORT"),
			},
		},
		Action: serveAction,
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	port := int(cmd.Int("port"))
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", port)
	}

	p, err := buildPipeline(cmd)
	if err != nil {
		return err
	}

	rows, err := p.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to build tool table: %w", err)
	}
	slog.Info("tool table ready", "source", string(p.Source), "tools", len(rows))

	cfg := server.NewConfig()
	cfg.Address = cmd.String("address")
	cfg.Port = port

	return api.Serve(ctx, rows, version, server.WithConfig(cfg))
}
