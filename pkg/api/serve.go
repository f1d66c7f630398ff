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

package api

import (
	"context"
	"log/slog"

	"github.com/dome-metrics/biotools/pkg/server"
	"github.com/dome-metrics/biotools/pkg/table"
)

// Name is reported by the root endpoint.
const Name = "biotools-api"

// NewServer builds a server with the tools routes mounted. version is
// reported by the root endpoint and stamped into response metadata.
// Options are applied after the name and routes, so callers may override them.
func NewServer(rows table.Table, version string, opts ...server.Option) *server.Server {
	h := NewToolsHandler(rows)
	h.Version = version

	all := append([]server.Option{
		server.WithName(Name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
	}, opts...)

	return server.New(all...)
}

// Serve serves rows until ctx is canceled.
func Serve(ctx context.Context, rows table.Table, version string, opts ...server.Option) error {
	s := NewServer(rows, version, opts...)

	slog.Info("serving tool table", "rows", len(rows))

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
