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

// Package server provides the HTTP server used by the table API.
//
// # Overview
//
// Server wraps net/http with the concerns every endpoint shares:
//
//   - Request ID propagation (X-Request-Id, generated when missing or invalid)
//   - Panic recovery with a structured error response
//   - Token bucket rate limiting with Retry-After on rejection
//   - Prometheus RED metrics per method, path and status
//   - Debug request logging through slog
//
// System endpoints are always registered and are not rate limited:
//
//	GET /          server name, version, readiness and routes
//	GET /health    liveness
//	GET /ready     readiness, 503 until Run starts listening
//	GET /metrics   Prometheus exposition
//
// Application handlers are passed with WithHandler and receive the full
// middleware chain. Patterns follow http.ServeMux syntax, so method and
// wildcard patterns such as "GET /v1/tools/{id}" are supported.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("biotools"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "GET /v1/tools": h.HandleList,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until ctx is canceled and then shuts down gracefully within
// Config.ShutdownTimeout.
//
// # Errors
//
// WriteError emits the shared error envelope:
//
//	{
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "message": "Rate limit exceeded",
//	  "details": {"limit": 100, "burst": 200},
//	  "requestId": "3f0c...",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": true
//	}
//
// # Configuration
//
// NewConfig returns defaults from pkg/defaults. PORT and
// SHUTDOWN_TIMEOUT_SECONDS environment variables override the listen port
// and the shutdown grace period.
package server
