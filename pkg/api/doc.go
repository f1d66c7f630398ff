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

// Package api exposes the classified tool table over HTTP.
//
// It configures pkg/server with the application routes and serves a table
// that was built or loaded by pkg/pipeline before the listener opens. The
// table is read-only for the life of the process.
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /v1/tools      - List rows, optionally filtered
//   - GET /v1/tools/{id} - Return one row by biotoolsID
//
// System endpoints (no rate limiting):
//   - GET /health  - Liveness probe
//   - GET /ready   - Readiness probe
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters (GET /v1/tools)
//
//   - subdomain: genomics, proteomics or machineLearning
//   - hasRepository: true or false
//   - limit: maximum number of rows returned (default all)
//   - offset: number of matching rows to skip
//
// Example:
//
//	curl 'http://localhost:8080/v1/tools?subdomain=genomics&hasRepository=true&limit=10'
package api
