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

// Package defaults provides centralized configuration constants for the biotools cache.
//
// This package defines timeout values, retry parameters, request pacing and the
// well-known cache file names used across the codebase. Centralizing these values
// ensures consistency and makes tuning easier.
//
// # Categories
//
//   - HTTP client timeouts: For outbound requests to the bio.tools registry
//   - Fetch retry: Exponential backoff applied to transient registry failures
//   - Fetch pacing: Token bucket limits and topic worker count
//   - Cache files: Default raw and derived cache locations
//   - Server: Listen port, request limits and timeouts of the table API
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/dome-metrics/biotools/pkg/defaults"
//
//	client := &http.Client{Timeout: defaults.HTTPClientTimeout}
//
// # Guidelines
//
// The registry is a shared public service. Keep FetchRateLimit conservative and
// prefer raising FetchMaxAttempts over shortening FetchRetryInitialInterval.
package defaults
