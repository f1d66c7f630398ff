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

// Package logging provides structured logging utilities for the biotools cache.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so every command logs the same way: JSON records on stderr, tagged with the
// module name and build version.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Per-page request details, with source location
//   - INFO: Topic progress and cache decisions (default)
//   - WARN/WARNING: Retried registry failures
//   - ERROR: Malformed responses and fatal failures
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("biotools", version, "info")
//	    slog.Info("fetching topic", "topic", "0622")
//	}
//
// # Environment Configuration
//
// When no level is passed explicitly, LOG_LEVEL controls verbosity:
//
//	LOG_LEVEL=debug biotools
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "fetching topic",
//	    "module": "biotools",
//	    "version": "v1.0.0",
//	    "topic": "0622"
//	}
package logging
