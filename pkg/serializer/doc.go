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

// Package serializer provides encoding and decoding of cache artifacts and
// command output in multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Raw registry records cache, machine-readable command output
//
// YAML:
//   - Taxonomy override files, human-readable command output
//
// TSV:
//   - Derived tool table; values must implement Tabular to be written
//     and TabularDecoder to be read back
//
// Table:
//   - Flattened FIELD/VALUE view for terminals
//   - Write-only
//
// # Files
//
// WriteFile serializes into a temporary sibling file and renames it over the
// destination, so a cache file either holds complete content or does not exist:
//
//	if err := serializer.WriteFile(ctx, "bio.tools.json", serializer.FormatJSON, tools); err != nil {
//	    return err
//	}
//
// FromFile detects the format from the extension and also accepts HTTP(S) URLs:
//
//	tax, err := serializer.FromFile[taxonomy.Taxonomy]("taxonomy.yaml")
//
// # HTTP
//
// HttpReader wraps an *http.Client with a tuned transport. Non-2xx answers
// are reported as *StatusError so callers can tell server errors, throttling
// and permanent client errors apart.
package serializer
