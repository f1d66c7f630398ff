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

// Package cli implements the command-line interface for the biotools cache.
//
// # Overview
//
// The root command builds the classified table of bio.tools registry entries
// for the configured EDAM topics. With no flags it behaves as a batch job:
// it reuses tools.dataframe.tsv or bio.tools.json in the working directory
// when present and otherwise fetches every topic from https://bio.tools.
//
//	biotools
//
// # Commands
//
// serve - Resolve the table the same way, then serve it read-only over HTTP:
//
//	biotools serve --port 8080
//	curl 'http://localhost:8080/v1/tools?subdomain=genomics'
//
// topics - Print the taxonomy used for classification:
//
//	biotools topics --format yaml
//
// version - Print build information:
//
//	biotools version
//
// # Flags
//
//	--raw-cache      Raw record cache path (default: bio.tools.json)
//	--table-cache    Derived table cache path (default: tools.dataframe.tsv)
//	--refresh        Ignore existing caches and fetch again
//	--base-url       Registry base URL (default: https://bio.tools)
//	--concurrency    Topics fetched in parallel (default: 2)
//	--rate           Registry requests per second (default: 4)
//	--max-attempts   Attempts per page request (default: 5)
//	--taxonomy       YAML or JSON file overriding the topic sets
//	--metrics-file   Write Prometheus metrics to this file on exit
//	--log-level      Logging verbosity (debug, info, warn, error)
//
// serve adds --address and --port (BIOTOOLS_PORT or PORT, default 8080).
//
// Every flag can also be set through a BIOTOOLS_ prefixed environment
// variable, e.g. BIOTOOLS_RAW_CACHE.
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, fetch or cache failure)
//	2  Context canceled
package cli
