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

package defaults

// Registry endpoint and request pacing.
const (
	// RegistryBaseURL is the base URL of the bio.tools registry.
	RegistryBaseURL = "https://bio.tools"

	// FetchRateLimit is the sustained number of registry requests per second.
	FetchRateLimit = 4.0

	// FetchRateBurst is the token bucket burst size.
	FetchRateBurst = 1

	// FetchConcurrency is the number of topics fetched in parallel.
	FetchConcurrency = 2
)

// Cache file names, resolved against the working directory.
const (
	// RawCacheFile holds the raw registry records as a JSON array.
	RawCacheFile = "bio.tools.json"

	// TableCacheFile holds the derived, classified table as TSV.
	TableCacheFile = "tools.dataframe.tsv"
)

const (
	// ServerPort is the default listen port of the table API.
	ServerPort = 8080

	// ServerRateLimit is the sustained number of API requests per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the API token bucket burst size.
	ServerRateLimitBurst = 200
)
