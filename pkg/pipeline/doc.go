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

// Package pipeline drives the fetch, classify and cache flow.
//
// Run consults two cache files before doing any network work:
//
//  1. If the derived table exists it is loaded and returned.
//  2. Otherwise, if the raw record cache exists it is loaded, deduplicated
//     and classified.
//  3. Otherwise every topic is fetched from the registry and the
//     deduplicated records are written to the raw cache.
//
// In cases 2 and 3 the classified table is written to the derived cache
// before it is returned. Both files are replaced atomically, so a cache file
// that exists is always complete. Setting Refresh skips both lookups.
//
// Usage:
//
//	p := pipeline.New(
//	    collector.New(biotools.NewClient(), collector.WithTopics(tax.FetchOrder())),
//	    pipeline.WithTaxonomy(tax),
//	    pipeline.WithRawCachePath("cache/bio.tools.json"),
//	)
//	rows, err := p.Run(ctx)
package pipeline
