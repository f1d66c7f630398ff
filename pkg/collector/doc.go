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

// Package collector aggregates registry records across EDAM topics.
//
// # Overview
//
// A Collector asks a Fetcher for every topic in its list, concatenates the
// results in topic order and removes duplicate records. Topics are fetched
// concurrently up to a configurable limit, but the aggregate does not depend
// on completion order:
//
//	c := collector.New(biotools.NewClient(),
//	    collector.WithTopics(taxonomy.Default().FetchOrder()),
//	    collector.WithConcurrency(2),
//	)
//	tools, err := c.Collect(ctx)
//
// # Deduplication
//
// A tool annotated with several requested topics appears once per topic in
// the raw aggregate. Deduplicate keeps one record per biotoolsID. When the
// same ID occurs more than once the last occurrence wins; the record keeps
// the position where its ID was first seen.
//
// # Error Handling
//
// The first topic that fails cancels the remaining fetches and Collect
// returns that error. A topic whose page could not be decoded is not a
// failure; the Fetcher returns what it collected so far.
package collector
