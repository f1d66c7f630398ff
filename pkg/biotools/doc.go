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

// Package biotools retrieves tool records from the bio.tools registry API.
//
// # Overview
//
// Client.FetchTopic walks the paginated search endpoint for one EDAM topic:
//
//	GET <base>/api/tool/?topicID=%22topic_<ID>%22&format=json&page=<N>
//
// and returns the concatenation of every page's "list" array, following pages
// until "next" is empty, null or absent. The topic identifier is quoted with
// a literal %22 because the registry only does exact topic matching on quoted
// values.
//
// # Failure Handling
//
// Each page request is retried with exponential backoff when the registry
// answers 5xx or 429, or when the request fails in transit. Other 4xx answers
// are permanent. Once attempts are exhausted FetchTopic returns a
// *errors.StructuredError carrying the topic, page and last status.
//
// A page body that is not valid JSON, or lacks a "list" array, stops the topic
// and returns the records gathered so far with a nil error.
//
// # Records
//
// Tool keeps the complete JSON object it was decoded from, so writing tools
// back out preserves every registry field, modelled or not.
package biotools
