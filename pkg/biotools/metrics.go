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

package biotools

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Request metrics
	pageRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "biotools_page_requests_total",
			Help: "Total number of registry page requests, including retries",
		},
	)

	pageErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "biotools_page_errors_total",
			Help: "Total number of non-2xx registry answers by status class",
		},
		[]string{"class"},
	)

	pageRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "biotools_page_retries_total",
			Help: "Total number of scheduled page request retries",
		},
	)

	malformedPagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "biotools_malformed_pages_total",
			Help: "Total number of registry pages that could not be decoded",
		},
	)

	// Topic metrics
	topicFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "biotools_topic_fetch_total",
			Help: "Total number of topic fetches by outcome",
		},
		[]string{"outcome"},
	)

	topicFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "biotools_topic_fetch_duration_seconds",
			Help:    "Time taken to fetch all pages of a topic",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
		},
	)

	toolsFetchedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "biotools_tools_fetched_total",
			Help: "Total number of tool records received, before deduplication",
		},
	)
)
