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

package collector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collectDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "biotools_collect_duration_seconds",
			Help:    "Time taken to fetch and merge all topics",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600, 1200},
		},
	)

	collectTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "biotools_collect_total",
			Help: "Total number of collections by outcome",
		},
		[]string{"outcome"},
	)

	collectedTools = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "biotools_collected_tools",
			Help: "Number of unique tools in the last collection",
		},
	)
)
