// Copyright (c) 2025, ODC Authors.  All rights reserved.
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

package runner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "odc_collection_duration_seconds",
			Help:    "Time taken to complete a collection run including archiving",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	collectionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "odc_collection_total",
			Help: "Total number of collection run attempts",
		},
		[]string{"status"}, // success or error
	)

	artifactsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "odc_artifacts_total",
			Help: "Total number of artifacts collected",
		},
		[]string{"kind"}, // Files, RegistryKeys, EventLogs, Commands
	)

	taskFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "odc_task_failures_total",
			Help: "Total number of per-task collection failures that were skipped",
		},
	)
)
