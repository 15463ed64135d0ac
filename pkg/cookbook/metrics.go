// Copyright (c) 2025, The Cookbook Authors.  All rights reserved.
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

package cookbook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registry metrics
	entriesInserted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_entries_inserted_total",
			Help: "Total number of entries stored, by type",
		},
		[]string{"type"},
	)
	entryRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_entry_rejections_total",
			Help: "Total number of rejected insertions, by error kind",
		},
		[]string{"kind"},
	)

	// Resolution metrics
	resolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_resolutions_total",
			Help: "Total number of recipe resolutions, by result",
		},
		[]string{"result"},
	)
	resolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cookbook_resolution_duration_seconds",
			Help:    "Duration of recipe resolution in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
	)

	// Report cache metrics
	reportCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cookbook_report_cache_hits_total",
			Help: "Total number of report cache hits",
		},
	)
	reportCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cookbook_report_cache_misses_total",
			Help: "Total number of report cache misses",
		},
	)
)
