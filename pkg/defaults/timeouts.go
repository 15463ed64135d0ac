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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// SummaryHandlerTimeout is the timeout for recipe summary requests.
	SummaryHandlerTimeout = 30 * time.Second

	// SummaryResolveTimeout is the internal timeout for recipe resolution.
	// Should be less than SummaryHandlerTimeout to allow error handling.
	SummaryResolveTimeout = 25 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Report cache settings.
const (
	// ReportCacheTTL is how long a resolution report stays cached.
	// Insertions invalidate cached reports regardless of TTL.
	ReportCacheTTL = 10 * time.Minute

	// ReportCacheCleanupInterval is how often expired reports are purged.
	ReportCacheCleanupInterval = 30 * time.Minute
)

// Request limits.
const (
	// MaxRequestBodyBytes caps the size of POST bodies.
	MaxRequestBodyBytes int64 = 1 << 20
)

// HTTP client settings for fetching remote seed documents.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// MaxDocumentBytes caps the size of a fetched seed document.
	MaxDocumentBytes int64 = 16 << 20
)
