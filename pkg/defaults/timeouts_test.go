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

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Handler timeouts
		{"SummaryHandlerTimeout", SummaryHandlerTimeout, 10 * time.Second, 60 * time.Second},
		{"SummaryResolveTimeout", SummaryResolveTimeout, 10 * time.Second, 30 * time.Second},

		// Server timeouts
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 60 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},

		// Cache
		{"ReportCacheTTL", ReportCacheTTL, 1 * time.Minute, 1 * time.Hour},

		// HTTP client
		{"HTTPClientTimeout", HTTPClientTimeout, 10 * time.Second, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestSummaryResolveTimeoutLessThanHandler(t *testing.T) {
	if SummaryResolveTimeout >= SummaryHandlerTimeout {
		t.Errorf("SummaryResolveTimeout (%v) should be less than SummaryHandlerTimeout (%v)",
			SummaryResolveTimeout, SummaryHandlerTimeout)
	}
}

func TestServerTimeoutRelationships(t *testing.T) {
	if ServerReadTimeout > ServerWriteTimeout {
		t.Errorf("ServerReadTimeout (%v) should not exceed ServerWriteTimeout (%v)",
			ServerReadTimeout, ServerWriteTimeout)
	}

	if ServerIdleTimeout < ServerWriteTimeout {
		t.Errorf("ServerIdleTimeout (%v) should be at least ServerWriteTimeout (%v)",
			ServerIdleTimeout, ServerWriteTimeout)
	}

	if ServerReadHeaderTimeout > ServerReadTimeout {
		t.Errorf("ServerReadHeaderTimeout (%v) should not exceed ServerReadTimeout (%v)",
			ServerReadHeaderTimeout, ServerReadTimeout)
	}
}

func TestCacheCleanupAfterTTL(t *testing.T) {
	if ReportCacheCleanupInterval < ReportCacheTTL {
		t.Errorf("ReportCacheCleanupInterval (%v) should be at least ReportCacheTTL (%v)",
			ReportCacheCleanupInterval, ReportCacheTTL)
	}
}

func TestRequestLimits(t *testing.T) {
	if MaxRequestBodyBytes <= 0 {
		t.Fatalf("MaxRequestBodyBytes must be positive, got %d", MaxRequestBodyBytes)
	}
	if MaxDocumentBytes < MaxRequestBodyBytes {
		t.Errorf("MaxDocumentBytes (%d) should be at least MaxRequestBodyBytes (%d)",
			MaxDocumentBytes, MaxRequestBodyBytes)
	}
}
