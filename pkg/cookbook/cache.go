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
	"fmt"
	"log/slog"
	"time"

	"github.com/devdonalds/cookbook/pkg/defaults"
	gocache "github.com/patrickmn/go-cache"
)

// reportCache memoizes resolution reports. Keys carry the registry
// generation, so a report is never served after an insertion. A nil
// *reportCache is a disabled cache.
type reportCache struct {
	store *gocache.Cache
}

func newReportCache(ttl time.Duration) *reportCache {
	if ttl <= 0 {
		return nil
	}
	return &reportCache{
		store: gocache.New(ttl, defaults.ReportCacheCleanupInterval),
	}
}

func reportCacheKey(generation uint64, key string) string {
	return fmt.Sprintf("%d/%s", generation, key)
}

// get returns a copy of the cached report.
func (c *reportCache) get(generation uint64, key string) (*Report, bool) {
	if c == nil {
		return nil, false
	}

	value, found := c.store.Get(reportCacheKey(generation, key))
	if !found {
		reportCacheMisses.Inc()
		return nil, false
	}

	report, ok := value.(*Report)
	if !ok {
		slog.Error("wrong type in report cache", "key", key)
		reportCacheMisses.Inc()
		return nil, false
	}

	reportCacheHits.Inc()
	return report.clone(), true
}

func (c *reportCache) set(generation uint64, key string, report *Report) {
	if c == nil {
		return
	}
	c.store.SetDefault(reportCacheKey(generation, key), report.clone())
}

// flush drops every report; older generations can never be read again.
func (c *reportCache) flush() {
	if c == nil {
		return
	}
	c.store.Flush()
}

func (c *reportCache) len() int {
	if c == nil {
		return 0
	}
	return c.store.ItemCount()
}
