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
	"errors"
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/devdonalds/cookbook/pkg/defaults"
)

// Registry owns every known entry, keyed by lowercase name.
// It is safe for concurrent use: insertions take the write lock and a
// resolution holds the read lock for its whole traversal.
type Registry struct {
	mu         sync.RWMutex
	entries    map[string]Entry
	generation uint64
	reports    *reportCache
}

// Option is a functional option for configuring a Registry.
type Option func(*registryOptions)

type registryOptions struct {
	cacheTTL time.Duration
}

// WithCacheTTL sets how long resolved reports are kept. A non-positive TTL
// disables the report cache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *registryOptions) {
		o.cacheTTL = ttl
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	o := registryOptions{
		cacheTTL: defaults.ReportCacheTTL,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Registry{
		entries: make(map[string]Entry),
		reports: newReportCache(o.cacheTTL),
	}
}

// Insert validates an untyped entry and stores it. The registry is left
// unchanged when an error is returned.
func (r *Registry) Insert(in EntryInput) error {
	if err := in.checkPresence(); err != nil {
		return reject(in.describe(), err)
	}

	entry, buildErr := in.build()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[nameKey(in.Name)]; exists {
		return reject(in.describe(), newError(KindDuplicateName, in.Name))
	}
	if buildErr != nil {
		return reject(in.describe(), buildErr)
	}

	r.put(entry)
	return nil
}

// Add stores an already typed Ingredient or Recipe under the same rules as
// Insert.
func (r *Registry) Add(e Entry) error {
	entry, err := validateEntry(e)
	if errors.Is(err, ErrInvalidInput) {
		return reject("entry", err)
	}

	name := e.EntryName()
	if entry != nil {
		name = entry.EntryName()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[nameKey(name)]; exists {
		return reject(name, newError(KindDuplicateName, name))
	}
	if err != nil {
		return reject(name, err)
	}

	r.put(entry)
	return nil
}

// put stores an entry and starts a new generation. Callers hold the write lock.
func (r *Registry) put(e Entry) {
	r.entries[nameKey(e.EntryName())] = e
	r.generation++
	r.reports.flush()

	entriesInserted.WithLabelValues(string(e.EntryType())).Inc()
	slog.Debug("entry stored",
		"type", e.EntryType(),
		"name", e.EntryName(),
		"generation", r.generation,
	)
}

func reject(what string, err error) error {
	var e *Error
	if errors.As(err, &e) {
		entryRejections.WithLabelValues(string(e.Kind)).Inc()
	}
	slog.Debug("entry rejected", "entry", what, "error", err)
	return err
}

// Get returns the entry with the given case-insensitive name.
func (r *Registry) Get(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[nameKey(name)]
	if !ok {
		return nil, false
	}
	if rec, isRecipe := e.(Recipe); isRecipe {
		rec.RequiredItems = slices.Clone(rec.RequiredItems)
		return rec, true
	}
	return e, true
}

// Len returns the number of stored entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Names returns the stored entry names ordered by lowercase name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = r.entries[k].EntryName()
	}
	return names
}

// Generation returns the number of successful insertions so far.
func (r *Registry) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generation
}
