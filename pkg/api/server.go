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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/devdonalds/cookbook/pkg/cookbook"
	"github.com/devdonalds/cookbook/pkg/defaults"
	"github.com/devdonalds/cookbook/pkg/normalize"
	"github.com/devdonalds/cookbook/pkg/serializer"
	"github.com/devdonalds/cookbook/pkg/server"
)

const (
	name           = "cookbookd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/devdonalds/cookbook/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Option configures Serve.
type Option func(*options)

type options struct {
	seedPath string
	address  string
	port     int
	cacheTTL time.Duration
}

// WithSeed loads a cookbook document (path or http/https URL) before serving.
func WithSeed(path string) Option {
	return func(o *options) {
		o.seedPath = path
	}
}

// WithAddress sets the listen address.
func WithAddress(address string) Option {
	return func(o *options) {
		o.address = address
	}
}

// WithPort overrides the listen port. Zero keeps the configured default.
func WithPort(port int) Option {
	return func(o *options) {
		o.port = port
	}
}

// WithCacheTTL sets the report cache TTL of a registry created by Serve.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.cacheTTL = ttl
	}
}

// Routes returns the application handlers for reg.
func Routes(reg *cookbook.Registry) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/entry":   reg.HandleEntry,
		"/summary": reg.HandleSummary,
		"/parse":   normalize.HandleParse,
	}
}

// NewServer builds the registry, loads the seed document if one is set, and
// returns a server ready to Run.
func NewServer(ctx context.Context, opts ...Option) (*server.Server, *cookbook.Registry, error) {
	o := options{
		cacheTTL: defaults.ReportCacheTTL,
	}
	for _, opt := range opts {
		opt(&o)
	}

	reg := cookbook.New(cookbook.WithCacheTTL(o.cacheTTL))

	if o.seedPath != "" {
		if _, err := cookbook.LoadFile(ctx, reg, o.seedPath, serializer.WithUserAgent(UserAgent())); err != nil {
			return nil, nil, fmt.Errorf("failed to seed registry: %w", err)
		}
	}

	cfg := server.NewConfig()
	cfg.Address = o.address
	if o.port > 0 {
		cfg.Port = o.port
	}

	s := server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(reg)),
	)
	return s, reg, nil
}

// Serve starts the API server and blocks until shutdown.
func Serve(ctx context.Context, opts ...Option) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s, reg, err := NewServer(ctx, opts...)
	if err != nil {
		return err
	}
	slog.Info("registry ready", "entries", reg.Len(), "generation", reg.Generation())

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// Version returns the build version string.
func Version() string {
	return version
}

// UserAgent identifies this build on outbound document fetches.
func UserAgent() string {
	return name + "/" + version
}
