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

// Package server provides the HTTP server shared by the cookbook API.
//
// The server is a thin, stateless wrapper around net/http that adds:
//
//   - Rate limiting using a token bucket (golang.org/x/time/rate)
//   - Request ID tracking (X-Request-Id)
//   - API version negotiation through the Accept header
//   - Request body size limits
//   - Panic recovery
//   - Prometheus RED metrics and a /metrics endpoint
//   - Health and readiness endpoints
//   - Graceful shutdown on SIGINT/SIGTERM
//
// # Usage
//
//	s := server.New(
//	    server.WithName("cookbookd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/entry":   reg.HandleEntry,
//	        "/summary": reg.HandleSummary,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Handlers registered through WithHandler are wrapped in the middleware
// chain. /health, /ready and /metrics are not rate limited.
//
// # Errors
//
// All error bodies share one shape:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "item not in cookbook",
//	  "details": {"kind": "UnknownItem", "name": "Flour"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-30T10:30:00Z",
//	  "retryable": false
//	}
//
// Use WriteError for explicit responses and WriteErrorFromErr to map a
// pkg/errors.StructuredError onto its HTTP status.
//
// # Configuration
//
// NewConfig reads PORT and SHUTDOWN_TIMEOUT_SECONDS from the environment;
// everything else defaults from pkg/defaults.
package server
