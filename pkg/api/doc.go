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

// Package api wires the cookbook handlers into the HTTP server.
//
// # Usage
//
//	if err := api.Serve(ctx, api.WithSeed("cookbook.yaml")); err != nil {
//	    log.Fatalf("server error: %v", err)
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - POST /entry   - Add an ingredient or recipe (JSON, or YAML by Content-Type)
//   - GET /summary  - Resolve ?name= into total ingredient quantities and cook time
//   - POST /parse   - Normalize a handwritten name: {"input": "..."} -> {"msg": "..."}
//
// System endpoints (no rate limiting):
//   - GET /health  - Liveness check
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl -X POST http://localhost:8080/entry \
//	  -H "Content-Type: application/json" \
//	  -d '{"type":"ingredient","name":"Egg","cookTime":2}'
//
//	curl "http://localhost:8080/summary?name=Omelette"
//
// # Configuration
//
//   - PORT: HTTP server port (default: 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown window
//   - LOG_LEVEL: logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/devdonalds/cookbook/pkg/api.version=1.0.0'"
package api
