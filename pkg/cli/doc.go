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

// Package cli implements the cookbook command-line interface.
//
// # Commands
//
//	cookbook serve   [--port N] [--address ADDR] [--seed PATH]
//	cookbook summary --file PATH --name RECIPE [--format json|yaml|table] [--output PATH]
//	cookbook list    --file PATH
//	cookbook parse   TEXT...
//
// serve runs the HTTP API (see package api). summary loads a cookbook
// document (local path or http/https URL) into an in-memory registry and
// resolves one recipe offline. list prints the entry names of a document.
// Both accept --fetch-timeout and --max-document-bytes for remote documents.
// parse prints the normalized form of each argument.
//
// # Global Flags
//
//   - --log-level: debug, info, warn, error (env LOG_LEVEL, default info)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/devdonalds/cookbook/pkg/cli.version=1.0.0'"
package cli
