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

// Package header provides the common document header for cookbook files.
//
// Seed documents and CLI summary output carry a Kubernetes-style header so
// that tools can check what they are reading before decoding the body:
//
//	kind: Cookbook
//	apiVersion: cookbook.dev/v1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//	entries:
//	  - type: ingredient
//	    name: Egg
//	    cookTime: 2
//
// Build a header with functional options:
//
//	h := header.New(
//	    header.WithKind(header.KindCookbook),
//	    header.WithAPIVersion(header.APIVersionV1),
//	)
//
// An empty header is accepted by Validate so that plain documents holding
// only entries keep loading.
package header
