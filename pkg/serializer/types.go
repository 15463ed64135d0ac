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

// Package serializer reads and writes cookbook documents and reports.
//
// Supported formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Human-readable tabular output (write-only). Values implementing
//     Tabular supply their own rows; anything else is flattened to keys.
//
// Usage:
//
//	writer, err := serializer.NewFileWriter(serializer.FormatYAML, path)
//	if err != nil {
//		return err
//	}
//	defer writer.Close()
//	if err := writer.Serialize(ctx, report); err != nil {
//		return err
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, report)
//
// For seed documents (local paths or http/https URLs):
//
//	doc, err := serializer.FromFile[cookbook.Document](ctx, "cookbook.yaml")
package serializer

import "context"

// Serializer writes a value in some output format.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}

// Tabular is implemented by values with their own table layout. The table
// format renders them as rows instead of flattened fields.
type Tabular interface {
	TableHeader() []string
	TableRows() [][]string
}
