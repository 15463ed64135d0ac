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
	"context"
	"fmt"
	"log/slog"

	"github.com/devdonalds/cookbook/pkg/header"
	"github.com/devdonalds/cookbook/pkg/serializer"
)

// Document is a cookbook file: an optional header and entries inserted in
// order.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Entries []EntryInput `json:"entries" yaml:"entries"`
}

// Seed inserts every entry of doc into reg in order and stops at the first
// rejected one. It returns the number of entries inserted.
func Seed(reg *Registry, doc *Document) (int, error) {
	if doc == nil {
		return 0, fmt.Errorf("cookbook document is nil")
	}
	if err := doc.Validate(header.KindCookbook); err != nil {
		return 0, fmt.Errorf("invalid cookbook document: %w", err)
	}

	for i, in := range doc.Entries {
		if err := reg.Insert(in); err != nil {
			return i, fmt.Errorf("entry %d (%s): %w", i, in.Name, err)
		}
	}
	return len(doc.Entries), nil
}

// LoadFile reads a cookbook document from a local path or http/https URL
// and seeds reg with it. opts configure remote fetches.
func LoadFile(ctx context.Context, reg *Registry, path string, opts ...serializer.HttpReaderOption) (int, error) {
	doc, err := serializer.FromFile[Document](ctx, path, opts...)
	if err != nil {
		return 0, fmt.Errorf("failed to load cookbook %q: %w", path, err)
	}

	n, err := Seed(reg, doc)
	if err != nil {
		return n, fmt.Errorf("failed to seed cookbook from %q: %w", path, err)
	}

	slog.Info("cookbook loaded", "path", path, "entries", n, "generation", reg.Generation())
	return n, nil
}
