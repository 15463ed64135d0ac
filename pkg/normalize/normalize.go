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

package normalize

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidName is returned when a name is empty after normalization.
var ErrInvalidName = errors.New("name is empty after normalization")

var (
	separators = strings.NewReplacer("-", " ", "_", " ")
	disallowed = regexp.MustCompile(`[^A-Za-z\s]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Normalize returns the canonical title-cased form of raw.
func Normalize(raw string) (string, error) {
	s := separators.Replace(raw)
	s = disallowed.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", ErrInvalidName
	}

	// Casers carry state and are not safe for concurrent use.
	return cases.Title(language.English).String(s), nil
}
