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

// Package normalize canonicalizes free-form handwritten names.
//
// Normalize turns "ground-beef_123!" into "Ground Beef": separators become
// spaces, anything that is not a letter or whitespace is dropped, runs of
// whitespace collapse, and each word is title-cased. A name that reduces to
// nothing is rejected with ErrInvalidName.
//
// The package is pure and stateless. HandleParse exposes it over HTTP.
package normalize
