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

// Package cookbook holds the entry registry and the recipe resolution engine.
//
// A cookbook is a set of named entries. An entry is either a base
// Ingredient with an intrinsic cook time, or a Recipe made of other entries
// by name and quantity. Names are unique case-insensitively across the whole
// registry and are never overwritten.
//
// # Registry
//
// Entries come in through Insert, which takes the untyped wire shape
// (EntryInput) and applies every consistency rule, or Add, which takes an
// already typed Ingredient or Recipe. A rejected insertion leaves the
// registry unchanged and returns an *Error whose Kind names the rule:
//
//	reg := cookbook.New()
//	err := reg.Insert(cookbook.EntryInput{
//	    Type:     cookbook.TypeIngredient,
//	    Name:     "Egg",
//	    CookTime: 2,
//	})
//	if errors.Is(err, cookbook.ErrDuplicateName) {
//	    // already known
//	}
//
// Required items are references by name and are only looked up during
// resolution, so recipes may be declared before their ingredients.
//
// # Resolution
//
// Resolve expands a recipe into the total quantity of every base ingredient
// it needs and the total cook time of one order:
//
//	report, err := reg.Resolve(ctx, "Meatball Spaghetti")
//
// Quantities multiply down the tree and add up across branches that reach
// the same ingredient. A recipe that requires itself on any path fails with
// KindCyclicDefinition. Any failure aborts the whole resolution; there are
// no partial reports. Ingredients in a report are ordered by lowercase name.
//
// Reports are cached per registry generation; every successful insertion
// starts a new generation.
//
// # HTTP
//
// HandleEntry and HandleSummary expose Insert and Resolve. Every registry
// and resolution failure is reported as 400 INVALID_REQUEST with the kind in
// the error details.
package cookbook
