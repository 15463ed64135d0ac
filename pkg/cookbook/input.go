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
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// checkPresence rejects inputs missing the name, type, or the field the
// declared type requires.
func (in EntryInput) checkPresence() error {
	if strings.TrimSpace(in.Name) == "" || in.Type == "" {
		return newError(KindInvalidInput, in.Name)
	}
	switch in.Type {
	case TypeRecipe:
		if in.RequiredItems == nil {
			return newErrorf(KindInvalidInput, in.Name, "requiredItems is required")
		}
	case TypeIngredient:
		if in.CookTime == nil {
			return newErrorf(KindInvalidInput, in.Name, "cookTime is required")
		}
	}
	return nil
}

// build converts a present input into a typed, validated entry.
func (in EntryInput) build() (Entry, error) {
	name := strings.TrimSpace(in.Name)
	switch in.Type {
	case TypeRecipe:
		items, err := parseRequiredItems(name, in.RequiredItems)
		if err != nil {
			return nil, err
		}
		return Recipe{Name: name, RequiredItems: items}, nil
	case TypeIngredient:
		cookTime, ok := toInt64(in.CookTime)
		if !ok || cookTime < 0 {
			return nil, newErrorf(KindInvalidCookTime, name, "got %v", in.CookTime)
		}
		return Ingredient{Name: name, CookTime: cookTime}, nil
	default:
		return nil, newErrorf(KindInvalidType, name, "got %q", in.Type)
	}
}

// parseRequiredItems accepts a decoded JSON/YAML sequence of objects or an
// already typed []RequiredItem.
func parseRequiredItems(recipe string, raw any) ([]RequiredItem, error) {
	if typed, ok := raw.([]RequiredItem); ok {
		items := make([]RequiredItem, len(typed))
		copy(items, typed)
		return items, validateItems(recipe, items)
	}

	seq, ok := raw.([]any)
	if !ok {
		return nil, newErrorf(KindInvalidItems, recipe, "requiredItems must be a list, got %T", raw)
	}

	items := make([]RequiredItem, 0, len(seq))
	for i, elem := range seq {
		obj, ok := elem.(map[string]any)
		if !ok {
			return nil, newErrorf(KindInvalidItems, recipe, "item %d is not an object", i)
		}
		name, ok := obj["name"].(string)
		if !ok {
			return nil, newErrorf(KindInvalidItems, recipe, "item %d has no name", i)
		}
		qty, ok := toInt64(obj["quantity"])
		if !ok {
			return nil, newErrorf(KindInvalidQuantity, recipe, "item %d (%s) quantity must be a positive integer", i, name)
		}
		items = append(items, RequiredItem{Name: strings.TrimSpace(name), Quantity: qty})
	}

	return items, validateItems(recipe, items)
}

// validateItems enforces non-blank names, positive quantities, unique names
// and a non-empty list, in that order.
func validateItems(recipe string, items []RequiredItem) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		key := nameKey(item.Name)
		if key == "" {
			return newErrorf(KindInvalidItems, recipe, "item %d has no name", i)
		}
		if item.Quantity <= 0 {
			return newErrorf(KindInvalidQuantity, recipe, "item %d (%s) quantity must be a positive integer", i, item.Name)
		}
		if _, dup := seen[key]; dup {
			return newErrorf(KindDuplicateIngredient, recipe, "%s is listed more than once", item.Name)
		}
		seen[key] = struct{}{}
	}
	if len(items) == 0 {
		return newError(KindEmptyRecipe, recipe)
	}
	return nil
}

// validateEntry applies the insertion rules to a typed entry.
func validateEntry(e Entry) (Entry, error) {
	switch v := e.(type) {
	case Ingredient:
		return validateIngredient(v)
	case *Ingredient:
		if v == nil {
			return nil, newError(KindInvalidInput, "")
		}
		return validateIngredient(*v)
	case Recipe:
		return validateRecipe(v)
	case *Recipe:
		if v == nil {
			return nil, newError(KindInvalidInput, "")
		}
		return validateRecipe(*v)
	case nil:
		return nil, newError(KindInvalidInput, "")
	default:
		return nil, newErrorf(KindInvalidType, e.EntryName(), "unsupported entry %T", e)
	}
}

func validateIngredient(i Ingredient) (Entry, error) {
	i.Name = strings.TrimSpace(i.Name)
	if i.Name == "" {
		return nil, newError(KindInvalidInput, "")
	}
	if i.CookTime < 0 {
		return nil, newErrorf(KindInvalidCookTime, i.Name, "got %d", i.CookTime)
	}
	return i, nil
}

func validateRecipe(r Recipe) (Entry, error) {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return nil, newError(KindInvalidInput, "")
	}
	items := make([]RequiredItem, len(r.RequiredItems))
	for i, item := range r.RequiredItems {
		items[i] = RequiredItem{Name: strings.TrimSpace(item.Name), Quantity: item.Quantity}
	}
	if err := validateItems(r.Name, items); err != nil {
		return nil, err
	}
	r.RequiredItems = items
	return r, nil
}

// toInt64 converts a decoded number to int64. Floats must be integral and
// in range; anything that is not a number fails.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintToInt64(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintToInt64(n)
	case float32:
		return floatToInt64(float64(n))
	case float64:
		return floatToInt64(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	default:
		return 0, false
	}
}

func uintToInt64(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// describe is used in log lines.
func (in EntryInput) describe() string {
	return fmt.Sprintf("%s %q", in.Type, in.Name)
}
