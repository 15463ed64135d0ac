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
	"slices"
	"strconv"
	"strings"
)

// EntryType tags the variant of an entry on the wire.
type EntryType string

const (
	TypeRecipe     EntryType = "recipe"
	TypeIngredient EntryType = "ingredient"
)

// Entry is an Ingredient or a Recipe.
type Entry interface {
	EntryName() string
	EntryType() EntryType

	entry()
}

// Ingredient is a base entry that cannot be expanded further.
type Ingredient struct {
	Name     string `json:"name" yaml:"name"`
	CookTime int64  `json:"cookTime" yaml:"cookTime"`
}

func (i Ingredient) EntryName() string    { return i.Name }
func (i Ingredient) EntryType() EntryType { return TypeIngredient }
func (Ingredient) entry()                 {}

// Recipe is a composite entry defined by other entries.
type Recipe struct {
	Name          string         `json:"name" yaml:"name"`
	RequiredItems []RequiredItem `json:"requiredItems" yaml:"requiredItems"`
}

func (r Recipe) EntryName() string    { return r.Name }
func (r Recipe) EntryType() EntryType { return TypeRecipe }
func (Recipe) entry()                 {}

// RequiredItem references another entry by name.
type RequiredItem struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int64  `json:"quantity" yaml:"quantity"`
}

// EntryInput is the untyped shape accepted by Registry.Insert.
// RequiredItems and CookTime stay untyped so that shape errors can be
// reported with the right kind instead of failing the decode.
type EntryInput struct {
	Type          EntryType `json:"type" yaml:"type"`
	Name          string    `json:"name" yaml:"name"`
	RequiredItems any       `json:"requiredItems,omitempty" yaml:"requiredItems,omitempty"`
	CookTime      any       `json:"cookTime,omitempty" yaml:"cookTime,omitempty"`
}

// Report is the flattened result of resolving a recipe.
type Report struct {
	Name        string               `json:"name" yaml:"name"`
	CookTime    int64                `json:"cookTime" yaml:"cookTime"`
	Ingredients []IngredientQuantity `json:"ingredients" yaml:"ingredients"`
}

// IngredientQuantity is one row of a Report.
type IngredientQuantity struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int64  `json:"quantity" yaml:"quantity"`
}

func (r *Report) clone() *Report {
	if r == nil {
		return nil
	}
	out := *r
	out.Ingredients = slices.Clone(r.Ingredients)
	return &out
}

// TableHeader implements serializer.Tabular.
func (r *Report) TableHeader() []string {
	return []string{"INGREDIENT", "QUANTITY"}
}

// TableRows lists one row per ingredient followed by the total cook time.
func (r *Report) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Ingredients)+1)
	for _, q := range r.Ingredients {
		rows = append(rows, []string{q.Name, strconv.FormatInt(q.Quantity, 10)})
	}
	return append(rows, []string{"(cook time)", strconv.FormatInt(r.CookTime, 10)})
}

// nameKey is the registry key for a name.
func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
