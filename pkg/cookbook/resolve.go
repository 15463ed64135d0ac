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
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"
)

// pathNode is one recipe on the chain currently being expanded.
type pathNode struct {
	name   string
	parent *pathNode
}

// names returns the chain from the root down to this node.
func (p *pathNode) names() []string {
	var out []string
	for n := p; n != nil; n = n.parent {
		out = append(out, n.name)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// unitExpansion is what one unit of a recipe requires: quantities per
// ingredient key and the cook time they add up to.
type unitExpansion struct {
	quantities map[string]int64
	cookTime   int64
}

// visit is a recipe being expanded; next indexes its first unvisited item.
type visit struct {
	key    string
	recipe Recipe
	path   *pathNode
	next   int
}

// Resolve expands the named recipe into total base-ingredient quantities
// and total cook time for a single order. The returned report is owned by
// the caller.
func (r *Registry) Resolve(ctx context.Context, name string) (*Report, error) {
	start := time.Now()

	report, err := r.resolve(ctx, name)

	resolutionDuration.Observe(time.Since(start).Seconds())
	resolutions.WithLabelValues(resolutionResult(err)).Inc()
	if err != nil {
		slog.Debug("resolution failed", "name", name, "error", err)
		return nil, err
	}

	return report, nil
}

func (r *Registry) resolve(ctx context.Context, name string) (*Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := nameKey(name)
	if cached, ok := r.reports.get(r.generation, key); ok {
		return cached, nil
	}

	report, err := r.expand(ctx, key, name)
	if err != nil {
		return nil, err
	}

	r.reports.set(r.generation, key, report)
	return report.clone(), nil
}

// expand walks the recipe graph depth-first with an explicit stack. Each
// recipe's per-unit expansion is computed once and reused wherever the
// recipe appears again, so shared sub-recipes cost nothing extra. A recipe
// re-entered while still on the active path is a cycle.
// Callers hold the read lock.
func (r *Registry) expand(ctx context.Context, key, name string) (*Report, error) {
	root, ok := r.entries[key]
	if !ok {
		return nil, newError(KindRootNotFound, name)
	}
	var rootRecipe Recipe
	switch e := root.(type) {
	case Recipe:
		rootRecipe = e
	case Ingredient:
		return nil, newError(KindRootIsIngredient, e.Name)
	default:
		return nil, fmt.Errorf("unsupported entry type %T", root)
	}

	done := make(map[string]*unitExpansion)
	active := map[string]bool{key: true}
	stack := []visit{{key: key, recipe: rootRecipe, path: &pathNode{name: rootRecipe.Name}}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		top := &stack[len(stack)-1]
		if top.next < len(top.recipe.RequiredItems) {
			item := top.recipe.RequiredItems[top.next]
			top.next++

			childKey := nameKey(item.Name)
			entry, ok := r.entries[childKey]
			if !ok {
				return nil, &Error{Kind: KindUnknownItem, Name: item.Name, Path: top.path.names()}
			}
			child, isRecipe := entry.(Recipe)
			if !isRecipe || done[childKey] != nil {
				continue
			}
			if active[childKey] {
				return nil, &Error{
					Kind: KindCyclicDefinition,
					Name: child.Name,
					Path: append(top.path.names(), child.Name),
				}
			}
			active[childKey] = true
			stack = append(stack, visit{
				key:    childKey,
				recipe: child,
				path:   &pathNode{name: child.Name, parent: top.path},
			})
			continue
		}

		exp, err := r.combine(top.recipe, top.path, done)
		if err != nil {
			return nil, err
		}
		done[top.key] = exp
		delete(active, top.key)
		stack = stack[:len(stack)-1]
	}

	exp := done[key]
	keys := make([]string, 0, len(exp.quantities))
	for k := range exp.quantities {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ingredients := make([]IngredientQuantity, 0, len(keys))
	for _, k := range keys {
		ingredients = append(ingredients, IngredientQuantity{
			Name:     r.entries[k].EntryName(),
			Quantity: exp.quantities[k],
		})
	}

	return &Report{
		Name:        rootRecipe.Name,
		CookTime:    exp.cookTime,
		Ingredients: ingredients,
	}, nil
}

// combine sums the per-unit requirements of a recipe whose items are all
// ingredients or already expanded recipes.
func (r *Registry) combine(recipe Recipe, path *pathNode, done map[string]*unitExpansion) (*unitExpansion, error) {
	exp := &unitExpansion{quantities: make(map[string]int64)}

	overflow := func(name, what string) error {
		return &Error{
			Kind:   KindQuantityOverflow,
			Name:   name,
			Path:   path.names(),
			Detail: fmt.Sprintf("%s exceeds %d", what, int64(math.MaxInt64)),
		}
	}

	addTime := func(name string, qty, unit int64) error {
		t, ok := mulInt64(qty, unit)
		if ok {
			exp.cookTime, ok = addInt64(exp.cookTime, t)
		}
		if !ok {
			return overflow(name, "total cook time")
		}
		return nil
	}

	addQuantity := func(name, key string, qty int64) error {
		total, ok := addInt64(exp.quantities[key], qty)
		if !ok {
			return overflow(name, "total quantity")
		}
		exp.quantities[key] = total
		return nil
	}

	for _, item := range recipe.RequiredItems {
		key := nameKey(item.Name)
		switch e := r.entries[key].(type) {
		case Ingredient:
			if err := addQuantity(e.Name, key, item.Quantity); err != nil {
				return nil, err
			}
			if err := addTime(e.Name, item.Quantity, e.CookTime); err != nil {
				return nil, err
			}

		case Recipe:
			sub := done[key]
			for ingKey, unit := range sub.quantities {
				qty, ok := mulInt64(item.Quantity, unit)
				if !ok {
					return nil, overflow(r.entries[ingKey].EntryName(), "total quantity")
				}
				if err := addQuantity(r.entries[ingKey].EntryName(), ingKey, qty); err != nil {
					return nil, err
				}
			}
			if err := addTime(e.Name, item.Quantity, sub.cookTime); err != nil {
				return nil, err
			}

		default:
			return nil, fmt.Errorf("unsupported entry type %T", e)
		}
	}

	return exp, nil
}

// mulInt64 multiplies non-negative values, reporting overflow.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}

// addInt64 adds non-negative values, reporting overflow.
func addInt64(a, b int64) (int64, bool) {
	if a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}

func resolutionResult(err error) string {
	if err == nil {
		return "success"
	}
	var e *Error
	if errors.As(err, &e) {
		return string(e.Kind)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "canceled"
	}
	return "error"
}
