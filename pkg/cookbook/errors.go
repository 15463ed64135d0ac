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
	"fmt"
	"strings"
)

// Kind classifies registry and resolution failures.
type Kind string

const (
	KindInvalidInput        Kind = "InvalidInput"
	KindDuplicateName       Kind = "DuplicateName"
	KindInvalidType         Kind = "InvalidType"
	KindInvalidItems        Kind = "InvalidItems"
	KindInvalidQuantity     Kind = "InvalidQuantity"
	KindDuplicateIngredient Kind = "DuplicateIngredient"
	KindEmptyRecipe         Kind = "EmptyRecipe"
	KindInvalidCookTime     Kind = "InvalidCookTime"

	KindRootNotFound     Kind = "RootNotFound"
	KindRootIsIngredient Kind = "RootIsIngredient"
	KindUnknownItem      Kind = "UnknownItem"
	KindCyclicDefinition Kind = "CyclicDefinition"
	KindQuantityOverflow Kind = "QuantityOverflow"
)

var kindMessages = map[Kind]string{
	KindInvalidInput:        "invalid input received",
	KindDuplicateName:       "name already in cookbook",
	KindInvalidType:         "invalid type",
	KindInvalidItems:        "invalid items type",
	KindInvalidQuantity:     "invalid item quantity",
	KindDuplicateIngredient: "ingredient names are not unique",
	KindEmptyRecipe:         "no ingredients given",
	KindInvalidCookTime:     "invalid cook time",
	KindRootNotFound:        "recipe not in cookbook",
	KindRootIsIngredient:    "ingredients cannot be summarized",
	KindUnknownItem:         "item not in cookbook",
	KindCyclicDefinition:    "recipe requires itself",
	KindQuantityOverflow:    "quantity too large",
}

// Message returns the short human-readable text for the kind.
func (k Kind) Message() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return string(k)
}

// Error is returned for every rejected insertion and failed resolution.
type Error struct {
	Kind Kind
	// Name is the entry or item the failure is about, if any.
	Name string
	// Path is the chain of recipes that closes a cycle.
	Path []string
	// Detail adds context such as the offending item index.
	Detail string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Message())
	if e.Name != "" {
		fmt.Fprintf(&b, ": %s", e.Name)
	}
	if len(e.Path) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(e.Path, " -> "))
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	return b.String()
}

// Is matches any *Error of the same Kind, so the Err* sentinels work with
// errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, name string) *Error {
	return &Error{Kind: kind, Name: name}
}

func newErrorf(kind Kind, name, format string, args ...any) *Error {
	return &Error{Kind: kind, Name: name, Detail: fmt.Sprintf(format, args...)}
}

var (
	ErrInvalidInput        = &Error{Kind: KindInvalidInput}
	ErrDuplicateName       = &Error{Kind: KindDuplicateName}
	ErrInvalidType         = &Error{Kind: KindInvalidType}
	ErrInvalidItems        = &Error{Kind: KindInvalidItems}
	ErrInvalidQuantity     = &Error{Kind: KindInvalidQuantity}
	ErrDuplicateIngredient = &Error{Kind: KindDuplicateIngredient}
	ErrEmptyRecipe         = &Error{Kind: KindEmptyRecipe}
	ErrInvalidCookTime     = &Error{Kind: KindInvalidCookTime}
	ErrRootNotFound        = &Error{Kind: KindRootNotFound}
	ErrRootIsIngredient    = &Error{Kind: KindRootIsIngredient}
	ErrUnknownItem         = &Error{Kind: KindUnknownItem}
	ErrCyclicDefinition    = &Error{Kind: KindCyclicDefinition}
	ErrQuantityOverflow    = &Error{Kind: KindQuantityOverflow}
)
