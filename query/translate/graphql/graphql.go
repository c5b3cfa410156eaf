/**
 * Copyright (c) 2026, The Broker Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package graphql lowers a query.Query into GraphQL field arguments, for use
// by GraphQL-backed connectors.
package graphql

import (
	"strings"

	"github.com/botobag/broker/query"
	"github.com/botobag/broker/query/translate"
	"github.com/vektah/gqlparser/v2/ast"
)

// Single is the result of translating a Query into the arguments for one
// GraphQL field selection, plus whatever residue must be filtered locally.
type Single[T any] = translate.Single[ast.ArgumentList, T]

// Translator lowers Query[T] values into GraphQL argument form.
type Translator[T any] struct{}

// Single translates q into an ast.ArgumentList, possibly with residue.
//
// A single GraphQL field selection's arguments are conventionally an
// AND-of-equalities, exactly like an HTTP query string, so the per-node
// rules mirror query/translate/http's almost exactly: True is empty; Eq is
// a single argument; Ne/Gt/Lt/Not are residue-only; And concatenates; Or/Xor
// keep only the arguments common to both sides (concatenating residue, plus
// Xor keeps itself whole in residue too).
//
// GraphQL argument names cannot contain ".", so a predicate over a field
// whose display name has more than one dotted segment
// (field.Field.HasDottedPath) is never translatable here even when it
// would translate cleanly to HTTP — it is always placed in residue.
func (Translator[T]) Single(q query.Query[T]) Single[T] {
	return toGraphQLSingle[T](q)
}

func toGraphQLSingle[T any](q query.Query[T]) Single[T] {
	switch n := q.(type) {
	case query.True[T]:
		return Single[T]{}

	case query.And[T]:
		left := toGraphQLSingle[T](n.Left)
		right := toGraphQLSingle[T](n.Right)
		return Single[T]{
			Native:  append(append(ast.ArgumentList{}, left.Native...), right.Native...),
			Residue: append(append([]query.Query[T]{}, left.Residue...), right.Residue...),
		}

	case query.Or[T]:
		return intersection[T](n.Left, n.Right)

	case query.Xor[T]:
		single := intersection[T](n.Left, n.Right)
		single.Residue = append(single.Residue, n)
		return single

	case query.Not[T]:
		return Single[T]{Residue: []query.Query[T]{n}}

	case query.Either[T]:
		return toGraphQLSingle[T](n.Unwrap())
	}

	if leaf, ok := q.(query.HTTPLeafTranslator[T]); ok {
		if key, value, translatable := leaf.HTTPKeyValue(); translatable && !strings.Contains(key, ".") {
			return Single[T]{Native: ast.ArgumentList{{
				Name:  key,
				Value: &ast.Value{Raw: value, Kind: ast.StringValue},
			}}}
		}
	}

	return Single[T]{Residue: []query.Query[T]{q}}
}

// intersection implements the rule shared by Or and Xor: keep only the
// arguments present in both sides' single-translations, by name and raw
// value.
func intersection[T any](left, right query.Query[T]) Single[T] {
	l := toGraphQLSingle[T](left)
	r := toGraphQLSingle[T](right)

	type key struct{ name, raw string }
	rSet := make(map[key]struct{}, len(r.Native))
	for _, a := range r.Native {
		rSet[key{a.Name, a.Value.Raw}] = struct{}{}
	}

	var kept ast.ArgumentList
	for _, a := range l.Native {
		if _, ok := rSet[key{a.Name, a.Value.Raw}]; ok {
			kept = append(kept, a)
		}
	}

	return Single[T]{
		Native:  kept,
		Residue: append(append([]query.Query[T]{}, l.Residue...), r.Residue...),
	}
}
