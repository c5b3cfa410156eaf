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

// Package http lowers a query.Query into HTTP query parameters, for use by
// REST connectors (see package rest).
package http

import (
	"github.com/botobag/broker/query"
	"github.com/botobag/broker/query/translate"
)

// KV is a single HTTP query parameter.
type KV struct {
	Key   string
	Value string
}

// HTTPQuery is a sequence of key-value pairs ready to be appended to a URL
// as query parameters. Duplicate keys and key order are preserved — not
// every endpoint treats either as semantic-free, so this package
// conservatively never deduplicates or reorders.
type HTTPQuery []KV

// Single is the result of translating a Query into one HTTP request's worth
// of parameters, plus whatever residue must be filtered locally.
type Single[T any] = translate.Single[HTTPQuery, T]

// Translator lowers Query[T] values into HTTP form. It has no state; its
// methods are plain recursive functions over the query's AST, exposed as a
// capability value so callers can pass it around the way they would any
// other translator.
type Translator[T any] struct{}

// Single translates q into a single HTTPQuery, possibly with residue.
//
// Per-node rules:
//   - True: no parameters, no residue.
//   - Eq(f, v): one parameter {f.Name(): str(v)}, no residue.
//   - Ne, Gt, Lt, Not: no parameters; the whole predicate becomes residue
//     (HTTP query strings can't express "not equal" or ordering).
//   - And(a, b): concatenates both sides' parameters and residues.
//   - Or(a, b): keeps only the parameters common to both sides (any record
//     satisfying the Or satisfies those anyway) and concatenates residues.
//   - Xor(a, b): same intersection as Or, but the whole Xor is additionally
//     kept as residue, since the intersection alone over-matches.
func (Translator[T]) Single(q query.Query[T]) Single[T] {
	return toHTTPSingle[T](q)
}

// Multi translates q into a set of HTTPQuery values whose union (after
// deduplication) exactly equals q's result set, with no residue at all. It
// returns ok == false if no such exact translation is possible.
//
// Per-node rules:
//   - True: a single empty query.
//   - Eq(f, v): a single one-parameter query.
//   - Ne, Gt, Lt, Not, Xor: impossible.
//   - And(a, b): the cartesian product of both sides' parts (this can grow
//     very quickly for complex queries).
//   - Or(a, b): the concatenation of both sides' parts.
func (Translator[T]) Multi(q query.Query[T]) ([]HTTPQuery, bool) {
	return toHTTPMulti[T](q)
}

func toHTTPSingle[T any](q query.Query[T]) Single[T] {
	switch n := q.(type) {
	case query.True[T]:
		return Single[T]{}

	case query.And[T]:
		left := toHTTPSingle[T](n.Left)
		right := toHTTPSingle[T](n.Right)
		return Single[T]{
			Native:  append(append(HTTPQuery{}, left.Native...), right.Native...),
			Residue: append(append([]query.Query[T]{}, left.Residue...), right.Residue...),
		}

	case query.Or[T]:
		return orIntersection[T](n.Left, n.Right)

	case query.Xor[T]:
		single := orIntersection[T](n.Left, n.Right)
		single.Residue = append(single.Residue, n)
		return single

	case query.Not[T]:
		return Single[T]{Residue: []query.Query[T]{n}}

	case query.Either[T]:
		return toHTTPSingle[T](n.Unwrap())
	}

	if leaf, ok := q.(query.HTTPLeafTranslator[T]); ok {
		if key, value, translatable := leaf.HTTPKeyValue(); translatable {
			return Single[T]{Native: HTTPQuery{{Key: key, Value: value}}}
		}
	}

	// Unknown or inherently untranslatable leaf: keep it whole as residue.
	return Single[T]{Residue: []query.Query[T]{q}}
}

// orIntersection implements the rule shared by Or and Xor: keep only the
// parameters present in both sides' single-translations.
func orIntersection[T any](left, right query.Query[T]) Single[T] {
	l := toHTTPSingle[T](left)
	r := toHTTPSingle[T](right)

	rSet := make(map[KV]struct{}, len(r.Native))
	for _, kv := range r.Native {
		rSet[kv] = struct{}{}
	}

	var kept HTTPQuery
	for _, kv := range l.Native {
		if _, ok := rSet[kv]; ok {
			kept = append(kept, kv)
		}
	}

	return Single[T]{
		Native:  kept,
		Residue: append(append([]query.Query[T]{}, l.Residue...), r.Residue...),
	}
}

func toHTTPMulti[T any](q query.Query[T]) ([]HTTPQuery, bool) {
	switch n := q.(type) {
	case query.True[T]:
		return []HTTPQuery{{}}, true

	case query.And[T]:
		left, ok := toHTTPMulti[T](n.Left)
		if !ok {
			return nil, false
		}
		right, ok := toHTTPMulti[T](n.Right)
		if !ok {
			return nil, false
		}

		result := make([]HTTPQuery, 0, len(left)*len(right))
		for _, l := range left {
			for _, r := range right {
				combined := make(HTTPQuery, 0, len(l)+len(r))
				combined = append(combined, l...)
				combined = append(combined, r...)
				result = append(result, combined)
			}
		}
		return result, true

	case query.Or[T]:
		left, ok := toHTTPMulti[T](n.Left)
		if !ok {
			return nil, false
		}
		right, ok := toHTTPMulti[T](n.Right)
		if !ok {
			return nil, false
		}
		return append(append([]HTTPQuery{}, left...), right...), true

	case query.Xor[T], query.Not[T]:
		return nil, false

	case query.Either[T]:
		return toHTTPMulti[T](n.Unwrap())
	}

	if leaf, ok := q.(query.HTTPLeafTranslator[T]); ok {
		if key, value, translatable := leaf.HTTPKeyValue(); translatable {
			return []HTTPQuery{{{Key: key, Value: value}}}, true
		}
	}

	return nil, false
}
