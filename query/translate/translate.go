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

// Package translate defines the shared shape of a query translation: a
// native form for some backend paired with the residue — sub-queries the
// backend cannot itself evaluate, which must be applied locally after
// fetching a (possibly larger) superset of records.
//
// Concrete translators (query/translate/http, query/translate/sql,
// query/translate/graphql) each define their own native form type and a
// Single[T] alias of Single[Native, T] as their result. This package holds only the part that
// is common to every backend.
package translate

import "github.com/botobag/broker/query"

// Single is the result of lowering a Query[T] to a single native request for
// some backend. An empty Residue means the translation was total; the
// native form alone selects exactly the desired records. A non-empty
// Residue means Native selects a superset, and each sub-query in Residue
// must be evaluated (via Query[T].Evaluate) against every fetched record,
// dropping those that don't match, to recover the desired result.
type Single[Native, T any] struct {
	Native  Native
	Residue []query.Query[T]
}

// Total reports whether the translation required no local filtering.
func (s Single[Native, T]) Total() bool {
	return len(s.Residue) == 0
}

// Evaluate applies every residue sub-query to data, short-circuiting on the
// first failure. An empty residue always matches.
func (s Single[Native, T]) Evaluate(data T) bool {
	for _, q := range s.Residue {
		if !q.Evaluate(data) {
			return false
		}
	}
	return true
}
