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

// Package field provides typed accessors describing how to read, and what to
// call, one field of a record type.
//
// A Field[T, U] is a pure value: a display name (a stable dotted path, e.g.
// "isbn.value") paired with a function projecting a T to a U. Fields compose
// via Then so that nested access can be expressed without exposing the
// intermediate type to callers.
package field

import "strings"

// Field is a typed handle representing a projection from a record of type T
// to a subvalue of type U, together with the name that projection is known
// by (a dotted path such as "title" or "isbn.value").
//
// Field values are immutable and reference nothing but themselves; they are
// intended to be constructed once per record type (conventionally by one
// associated constructor per field, see package query's doc comment) and
// reused for the lifetime of the program.
type Field[T, U any] struct {
	name string
	get  func(T) U
}

// New creates a Field with the given display name and getter.
//
// name must be a single path segment that is a valid identifier at every
// transport layer a translator might target (it can become an HTTP
// parameter key, a SQL column fragment, or a GraphQL argument name).
func New[T, U any](name string, get func(T) U) Field[T, U] {
	return Field[T, U]{name: name, get: get}
}

// Name returns the field's dotted display path.
func (f Field[T, U]) Name() string {
	return f.name
}

// Get projects data to the field's value.
func (f Field[T, U]) Get(data T) U {
	return f.get(data)
}

// Then composes f with inner, producing a handle that projects all the way
// from T to V. The resulting name is the concatenation of both names joined
// by ".", and the resulting getter is inner.Get(f.Get(data)).
func Then[T, U, V any](f Field[T, U], inner Field[U, V]) Field[T, V] {
	return Field[T, V]{
		name: f.name + "." + inner.name,
		get: func(data T) V {
			return inner.get(f.get(data))
		},
	}
}

// HasDottedPath reports whether the field's name contains more than one path
// segment. Translators that cannot accept dotted paths (e.g. most HTTP query
// parameter schemes treat "." as just another character, but some backends
// reject it) use this to decide whether a predicate over this field must be
// placed in residue rather than translated.
func (f Field[T, U]) HasDottedPath() bool {
	return strings.Contains(f.name, ".")
}
