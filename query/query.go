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

// Package query implements the query algebra: a typed abstract syntax tree of
// field predicates and Boolean combinators, statically bound to a record
// type so that an Eq over a Book field cannot be applied to a User.
//
// A Query is pure (no hidden state, no I/O), deterministic under local
// evaluation, and independent of any translator — the tree never embeds a
// target-specific form. Translation into a backend's dialect lives in the
// query/translate subpackages and operates on these same node types.
//
// Record types conventionally expose one constructor per field, each
// returning a field.Field[T, U]; see package field. This package itself does
// not generate those constructors (that is explicitly out of scope, the way
// a hand-written #[derive(Queryable)] macro would be in the language this
// library was modeled on), so callers declare them by hand, e.g.:
//
//	func (Book) Title() field.Field[Book, string] {
//		return field.New("title", func(b Book) string { return b.Title })
//	}
package query

// Query is a node of the query AST, evaluable in-process against a record of
// type T.
type Query[T any] interface {
	// Evaluate reports whether data matches this (sub)query.
	Evaluate(data T) bool

	// Debug renders the node's compact infix form, e.g. "title = Rust" or
	// "(a = 1) & (b = 2)". Every node is an ordinary struct, so the verbose
	// structured form for logs mentioned by this library's design ("Debug
	// rendering") is simply Go's own %#v/%+v on the value; Debug exists for
	// the compact alternative fmt doesn't give you for free.
	Debug() string
}

// True matches every record. It is useful to express "fetch all data from a
// source".
type True[T any] struct{}

// Evaluate implements Query[T]. It always returns true.
func (True[T]) Evaluate(T) bool { return true }

// Debug implements Query[T].
func (True[T]) Debug() string { return "True" }
