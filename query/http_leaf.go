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

package query

import "fmt"

// HTTPLeafTranslator is implemented by leaf predicate node types that can
// (or cannot) contribute a single "key=value" HTTP parameter.
//
// It exists so that query/translate/http can translate a tree containing
// predicates over many different field value types (Eq[T, int], Eq[T,
// string], ...) without needing to name each one: the translator's generic
// translation function is parameterized only by T, and Go's type switches
// can't hold a case for "Eq[T, U] for any U" since U would be an unbound
// type variable in that scope. Exposing the leaf's contribution through a
// method — defined here, alongside the type it belongs to — sidesteps that
// limitation entirely.
type HTTPLeafTranslator[T any] interface {
	Query[T]

	// HTTPKeyValue returns the field's dotted name and the value's string
	// form, and whether this leaf can be expressed as a single HTTP
	// parameter at all. Eq returns ok == true; Ne, Gt and Lt return ok ==
	// false since none of them can be expressed as "field equals value".
	HTTPKeyValue() (key, value string, ok bool)
}

// HTTPKeyValue implements HTTPLeafTranslator[T].
func (e Eq[T, U]) HTTPKeyValue() (key, value string, ok bool) {
	return e.FieldHandle.Name(), fmt.Sprintf("%v", e.Value), true
}

// HTTPKeyValue implements HTTPLeafTranslator[T]. Inequality has no single
// "field=value" form, so it is never translatable.
func (n Ne[T, U]) HTTPKeyValue() (key, value string, ok bool) {
	return n.FieldHandle.Name(), "", false
}

// HTTPKeyValue implements HTTPLeafTranslator[T]. Ordering comparisons have no
// single "field=value" form, so they are never translatable.
func (g Gt[T, U]) HTTPKeyValue() (key, value string, ok bool) {
	return g.FieldHandle.Name(), "", false
}

// HTTPKeyValue implements HTTPLeafTranslator[T].
func (l Lt[T, U]) HTTPKeyValue() (key, value string, ok bool) {
	return l.FieldHandle.Name(), "", false
}

// Unwrap returns whichever alternative this Either currently holds.
func (e Either[T]) Unwrap() Query[T] {
	if e.useRight {
		return e.right
	}
	return e.left
}
