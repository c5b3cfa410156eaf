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

import (
	"cmp"
	"fmt"

	"github.com/botobag/broker/field"
)

// Eq checks that the field's value equals Value.
type Eq[T any, U comparable] struct {
	FieldHandle field.Field[T, U]
	Value       U
}

// NewEq constructs an Eq predicate. U must support equality; this is
// statically enforced by the comparable constraint, so a field/value type
// mismatch, or one that doesn't support equality, is a compile-time error.
func NewEq[T any, U comparable](f field.Field[T, U], value U) Eq[T, U] {
	return Eq[T, U]{FieldHandle: f, Value: value}
}

// Evaluate implements Query[T].
func (e Eq[T, U]) Evaluate(data T) bool {
	return e.FieldHandle.Get(data) == e.Value
}

// Debug implements Query[T].
func (e Eq[T, U]) Debug() string {
	return fmt.Sprintf("%s = %v", e.FieldHandle.Name(), e.Value)
}

// Ne checks that the field's value does not equal Value.
type Ne[T any, U comparable] struct {
	FieldHandle field.Field[T, U]
	Value       U
}

// NewNe constructs an Ne predicate.
func NewNe[T any, U comparable](f field.Field[T, U], value U) Ne[T, U] {
	return Ne[T, U]{FieldHandle: f, Value: value}
}

// Evaluate implements Query[T].
func (n Ne[T, U]) Evaluate(data T) bool {
	return n.FieldHandle.Get(data) != n.Value
}

// Debug implements Query[T].
func (n Ne[T, U]) Debug() string {
	return fmt.Sprintf("%s != %v", n.FieldHandle.Name(), n.Value)
}

// Gt checks that the field's value is greater than Value.
type Gt[T any, U cmp.Ordered] struct {
	FieldHandle field.Field[T, U]
	Value       U
}

// NewGt constructs a Gt predicate. U must support ordering; this is
// statically enforced by the cmp.Ordered constraint.
func NewGt[T any, U cmp.Ordered](f field.Field[T, U], value U) Gt[T, U] {
	return Gt[T, U]{FieldHandle: f, Value: value}
}

// Evaluate implements Query[T].
func (g Gt[T, U]) Evaluate(data T) bool {
	return g.FieldHandle.Get(data) > g.Value
}

// Debug implements Query[T].
func (g Gt[T, U]) Debug() string {
	return fmt.Sprintf("%s > %v", g.FieldHandle.Name(), g.Value)
}

// Lt checks that the field's value is less than Value.
type Lt[T any, U cmp.Ordered] struct {
	FieldHandle field.Field[T, U]
	Value       U
}

// NewLt constructs a Lt predicate.
func NewLt[T any, U cmp.Ordered](f field.Field[T, U], value U) Lt[T, U] {
	return Lt[T, U]{FieldHandle: f, Value: value}
}

// Evaluate implements Query[T].
func (l Lt[T, U]) Evaluate(data T) bool {
	return l.FieldHandle.Get(data) < l.Value
}

// Debug implements Query[T].
func (l Lt[T, U]) Debug() string {
	return fmt.Sprintf("%s < %v", l.FieldHandle.Name(), l.Value)
}

// And performs a short-circuiting AND of two subqueries.
type And[T any] struct {
	Left, Right Query[T]
}

// Evaluate implements Query[T]. Right is not evaluated if Left is false.
func (a And[T]) Evaluate(data T) bool {
	return a.Left.Evaluate(data) && a.Right.Evaluate(data)
}

// Debug implements Query[T].
func (a And[T]) Debug() string {
	return fmt.Sprintf("(%s) & (%s)", a.Left.Debug(), a.Right.Debug())
}

// Or performs a short-circuiting OR of two subqueries.
type Or[T any] struct {
	Left, Right Query[T]
}

// Evaluate implements Query[T]. Right is not evaluated if Left is true.
func (o Or[T]) Evaluate(data T) bool {
	return o.Left.Evaluate(data) || o.Right.Evaluate(data)
}

// Debug implements Query[T].
func (o Or[T]) Debug() string {
	return fmt.Sprintf("(%s) | (%s)", o.Left.Debug(), o.Right.Debug())
}

// Xor performs an exclusive OR of two subqueries. Both operands are always
// evaluated; unlike And/Or there is nothing to short-circuit on.
type Xor[T any] struct {
	Left, Right Query[T]
}

// Evaluate implements Query[T].
func (x Xor[T]) Evaluate(data T) bool {
	return x.Left.Evaluate(data) != x.Right.Evaluate(data)
}

// Debug implements Query[T].
func (x Xor[T]) Debug() string {
	return fmt.Sprintf("(%s) ^ (%s)", x.Left.Debug(), x.Right.Debug())
}

// Not negates a subquery.
type Not[T any] struct {
	Query Query[T]
}

// Evaluate implements Query[T].
func (n Not[T]) Evaluate(data T) bool {
	return !n.Query.Evaluate(data)
}

// Debug implements Query[T].
func (n Not[T]) Debug() string {
	return fmt.Sprintf("!(%s)", n.Query.Debug())
}

// Either is a runtime choice between two queries of the same target type.
// It exists so that translators may produce heterogeneous residue fragments
// (e.g. one branch keeps an Eq, another keeps an And) that still satisfy the
// Query[T] contract as a single value.
type Either[T any] struct {
	left, right Query[T]
	useRight    bool
}

// Left wraps q as the left alternative of an Either.
func Left[T any](q Query[T]) Either[T] {
	return Either[T]{left: q}
}

// Right wraps q as the right alternative of an Either.
func Right[T any](q Query[T]) Either[T] {
	return Either[T]{right: q, useRight: true}
}

// Evaluate implements Query[T], delegating to whichever alternative is held.
func (e Either[T]) Evaluate(data T) bool {
	if e.useRight {
		return e.right.Evaluate(data)
	}
	return e.left.Evaluate(data)
}

// Debug implements Query[T].
func (e Either[T]) Debug() string {
	if e.useRight {
		return e.right.Debug()
	}
	return e.left.Debug()
}

// Future combinators deliberately deferred (the AST's shape admits them as
// new variants without disturbing existing code): Ge, Le, Nand, Nor, Xnor,
// All, Any, One, type-specific predicates such as StartsWith, and
// cross-field comparisons (f == g).
