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

// Package sql lowers a query.Query into a gorm clause expression, for use by
// SQL-backed connectors. It is named sql (not database/sql, which it does
// not use directly) to mirror how query/translate/http is named after the
// wire form it targets rather than a stdlib package.
package sql

import (
	"github.com/botobag/broker/query"
	"github.com/botobag/broker/query/translate"
	"gorm.io/gorm/clause"
)

// Single is the result of translating a Query into one WHERE-clause
// expression, plus whatever residue must be filtered locally.
type Single[T any] = translate.Single[clause.Expression, T]

// Translator lowers Query[T] values into gorm clause.Expression form.
type Translator[T any] struct{}

// Single translates q into a clause.Expression, possibly with residue.
//
// Per-node rules:
//   - True: no expression (equivalent to an unconditional WHERE), no
//     residue.
//   - Eq, Ne, Gt, Lt: translate natively via clause.Eq/Neq/Gt/Lt — SQL,
//     unlike an HTTP query string, can express all four directly.
//   - And(a, b): clause.And(na, nb); residues concatenate, since AND
//     distributes over residue regardless of what's inside it.
//   - Or(a, b): clause.Or(na, nb) when neither side carries residue; no
//     expression at all when either side is equivalent to True. Residue doesn't distribute over OR the way it does over AND — (na ∧
//     ra) ∨ (nb ∧ rb) is not equivalent to (na ∨ nb) ∧ (ra ∨ rb) in
//     general — so if either side has residue, the whole Or is kept whole
//     as residue instead.
//   - Not(a): clause.Not(na) when a carries no residue and has an
//     expression to negate; otherwise (a carries residue, or a is
//     equivalent to True) the whole Not is residue.
//   - Xor(a, b): never expressible as a single SQL boolean combinator
//     here, so it is always kept whole as residue.
func (Translator[T]) Single(q query.Query[T]) Single[T] {
	return toSQLSingle[T](q)
}

func toSQLSingle[T any](q query.Query[T]) Single[T] {
	switch n := q.(type) {
	case query.True[T]:
		return Single[T]{}

	case query.And[T]:
		left := toSQLSingle[T](n.Left)
		right := toSQLSingle[T](n.Right)
		return Single[T]{
			Native:  combine(left.Native, right.Native, clause.And),
			Residue: append(append([]query.Query[T]{}, left.Residue...), right.Residue...),
		}

	case query.Or[T]:
		left := toSQLSingle[T](n.Left)
		right := toSQLSingle[T](n.Right)
		if len(left.Residue) == 0 && len(right.Residue) == 0 {
			// A side with no expression is equivalent to True, which makes the
			// whole Or an unconditional match.
			if left.Native == nil || right.Native == nil {
				return Single[T]{}
			}
			return Single[T]{Native: combine(left.Native, right.Native, clause.Or)}
		}
		return Single[T]{Residue: []query.Query[T]{n}}

	case query.Xor[T]:
		return Single[T]{Residue: []query.Query[T]{n}}

	case query.Not[T]:
		inner := toSQLSingle[T](n.Query)
		// inner.Native == nil means the operand is equivalent to True (an
		// unconditional match, not the absence of a condition), so there is no
		// clause.Expression to negate natively; collapsing to Single{} here
		// would silently turn Not(True) into "match everything" instead of
		// "match nothing". Keep the whole Not as residue instead, same as when
		// the operand itself carries residue.
		if len(inner.Residue) != 0 || inner.Native == nil {
			return Single[T]{Residue: []query.Query[T]{n}}
		}
		return Single[T]{Native: clause.Not(inner.Native)}

	case query.Either[T]:
		return toSQLSingle[T](n.Unwrap())
	}

	if leaf, ok := q.(query.SQLLeafTranslator[T]); ok {
		return Single[T]{Native: leaf.SQLExpr()}
	}

	return Single[T]{Residue: []query.Query[T]{q}}
}

// combine joins two possibly-nil expressions with op, treating a nil
// expression (True's identity) as absent rather than passing it to op.
func combine(left, right clause.Expression, op func(...clause.Expression) clause.Expression) clause.Expression {
	switch {
	case left == nil && right == nil:
		return nil
	case left == nil:
		return right
	case right == nil:
		return left
	default:
		return op(left, right)
	}
}
