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

import "gorm.io/gorm/clause"

// SQLLeafTranslator is implemented by leaf predicate node types that can
// contribute a native gorm clause.Expression. Unlike HTTP query parameters,
// SQL can express equality, inequality and ordering comparisons all
// natively, so every leaf type in this package implements it
// unconditionally — there is no "untranslatable leaf" case the way there is
// for HTTP's Ne/Gt/Lt.
//
// As with HTTPLeafTranslator, this lives here rather than in
// query/translate/sql because Go's type switches can't hold a case for
// "Eq[T, U] for any U" when U is unbound in the translator's own type
// parameter list; exposing the contribution through a method defined
// alongside the leaf type sidesteps that.
type SQLLeafTranslator[T any] interface {
	Query[T]
	SQLExpr() clause.Expression
}

// SQLExpr implements SQLLeafTranslator[T].
func (e Eq[T, U]) SQLExpr() clause.Expression {
	return clause.Eq{Column: clause.Column{Name: e.FieldHandle.Name()}, Value: e.Value}
}

// SQLExpr implements SQLLeafTranslator[T].
func (n Ne[T, U]) SQLExpr() clause.Expression {
	return clause.Neq{Column: clause.Column{Name: n.FieldHandle.Name()}, Value: n.Value}
}

// SQLExpr implements SQLLeafTranslator[T].
func (g Gt[T, U]) SQLExpr() clause.Expression {
	return clause.Gt{Column: clause.Column{Name: g.FieldHandle.Name()}, Value: g.Value}
}

// SQLExpr implements SQLLeafTranslator[T].
func (l Lt[T, U]) SQLExpr() clause.Expression {
	return clause.Lt{Column: clause.Column{Name: l.FieldHandle.Name()}, Value: l.Value}
}
