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

package http_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/botobag/broker/field"
	"github.com/botobag/broker/query"
	"github.com/botobag/broker/query/translate/http"
)

func title() field.Field[Book, string]  { return field.New("title", func(b Book) string { return b.Title }) }
func author() field.Field[Book, string] { return field.New("author", func(b Book) string { return b.Author }) }
func year() field.Field[Book, int]      { return field.New("year", func(b Book) int { return b.Year }) }

var _ = Describe("Translator.Single", func() {
	var tr http.Translator[Book]

	It("translates True with no parameters and no residue", func() {
		s := tr.Single(query.True[Book]{})
		Expect(s.Native).To(BeEmpty())
		Expect(s.Total()).To(BeTrue())
	})

	It("translates Eq as a single parameter", func() {
		s := tr.Single(query.NewEq(title(), "Dune"))
		Expect(s.Native).To(Equal(http.HTTPQuery{{Key: "title", Value: "Dune"}}))
		Expect(s.Total()).To(BeTrue())
	})

	It("pushes Ne, Gt, Lt entirely into residue", func() {
		for _, q := range []query.Query[Book]{
			query.NewNe(title(), "Dune"),
			query.NewGt(year(), 1999),
			query.NewLt(year(), 1999),
		} {
			s := tr.Single(q)
			Expect(s.Native).To(BeEmpty())
			Expect(s.Total()).To(BeFalse())
			Expect(s.Residue).To(HaveLen(1))
			Expect(s.Residue[0].Debug()).To(Equal(q.Debug()))
		}
	})

	It("concatenates both sides of And", func() {
		q := query.And[Book]{Left: query.NewEq(title(), "Dune"), Right: query.NewEq(author(), "Herbert")}
		s := tr.Single(q)
		Expect(s.Native).To(Equal(http.HTTPQuery{{Key: "title", Value: "Dune"}, {Key: "author", Value: "Herbert"}}))
		Expect(s.Total()).To(BeTrue())
	})

	It("carries residue through And", func() {
		q := query.And[Book]{Left: query.NewEq(title(), "Dune"), Right: query.NewGt(year(), 1999)}
		s := tr.Single(q)
		Expect(s.Native).To(Equal(http.HTTPQuery{{Key: "title", Value: "Dune"}}))
		Expect(s.Total()).To(BeFalse())
	})

	It("keeps only the parameters common to both sides of Or", func() {
		q := query.Or[Book]{
			Left:  query.And[Book]{Left: query.NewEq(title(), "Dune"), Right: query.NewEq(author(), "Herbert")},
			Right: query.NewEq(title(), "Dune"),
		}
		s := tr.Single(q)
		Expect(s.Native).To(Equal(http.HTTPQuery{{Key: "title", Value: "Dune"}}))
		Expect(s.Total()).To(BeTrue())
	})

	It("marks Xor as always carrying residue in addition to the Or intersection", func() {
		q := query.Xor[Book]{Left: query.NewEq(title(), "Dune"), Right: query.NewEq(title(), "Dune")}
		s := tr.Single(q)
		Expect(s.Total()).To(BeFalse())
		Expect(s.Residue).To(HaveLen(1))
		Expect(s.Residue[0].Debug()).To(Equal(q.Debug()))
	})

	It("marks Not as pure residue", func() {
		q := query.Not[Book]{Query: query.NewEq(title(), "Dune")}
		s := tr.Single(q)
		Expect(s.Native).To(BeEmpty())
		Expect(s.Residue).To(HaveLen(1))
		Expect(s.Residue[0].Debug()).To(Equal(q.Debug()))
	})

	It("unwraps Either before translating", func() {
		q := query.Left[Book](query.NewEq(title(), "Dune"))
		s := tr.Single(q)
		Expect(s.Native).To(Equal(http.HTTPQuery{{Key: "title", Value: "Dune"}}))
	})

	It("produces a residue whose Evaluate agrees with local evaluation", func() {
		q := query.And[Book]{Left: query.NewEq(author(), "Herbert"), Right: query.NewGt(year(), 1960)}
		s := tr.Single(q)

		matches := Book{Title: "Dune", Author: "Herbert", Year: 1965}
		nonmatch := Book{Title: "Dune", Author: "Herbert", Year: 1950}

		Expect(s.Evaluate(matches)).To(Equal(q.Evaluate(matches)))
		Expect(s.Evaluate(nonmatch)).To(Equal(q.Evaluate(nonmatch)))
	})
})

var _ = Describe("Translator.Multi", func() {
	var tr http.Translator[Book]

	It("translates True as a single empty query", func() {
		qs, ok := tr.Multi(query.True[Book]{})
		Expect(ok).To(BeTrue())
		Expect(qs).To(Equal([]http.HTTPQuery{{}}))
	})

	It("translates And as a cartesian product", func() {
		q := query.And[Book]{Left: query.NewEq(title(), "Dune"), Right: query.NewEq(author(), "Herbert")}
		qs, ok := tr.Multi(q)
		Expect(ok).To(BeTrue())
		Expect(qs).To(Equal([]http.HTTPQuery{{{Key: "title", Value: "Dune"}, {Key: "author", Value: "Herbert"}}}))
	})

	It("translates Or as a concatenation", func() {
		q := query.Or[Book]{Left: query.NewEq(title(), "Dune"), Right: query.NewEq(title(), "Hyperion")}
		qs, ok := tr.Multi(q)
		Expect(ok).To(BeTrue())
		Expect(qs).To(ConsistOf(
			http.HTTPQuery{{Key: "title", Value: "Dune"}},
			http.HTTPQuery{{Key: "title", Value: "Hyperion"}},
		))
	})

	It("reports failure for Ne, Gt, Lt, Not and Xor", func() {
		for _, q := range []query.Query[Book]{
			query.NewNe(title(), "Dune"),
			query.NewGt(year(), 1999),
			query.NewLt(year(), 1999),
			query.Not[Book]{Query: query.NewEq(title(), "Dune")},
			query.Xor[Book]{Left: query.NewEq(title(), "Dune"), Right: query.NewEq(title(), "Dune")},
		} {
			_, ok := tr.Multi(q)
			Expect(ok).To(BeFalse())
		}
	})
})
