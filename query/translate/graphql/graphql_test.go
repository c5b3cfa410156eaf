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

package graphql_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/botobag/broker/field"
	"github.com/botobag/broker/query"
	"github.com/botobag/broker/query/translate/graphql"
)

func title() field.Field[Book, string] { return field.New("title", func(b Book) string { return b.Title }) }
func year() field.Field[Book, int]     { return field.New("year", func(b Book) int { return b.Year }) }

func isbn() field.Field[Book, string] {
	value := field.New("value", func(s string) string { return s })
	return field.Then(field.New("isbn", func(b Book) string { return b.Title }), value)
}

func argNames(s graphql.Single[Book]) []string {
	names := make([]string, len(s.Native))
	for i, a := range s.Native {
		names[i] = a.Name
	}
	return names
}

var _ = Describe("Translator.Single", func() {
	var tr graphql.Translator[Book]

	It("translates True with no arguments and no residue", func() {
		s := tr.Single(query.True[Book]{})
		Expect(s.Native).To(BeEmpty())
		Expect(s.Total()).To(BeTrue())
	})

	It("translates Eq as a single argument", func() {
		s := tr.Single(query.NewEq(title(), "Dune"))
		Expect(s.Native).To(HaveLen(1))
		Expect(s.Native[0].Name).To(Equal("title"))
		Expect(s.Native[0].Value.Raw).To(Equal("Dune"))
		Expect(s.Total()).To(BeTrue())
	})

	It("pushes Ne, Gt, Lt, Not entirely into residue", func() {
		for _, q := range []query.Query[Book]{
			query.NewNe(title(), "Dune"),
			query.NewGt(year(), 1999),
			query.NewLt(year(), 1999),
			query.Not[Book]{Query: query.NewEq(title(), "Dune")},
		} {
			s := tr.Single(q)
			Expect(s.Native).To(BeEmpty())
			Expect(s.Total()).To(BeFalse())
		}
	})

	It("treats a dotted-path field as always residue even though it would be a single equality", func() {
		s := tr.Single(query.NewEq(isbn(), "0-441-17271-7"))
		Expect(s.Native).To(BeEmpty())
		Expect(s.Total()).To(BeFalse())
	})

	It("concatenates both sides of And", func() {
		q := query.And[Book]{Left: query.NewEq(title(), "Dune"), Right: query.NewGt(year(), 1960)}
		s := tr.Single(q)
		Expect(argNames(s)).To(Equal([]string{"title"}))
		Expect(s.Total()).To(BeFalse())
	})

	It("keeps only the arguments common to both sides of Or", func() {
		q := query.Or[Book]{
			Left:  query.And[Book]{Left: query.NewEq(title(), "Dune"), Right: query.NewEq(year(), 1965)},
			Right: query.NewEq(title(), "Dune"),
		}
		s := tr.Single(q)
		Expect(argNames(s)).To(Equal([]string{"title"}))
		Expect(s.Total()).To(BeTrue())
	})

	It("marks Xor as always carrying residue in addition to the intersection", func() {
		q := query.Xor[Book]{Left: query.NewEq(title(), "Dune"), Right: query.NewEq(title(), "Dune")}
		s := tr.Single(q)
		Expect(s.Total()).To(BeFalse())
		Expect(s.Residue).To(HaveLen(1))
		Expect(s.Residue[0].Debug()).To(Equal(q.Debug()))
	})

	It("unwraps Either before translating", func() {
		q := query.Left[Book](query.NewEq(title(), "Dune"))
		s := tr.Single(q)
		Expect(argNames(s)).To(Equal([]string{"title"}))
	})
})
