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

package broker_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/botobag/broker/broker"
	"github.com/botobag/broker/brokerr"
	"github.com/botobag/broker/memsource"
	"github.com/botobag/broker/query"
	"github.com/botobag/broker/source"
)

var _ = Describe("Broker.FetchAll", func() {
	It("concatenates results from every source in addition order", func() {
		b := broker.New[Book]()
		b.AddSource(memsource.New(Book{Title: "Dune", Year: 1965}))
		b.AddSource(memsource.New(Book{Title: "Hyperion", Year: 1989}))

		all, err := b.FetchAll(context.Background(), query.True[Book]{})
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(Equal([]Book{{Title: "Dune", Year: 1965}, {Title: "Hyperion", Year: 1989}}))
	})

	It("returns no results and no error for a Broker with no sources", func() {
		b := broker.New[Book]()
		all, err := b.FetchAll(context.Background(), query.True[Book]{})
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(BeEmpty())
	})

	It("is strict: a single failing source fails the whole fetch", func() {
		b := broker.New[Book]()
		b.AddSource(memsource.New(Book{Title: "Dune"}))
		b.AddSource(&erroringSource{err: errors.New("source down")})

		_, err := b.FetchAll(context.Background(), query.True[Book]{})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Broker.FetchOne", func() {
	It("returns a match even when another source errors", func() {
		b := broker.New[Book]()
		b.AddSource(memsource.New(Book{Title: "Dune"}))
		b.AddSource(&erroringSource{err: errors.New("source down")})

		v, err := b.FetchOne(context.Background(), query.True[Book]{})
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(Book{Title: "Dune"}))
	})

	It("reports ErrNoSuchEntry for an empty Broker", func() {
		b := broker.New[Book]()
		_, err := b.FetchOne(context.Background(), query.True[Book]{})
		Expect(brokerr.IsNoSuchEntry(err)).To(BeTrue())
	})

	It("fails only when every source fails", func() {
		b := broker.New[Book]()
		b.AddSource(&erroringSource{err: errors.New("one")})
		b.AddSource(&erroringSource{err: errors.New("two")})

		_, err := b.FetchOne(context.Background(), query.True[Book]{})
		Expect(err).To(HaveOccurred())
	})

	It("surfaces a genuine failure rather than reporting no-such-entry when one source errors and the rest merely have no match", func() {
		b := broker.New[Book]()
		b.AddSource(memsource.New[Book]())
		connErr := errors.New("connection reset")
		b.AddSource(&erroringSource{err: connErr})

		_, err := b.FetchOne(context.Background(), query.True[Book]{})
		Expect(err).To(HaveOccurred())
		Expect(brokerr.IsNoSuchEntry(err)).To(BeFalse())
		Expect(errors.Is(err, connErr)).To(BeTrue())
	})
})

var _ = Describe("Broker.FetchOptional", func() {
	It("returns ok == false with no error when no source has a match", func() {
		b := broker.New[Book]()
		b.AddSource(memsource.New[Book]())
		b.AddSource(memsource.New[Book]())

		_, ok, err := b.FetchOptional(context.Background(), query.True[Book]{})
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("returns the match when one source has it, even if another errors", func() {
		b := broker.New[Book]()
		b.AddSource(memsource.New[Book]())
		b.AddSource(&erroringSource{err: errors.New("down")})
		b.AddSource(memsource.New(Book{Title: "Dune"}))

		v, ok, err := b.FetchOptional(context.Background(), query.True[Book]{})
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(Book{Title: "Dune"}))
	})

	It("surfaces a genuine failure rather than ok == false, no error when one source errors and the rest merely have no match", func() {
		b := broker.New[Book]()
		b.AddSource(memsource.New[Book]())
		connErr := errors.New("connection reset")
		b.AddSource(&erroringSource{err: connErr})

		_, ok, err := b.FetchOptional(context.Background(), query.True[Book]{})
		Expect(ok).To(BeFalse())
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, connErr)).To(BeTrue())
	})
})

var _ = Describe("Broker.Sample", func() {
	It("truncates each source's contribution to perSource", func() {
		b := broker.New[Book]()
		b.AddSource(memsource.New(
			Book{Title: "A"}, Book{Title: "B"}, Book{Title: "C"},
		))
		b.AddSource(memsource.New(
			Book{Title: "D"}, Book{Title: "E"},
		))

		sample, err := b.Sample(context.Background(), query.True[Book]{}, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(sample).To(HaveLen(2))
	})
})

var _ = Describe("Broker.SizeHint", func() {
	It("sums lower bounds and saturating-sums upper bounds across sources", func() {
		b := broker.New[Book]()
		b.AddSource(memsource.New(Book{Title: "A"}, Book{Title: "B"}))
		b.AddSource(memsource.New(Book{Title: "C"}))

		lower, upper, known := b.SizeHint(query.True[Book]{})
		Expect(lower).To(Equal(3))
		Expect(upper).To(Equal(3))
		Expect(known).To(BeTrue())
	})

	It("becomes unknown as soon as any source's upper bound is unknown", func() {
		b := broker.New[Book]()
		b.AddSource(memsource.New(Book{Title: "A"}))
		b.AddSource(&erroringSource{sizeUnknown: true})

		_, _, known := b.SizeHint(query.True[Book]{})
		Expect(known).To(BeFalse())
	})
})

// erroringSource is a source.Source[Book] that always fails, used to exercise
// the Broker's strict (FetchAll) and lenient (FetchOne/FetchOptional)
// failure policies.
type erroringSource struct {
	err         error
	sizeUnknown bool
}

func (s *erroringSource) Fetch(context.Context, query.Query[Book]) (source.Stream[Book], error) {
	return nil, s.err
}

func (s *erroringSource) FetchAll(context.Context, query.Query[Book]) ([]Book, error) {
	return nil, s.err
}

func (s *erroringSource) FetchOne(context.Context, query.Query[Book]) (Book, error) {
	return Book{}, s.err
}

func (s *erroringSource) FetchOptional(context.Context, query.Query[Book]) (Book, bool, error) {
	return Book{}, false, s.err
}

func (s *erroringSource) SizeHint(query.Query[Book]) (int, int, bool) {
	return 0, 0, !s.sizeUnknown
}
