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

package rest_test

import (
	"context"
	"errors"
	"io"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/botobag/broker/brokerr"
	codecjson "github.com/botobag/broker/codec/json"
	"github.com/botobag/broker/field"
	"github.com/botobag/broker/query"
	"github.com/botobag/broker/rest"
)

func title() field.Field[Book, string] { return field.New("title", func(b Book) string { return b.Title }) }
func year() field.Field[Book, int]     { return field.New("year", func(b Book) int { return b.Year }) }

// fakeTransport records the last request it received and replies with a
// canned response, standing in for a real HTTP round trip in these specs.
type fakeTransport struct {
	status   int
	body     string
	err      error
	lastReq  rest.Request
	requests []rest.Request
}

func (t *fakeTransport) Do(ctx context.Context, req rest.Request) (rest.Response, error) {
	t.lastReq = req
	t.requests = append(t.requests, req)
	if t.err != nil {
		return rest.Response{}, t.err
	}
	return rest.Response{Status: t.status, Body: io.NopCloser(strings.NewReader(t.body))}, nil
}

var _ = Describe("Builder", func() {
	It("builds a read-only Connector usable as a Source", func() {
		transport := &fakeTransport{status: 200, body: `[{"title":"Dune","year":1965}]`}
		conn := rest.NewBuilder[Book]().
			Client(transport).
			Codec(codecjson.New[Book]()).
			SourceURL("https://example.test/books").
			SourceMethod("GET").
			Build()

		all, err := conn.FetchAll(context.Background(), query.True[Book]{})
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(Equal([]Book{{Title: "Dune", Year: 1965}}))
		Expect(transport.lastReq.Method).To(Equal("GET"))
		Expect(transport.lastReq.URL).To(Equal("https://example.test/books"))
	})

	It("builds a write-only Connector usable as a Sink", func() {
		transport := &fakeTransport{status: 201}
		conn := rest.NewBuilder[Book]().
			Client(transport).
			Codec(codecjson.New[Book]()).
			SinkURL("https://example.test/books").
			SinkMethod("POST").
			Build()

		err := conn.SendOne(context.Background(), Book{Title: "Dune", Year: 1965})
		Expect(err).NotTo(HaveOccurred())
		Expect(transport.lastReq.Method).To(Equal("POST"))
		Expect(string(transport.lastReq.Body)).To(ContainSubstring("Dune"))
	})

	It("builds a read-write Connector from the readable branch", func() {
		transport := &fakeTransport{status: 200, body: `[]`}
		conn := rest.NewBuilder[Book]().
			Client(transport).
			Codec(codecjson.New[Book]()).
			SourceURL("https://example.test/books").
			SourceMethod("GET").
			SinkURL("https://example.test/books").
			SinkMethod("POST").
			Build()

		_, err := conn.FetchAll(context.Background(), query.True[Book]{})
		Expect(err).NotTo(HaveOccurred())
	})

	It("builds a read-write Connector from the writable branch", func() {
		transport := &fakeTransport{status: 200}
		conn := rest.NewBuilder[Book]().
			Client(transport).
			Codec(codecjson.New[Book]()).
			SinkURL("https://example.test/books").
			SinkMethod("POST").
			SourceURL("https://example.test/books").
			SourceMethod("GET").
			Build()

		Expect(conn.SendOne(context.Background(), Book{Title: "Dune"})).To(Succeed())
	})

	It("composes a Codec from separately-set Encoder and Decoder", func() {
		transport := &fakeTransport{status: 200, body: `[{"title":"Dune","year":1965}]`}
		c := codecjson.New[Book]()
		conn := rest.NewBuilder[Book]().
			Client(transport).
			Encoder(c).
			Decoder(c).
			SourceURL("https://example.test/books").
			SourceMethod("GET").
			Build()

		all, err := conn.FetchAll(context.Background(), query.True[Book]{})
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(1))
	})
})

var _ = Describe("Connector", func() {
	It("translates an Eq query into a single GET parameter", func() {
		transport := &fakeTransport{status: 200, body: `[]`}
		conn := rest.NewBuilder[Book]().
			Client(transport).
			Codec(codecjson.New[Book]()).
			SourceURL("https://example.test/books").
			SourceMethod("GET").
			Build()

		_, err := conn.FetchAll(context.Background(), query.NewEq(title(), "Dune"))
		Expect(err).NotTo(HaveOccurred())
		Expect(transport.lastReq.Query).To(HaveLen(1))
		Expect(transport.lastReq.Query[0].Key).To(Equal("title"))
		Expect(transport.lastReq.Query[0].Value).To(Equal("Dune"))
	})

	It("applies residue locally when the query doesn't translate totally", func() {
		transport := &fakeTransport{status: 200, body: `[{"title":"Dune","year":1965},{"title":"Dune","year":1999}]`}
		conn := rest.NewBuilder[Book]().
			Client(transport).
			Codec(codecjson.New[Book]()).
			SourceURL("https://example.test/books").
			SourceMethod("GET").
			Build()

		q := query.And[Book]{Left: query.NewEq(title(), "Dune"), Right: query.NewGt(year(), 1970)}
		all, err := conn.FetchAll(context.Background(), q)
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(Equal([]Book{{Title: "Dune", Year: 1999}}))
	})

	It("fails FetchAll on a non-2xx response", func() {
		transport := &fakeTransport{status: 500, body: ""}
		conn := rest.NewBuilder[Book]().
			Client(transport).
			Codec(codecjson.New[Book]()).
			SourceURL("https://example.test/books").
			SourceMethod("GET").
			Build()

		_, err := conn.FetchAll(context.Background(), query.True[Book]{})
		Expect(err).To(HaveOccurred())
	})

	It("maps a 422 response to ErrRejected on send", func() {
		transport := &fakeTransport{status: 422}
		conn := rest.NewBuilder[Book]().
			Client(transport).
			Codec(codecjson.New[Book]()).
			SinkURL("https://example.test/books").
			SinkMethod("POST").
			Build()

		err := conn.SendOne(context.Background(), Book{Title: "Dune"})
		Expect(errors.Is(err, brokerr.ErrRejected)).To(BeTrue())
	})

	It("reports an unknown SizeHint", func() {
		transport := &fakeTransport{status: 200}
		conn := rest.NewBuilder[Book]().
			Client(transport).
			Codec(codecjson.New[Book]()).
			SourceURL("https://example.test/books").
			SourceMethod("GET").
			Build()

		lower, upper, known := conn.SizeHint(query.True[Book]{})
		Expect(lower).To(Equal(0))
		Expect(upper).To(Equal(0))
		Expect(known).To(BeFalse())
	})
})
