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

// Package rest is the REST connector: a Source[T]/Sink[T] implementation
// backed by an HTTP resource, built through a typestate Builder that makes
// "not enough configuration to build a connector" a compile error instead
// of a runtime one.
package rest

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	qhttp "github.com/botobag/broker/query/translate/http"
)

// Request is a transport-agnostic description of one HTTP request.
type Request struct {
	Method string
	URL    string
	Query  qhttp.HTTPQuery
	Body   []byte
}

// Response is a transport-agnostic HTTP response: a status code and a body
// stream the caller must close.
type Response struct {
	Status int
	Body   io.ReadCloser
}

// Transport issues Requests and returns Responses. It is the one
// collaborator this package assumes but does not implement beyond the
// default: TLS, connection pooling, retries and timeouts are all
// Transport's concern, not this package's.
type Transport interface {
	Do(ctx context.Context, req Request) (Response, error)
}

// HTTPTransport is the default Transport, backed by net/http.Client.
type HTTPTransport struct {
	Client *http.Client

	// Logf, if set, receives one line per request. nil by default (silent).
	Logf func(format string, args ...any)
}

// NewHTTPTransport returns an HTTPTransport using client, or
// http.DefaultClient if client is nil.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{Client: client}
}

// Do implements Transport.
func (t *HTTPTransport) Do(ctx context.Context, req Request) (Response, error) {
	url := req.URL
	if len(req.Query) > 0 {
		url += "?" + encodeQuery(req.Query)
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return Response{}, err
	}

	if t.Logf != nil {
		t.Logf("rest: %s %s", req.Method, url)
	}

	resp, err := t.Client.Do(httpReq)
	if err != nil {
		return Response{}, err
	}
	return Response{Status: resp.StatusCode, Body: resp.Body}, nil
}

// encodeQuery renders an HTTPQuery as a URL query string, preserving
// duplicate keys and key order exactly as query/translate/http produced
// them (neither is collapsed, per the translator's own contract).
func encodeQuery(q qhttp.HTTPQuery) string {
	var buf bytes.Buffer
	for i, kv := range q {
		if i > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(url.QueryEscape(kv.Key))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(kv.Value))
	}
	return buf.String()
}
