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

package rest

import (
	"context"
	"fmt"
	"io"

	"github.com/botobag/broker/brokerr"
	"github.com/botobag/broker/codec"
	"github.com/botobag/broker/query"
	qhttp "github.com/botobag/broker/query/translate/http"
	"github.com/botobag/broker/source"
)

// config is the mutable state threaded through every Builder stage.
type config[T any] struct {
	sourceURL    string
	sourceMethod string
	sinkURL      string
	sinkMethod   string
	client       Transport
	codec        codec.Codec[T]
	encoder      codec.Encoder[T]
	decoder      codec.Decoder[T]
}

// combinedCodec adapts a separately-configured Encoder and Decoder into a
// single codec.Codec[T] by embedding both; their method sets don't overlap,
// so the embedding promotes every method of each without conflict.
type combinedCodec[T any] struct {
	codec.Encoder[T]
	codec.Decoder[T]
}

// effectiveCodec resolves the codec to use: an explicit Codec if one was
// set, otherwise the combination of a separately-set Encoder and Decoder.
func (cfg config[T]) effectiveCodec() codec.Codec[T] {
	if cfg.codec != nil {
		return cfg.codec
	}
	return combinedCodec[T]{Encoder: cfg.encoder, Decoder: cfg.decoder}
}

// Connector is the REST Source[T]/Sink[T] implementation produced by
// Builder.Build. Whether it is used as a Source, a Sink, or both is decided
// entirely by which interface the caller assigns it to — Connector always
// implements both, but the Builder only ever hands one out once the
// configuration needed for that use is actually present (see builder.go).
type Connector[T any] struct {
	cfg        config[T]
	translator qhttp.Translator[T]
}

func newConnector[T any](cfg config[T]) *Connector[T] {
	return &Connector[T]{cfg: cfg}
}

// Fetch implements source.Source[T].
func (c *Connector[T]) Fetch(ctx context.Context, q query.Query[T]) (source.Stream[T], error) {
	all, err := c.FetchAll(ctx, q)
	if err != nil {
		return nil, err
	}
	return source.NewSliceStream(all), nil
}

// FetchAll implements source.Source[T]. It translates q to a single HTTP
// query, issues one GET-shaped request, decodes the response body, and
// applies whatever residue the translation left behind as a local filter.
func (c *Connector[T]) FetchAll(ctx context.Context, q query.Query[T]) ([]T, error) {
	single := c.translator.Single(q)

	resp, err := c.cfg.client.Do(ctx, Request{
		Method: c.cfg.sourceMethod,
		URL:    c.cfg.sourceURL,
		Query:  single.Native,
	})
	if err != nil {
		return nil, brokerr.Fetch(brokerr.IOError(err))
	}
	defer resp.Body.Close()

	if resp.Status < 200 || resp.Status >= 300 {
		return nil, brokerr.Fetch(brokerr.HTTPError(resp.Status, errStatus(resp.Status)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, brokerr.Fetch(brokerr.IOError(err))
	}

	records, err := c.cfg.effectiveCodec().DecodeAll(body)
	if err != nil {
		return nil, brokerr.Fetch(&brokerr.DecodeError{Err: err})
	}

	if single.Total() {
		return records, nil
	}

	filtered := records[:0]
	for _, r := range records {
		if single.Evaluate(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// FetchOne implements source.Source[T].
func (c *Connector[T]) FetchOne(ctx context.Context, q query.Query[T]) (T, error) {
	return source.FetchOneFromFetchAll[T](ctx, c, q)
}

// FetchOptional implements source.Source[T].
func (c *Connector[T]) FetchOptional(ctx context.Context, q query.Query[T]) (T, bool, error) {
	return source.FetchOptionalFromFetchAll[T](ctx, c, q)
}

// SizeHint implements source.Source[T]. The REST connector has no way to
// know the resource's size without fetching it, so every bound is unknown.
func (c *Connector[T]) SizeHint(query.Query[T]) (lower int, upper int, upperKnown bool) {
	return 0, 0, false
}

// SendOne implements source.Sink[T].
func (c *Connector[T]) SendOne(ctx context.Context, entry T) error {
	body, err := c.cfg.effectiveCodec().EncodeOne(entry)
	if err != nil {
		return brokerr.Send(&brokerr.EncodeError{Err: err})
	}
	return c.send(ctx, body)
}

// SendAll implements source.Sink[T]. All of entries is sent as the body of
// a single request.
func (c *Connector[T]) SendAll(ctx context.Context, entries []T) error {
	body, err := c.cfg.effectiveCodec().EncodeAll(entries)
	if err != nil {
		return brokerr.Send(&brokerr.EncodeError{Err: err})
	}
	return c.send(ctx, body)
}

func (c *Connector[T]) send(ctx context.Context, body []byte) error {
	resp, err := c.cfg.client.Do(ctx, Request{
		Method: c.cfg.sinkMethod,
		URL:    c.cfg.sinkURL,
		Body:   body,
	})
	if err != nil {
		return brokerr.Send(brokerr.IOError(err))
	}
	defer resp.Body.Close()

	switch {
	case resp.Status >= 200 && resp.Status < 300:
		return nil
	case resp.Status == 422 || resp.Status == 409:
		return brokerr.Send(brokerr.ErrRejected)
	default:
		return brokerr.Send(brokerr.HTTPError(resp.Status, errStatus(resp.Status)))
	}
}

func errStatus(status int) error {
	return &httpStatusError{status}
}

type httpStatusError struct{ status int }

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.status)
}
