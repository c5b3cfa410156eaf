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

// Package source defines the Source and Sink contracts: pulling records
// matching a Query from, and pushing records to, an external data resource.
//
// Every network-facing method takes a context.Context as its first
// argument, matching the design's suspension-point model (see SPEC_FULL.md
// §5): Go has no first-class async/await, so cancellation is expressed the
// idiomatic way, through context cancellation, rather than a bespoke future
// type. The Sources in this module implement Fetch by materializing FetchAll
// and wrapping the result with NewSliceStream, so a Stream from them holds
// the whole result in memory and applies no backpressure to the fetch.
package source

import (
	"context"

	"github.com/botobag/broker/brokerr"
	"github.com/botobag/broker/query"
)

// Stream is a lazy, cancellable, ordered sequence of fetched records. Next
// blocks until a record is available, the stream is exhausted, or ctx is
// cancelled; after it returns ok == false the stream must not be used
// again. Dropping a Stream without draining it (simply ceasing to call
// Next) is a valid way to cancel the underlying fetch: implementations must
// release their transport resources as soon as the producing goroutine
// notices nobody is still calling Next, which happens automatically via
// ctx cancellation or a closed done channel, depending on the
// implementation.
type Stream[T any] interface {
	// Next returns the next record. ok is false once the stream is
	// exhausted; err is non-nil if the stream ended due to failure instead
	// of exhaustion.
	Next(ctx context.Context) (value T, err error, ok bool)
}

// Source fetches records matching a Query from some resource.
//
// Implementations must override at least one of Fetch or FetchAll; the
// rest derive from whichever is overridden. FetchOne makes no ordering
// guarantee beyond "some matching record".
type Source[T any] interface {
	// Fetch returns a lazy stream of records matching query.
	Fetch(ctx context.Context, q query.Query[T]) (Stream[T], error)

	// FetchAll materializes every record matching query.
	FetchAll(ctx context.Context, q query.Query[T]) ([]T, error)

	// FetchOne returns one record matching query, or
	// brokerr.ErrNoSuchEntry wrapped in a *brokerr.FetchOneError if none
	// exists.
	FetchOne(ctx context.Context, q query.Query[T]) (T, error)

	// FetchOptional returns one record matching query, or the zero value
	// and ok == false if none exists. Unlike FetchOne, the absence of a
	// match is not an error.
	FetchOptional(ctx context.Context, q query.Query[T]) (value T, ok bool, err error)

	// SizeHint approximates the bounds on the number of records query would
	// return: (lower, upper, upperKnown). It is purely advisory —
	// implementations may lie, and callers must not rely on it for
	// correctness, only for optimizations like reserving buffer capacity.
	SizeHint(q query.Query[T]) (lower int, upper int, upperKnown bool)
}

// Sink accepts records for some resource.
//
// This package has no helper that derives SendOne from SendAll or the other
// way round, so implementations provide both.
type Sink[T any] interface {
	// SendOne sends a single record.
	SendOne(ctx context.Context, entry T) error

	// SendAll sends every record in entries as a single logical operation
	// (for connectors that support it, e.g. the REST connector, this is one
	// request whose body is the entire encoded batch — atomic on the wire).
	SendAll(ctx context.Context, entries []T) error
}

// sliceStream adapts a pre-materialized slice into a Stream, for Sources that
// implement Fetch on top of FetchAll.
type sliceStream[T any] struct {
	values []T
	i      int
}

// NewSliceStream returns a Stream that yields every element of values in
// order, then ends. It never itself returns an error; it exists so Source
// implementations overriding only FetchAll can provide Fetch "for free",
// matching the default wiring this design specifies ("fetch_all ... and
// creates a stream from the vector").
func NewSliceStream[T any](values []T) Stream[T] {
	return &sliceStream[T]{values: values}
}

// Next implements Stream[T].
func (s *sliceStream[T]) Next(ctx context.Context) (T, error, bool) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err, false
	}
	if s.i >= len(s.values) {
		return zero, nil, false
	}
	v := s.values[s.i]
	s.i++
	return v, nil, true
}

// FetchAllFromFetch drains stream into a slice. It is the default
// implementation FetchAll falls back to when a Source overrides Fetch but
// not FetchAll.
func FetchAllFromFetch[T any](ctx context.Context, stream Stream[T]) ([]T, error) {
	var out []T
	for {
		v, err, ok := stream.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

// FetchOneFromFetchAll implements the default FetchOne in terms of
// FetchAll.
func FetchOneFromFetchAll[T any](ctx context.Context, src Source[T], q query.Query[T]) (T, error) {
	var zero T
	all, err := src.FetchAll(ctx, q)
	if err != nil {
		return zero, brokerr.FetchOne(err)
	}
	if len(all) == 0 {
		return zero, brokerr.FetchOne(brokerr.ErrNoSuchEntry)
	}
	return all[0], nil
}

// FetchOptionalFromFetchAll implements the default FetchOptional in terms
// of FetchAll.
func FetchOptionalFromFetchAll[T any](ctx context.Context, src Source[T], q query.Query[T]) (T, bool, error) {
	var zero T
	all, err := src.FetchAll(ctx, q)
	if err != nil {
		return zero, false, err
	}
	if len(all) == 0 {
		return zero, false, nil
	}
	return all[0], true, nil
}
