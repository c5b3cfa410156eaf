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

// Package broker aggregates multiple Source[T] connectors behind a single
// Source[T]-shaped surface, so callers can query several heterogeneous
// resources as if they were one.
package broker

import (
	"context"
	"errors"
	"sync"

	"github.com/botobag/broker/brokerr"
	"github.com/botobag/broker/internal/asyncjoin"
	"github.com/botobag/broker/query"
	"github.com/botobag/broker/source"
)

// Broker fans a Query out to every added Source and aggregates the results.
// It is itself a source.Source[T], so a Broker can be nested inside another
// Broker.
//
// The zero value is not usable; construct with New.
type Broker[T any] struct {
	mu      sync.RWMutex
	sources []source.Source[T]

	// Logf, if set, receives a line for every fan-out operation. nil by
	// default (silent), matching the optional-hook logging convention used
	// throughout this module rather than pulling in a logging library.
	Logf func(format string, args ...any)
}

// New creates an empty Broker. Sources are added with AddSource.
func New[T any]() *Broker[T] {
	return &Broker[T]{}
}

// AddSource registers src as one of the Broker's sources.
func (b *Broker[T]) AddSource(src source.Source[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sources = append(b.sources, src)
}

func (b *Broker[T]) snapshot() []source.Source[T] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]source.Source[T]{}, b.sources...)
}

func (b *Broker[T]) logf(format string, args ...any) {
	if b.Logf != nil {
		b.Logf(format, args...)
	}
}

// Fetch implements source.Source[T]. It is strict: if any source fails, the
// whole fetch fails.
func (b *Broker[T]) Fetch(ctx context.Context, q query.Query[T]) (source.Stream[T], error) {
	all, err := b.FetchAll(ctx, q)
	if err != nil {
		return nil, err
	}
	return source.NewSliceStream(all), nil
}

// FetchAll implements source.Source[T]. It queries every source
// concurrently and concatenates their results in source-addition order; if
// any source returns an error, FetchAll fails as a whole (strict policy).
func (b *Broker[T]) FetchAll(ctx context.Context, q query.Query[T]) ([]T, error) {
	sources := b.snapshot()
	if len(sources) == 0 {
		return nil, nil
	}

	fns := make([]func(context.Context) ([]T, error), len(sources))
	for i, src := range sources {
		src := src
		fns[i] = func(ctx context.Context) ([]T, error) {
			return src.FetchAll(ctx, q)
		}
	}

	b.logf("broker: fetching from %d sources", len(sources))
	results, err := asyncjoin.Join(ctx, fns...)
	if err != nil {
		return nil, brokerr.Fetch(err)
	}

	var all []T
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}

// FetchOne implements source.Source[T]. Unlike FetchAll, FetchOne is
// lenient: it races every source and returns the first match found,
// reporting an error only if every source fails or none has a match.
func (b *Broker[T]) FetchOne(ctx context.Context, q query.Query[T]) (T, error) {
	sources := b.snapshot()
	if len(sources) == 0 {
		var zero T
		return zero, brokerr.FetchOne(brokerr.ErrNoSuchEntry)
	}

	fns := make([]func(context.Context) (T, error), len(sources))
	for i, src := range sources {
		src := src
		fns[i] = func(ctx context.Context) (T, error) {
			return src.FetchOne(ctx, q)
		}
	}

	value, err := asyncjoin.Race(ctx, fns...)
	if err != nil {
		if real := genuineErrors(err); real != nil {
			return value, brokerr.FetchOne(real)
		}
		return value, brokerr.FetchOne(brokerr.ErrNoSuchEntry)
	}
	return value, nil
}

// FetchOptional implements source.Source[T]. Like FetchOne it is lenient: a
// source reporting "no match" does not fail the overall call, only a source
// reporting a genuine error does, and only if every source fails.
func (b *Broker[T]) FetchOptional(ctx context.Context, q query.Query[T]) (T, bool, error) {
	sources := b.snapshot()
	if len(sources) == 0 {
		var zero T
		return zero, false, nil
	}

	fns := make([]func(context.Context) (T, error), len(sources))
	for i, src := range sources {
		src := src
		fns[i] = func(ctx context.Context) (T, error) {
			value, ok, err := src.FetchOptional(ctx, q)
			if err != nil {
				return value, err
			}
			if !ok {
				return value, brokerr.ErrNoSuchEntry
			}
			return value, nil
		}
	}

	value, err := asyncjoin.Race(ctx, fns...)
	if err != nil {
		var zero T
		if real := genuineErrors(err); real != nil {
			return zero, false, real
		}
		return zero, false, nil
	}
	return value, true, nil
}

// leafErrors flattens err, which Race produces via errors.Join when every
// source fails, into its individual per-source causes. errors.Is considers a
// joined error a match if any one leaf matches, which is the wrong question
// here: classifying a Race failure needs to know whether every leaf agrees,
// not whether at least one does.
func leafErrors(err error) []error {
	if err == nil {
		return nil
	}
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		var leaves []error
		for _, e := range u.Unwrap() {
			leaves = append(leaves, leafErrors(e)...)
		}
		return leaves
	}
	return []error{err}
}

// genuineErrors returns the leaves of err that are not no-such-entry
// failures, joined back together, or nil if every source failed with
// no-such-entry (the only case that should be reported as "no result").
func genuineErrors(err error) error {
	var real []error
	for _, e := range leafErrors(err) {
		if !brokerr.IsNoSuchEntry(e) {
			real = append(real, e)
		}
	}
	return errors.Join(real...)
}

// Sample fetches up to perSource records from each source matching q,
// instead of every match. It is useful for previewing what a broad query
// would return across many sources without paying for the full result set
// of each.
func (b *Broker[T]) Sample(ctx context.Context, q query.Query[T], perSource int) ([]T, error) {
	sources := b.snapshot()
	if len(sources) == 0 {
		return nil, nil
	}

	fns := make([]func(context.Context) ([]T, error), len(sources))
	for i, src := range sources {
		src := src
		fns[i] = func(ctx context.Context) ([]T, error) {
			all, err := src.FetchAll(ctx, q)
			if err != nil {
				return nil, err
			}
			if len(all) > perSource {
				all = all[:perSource]
			}
			return all, nil
		}
	}

	results, err := asyncjoin.Join(ctx, fns...)
	if err != nil {
		return nil, brokerr.Fetch(err)
	}

	var sample []T
	for _, r := range results {
		sample = append(sample, r...)
	}
	return sample, nil
}

// SizeHint implements source.Source[T]. The lower bound is the sum of every
// source's lower bound (the Broker never deduplicates, so overlapping
// sources can make this an overestimate — left as an open question, see
// DESIGN.md). The upper bound is the saturating sum of every source's upper
// bound; it is reported as unknown as soon as any source's is.
func (b *Broker[T]) SizeHint(q query.Query[T]) (lower int, upper int, upperKnown bool) {
	sources := b.snapshot()
	upperKnown = true
	for _, src := range sources {
		l, u, uk := src.SizeHint(q)
		lower += l
		if !uk {
			upperKnown = false
			continue
		}
		if upperKnown {
			upper = saturatingAdd(upper, u)
		}
	}
	return lower, upper, upperKnown
}

func saturatingAdd(a, b int) int {
	sum := a + b
	if sum < a || sum < b {
		return int(^uint(0) >> 1)
	}
	return sum
}
