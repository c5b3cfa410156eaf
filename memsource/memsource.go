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

// Package memsource is an in-memory Source/Sink, backed by a mutex-guarded
// slice. It needs no translation layer at all: a Query's Evaluate method
// already runs in-process, so memsource applies it directly to every stored
// record instead of lowering it to some backend dialect first. It exists
// both as the simplest possible connector and as the connector the test
// suite uses to exercise Broker fan-out without a network dependency.
package memsource

import (
	"context"
	"sync"

	"github.com/botobag/broker/brokerr"
	"github.com/botobag/broker/query"
	"github.com/botobag/broker/source"
)

// Store is a Source[T] and Sink[T] over an in-process slice of T.
type Store[T any] struct {
	mu      sync.RWMutex
	records []T
}

// New creates a Store seeded with the given records.
func New[T any](records ...T) *Store[T] {
	s := &Store[T]{}
	s.records = append(s.records, records...)
	return s
}

// Fetch implements source.Source[T].
func (s *Store[T]) Fetch(ctx context.Context, q query.Query[T]) (source.Stream[T], error) {
	all, err := s.FetchAll(ctx, q)
	if err != nil {
		return nil, err
	}
	return source.NewSliceStream(all), nil
}

// FetchAll implements source.Source[T].
func (s *Store[T]) FetchAll(ctx context.Context, q query.Query[T]) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, brokerr.Fetch(brokerr.IOError(err))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []T
	for _, record := range s.records {
		if q.Evaluate(record) {
			matches = append(matches, record)
		}
	}
	return matches, nil
}

// FetchOne implements source.Source[T].
func (s *Store[T]) FetchOne(ctx context.Context, q query.Query[T]) (T, error) {
	return source.FetchOneFromFetchAll[T](ctx, s, q)
}

// FetchOptional implements source.Source[T].
func (s *Store[T]) FetchOptional(ctx context.Context, q query.Query[T]) (T, bool, error) {
	return source.FetchOptionalFromFetchAll[T](ctx, s, q)
}

// SizeHint implements source.Source[T]. The store's exact size is always
// known, so for True lower and upper coincide.
func (s *Store[T]) SizeHint(q query.Query[T]) (lower int, upper int, upperKnown bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := q.(query.True[T]); ok {
		return len(s.records), len(s.records), true
	}
	// A non-trivial predicate could match anywhere from none to every stored
	// record; only the upper bound is informative without evaluating it.
	return 0, len(s.records), true
}

// SendOne implements source.Sink[T].
func (s *Store[T]) SendOne(ctx context.Context, entry T) error {
	if err := ctx.Err(); err != nil {
		return brokerr.Send(brokerr.IOError(err))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, entry)
	return nil
}

// SendAll implements source.Sink[T].
func (s *Store[T]) SendAll(ctx context.Context, entries []T) error {
	if err := ctx.Err(); err != nil {
		return brokerr.Send(brokerr.IOError(err))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, entries...)
	return nil
}

// Len reports how many records are currently stored, for test assertions.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
