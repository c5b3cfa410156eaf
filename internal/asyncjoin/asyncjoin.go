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

// Package asyncjoin aggregates and races concurrent operations for the
// Broker. It generalizes, over real goroutines instead of a single
// cooperative executor, the same two shapes a Future-based join/select
// would give you: wait for every operand and collect results in order
// (Join), or take the first success and discard the rest (Race).
package asyncjoin

import (
	"context"
	"errors"
	"sync"
)

func joinErrors(errs []error) error {
	return errors.Join(errs...)
}

// Join runs every fn concurrently, each with its own derived context, and
// collects their results in input order. As soon as any fn returns an
// error, the shared context is cancelled so the remaining goroutines can
// stop early, but Join still waits for all of them to return before
// reporting that first error — callers depending on a Source actually
// releasing its connection can rely on Join never returning while a
// goroutine it started is still running.
func Join[T any](ctx context.Context, fns ...func(context.Context) (T, error)) ([]T, error) {
	results := make([]T, len(fns))

	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		firstErr error
		errOnce  sync.Once
	)

	var wg sync.WaitGroup
	wg.Add(len(fns))
	for i, fn := range fns {
		go func(i int, fn func(context.Context) (T, error)) {
			defer wg.Done()
			value, err := fn(cctx)
			results[i] = value
			if err != nil {
				errOnce.Do(func() { firstErr = err })
				cancel()
			}
		}(i, fn)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// Race runs every fn concurrently and returns the value from whichever one
// first succeeds, cancelling the rest. If every fn fails, Race returns the
// zero value and a joined error (via errors.Join) combining every failure,
// in the order the failures arrived, so no individual cause is silently
// dropped.
func Race[T any](ctx context.Context, fns ...func(context.Context) (T, error)) (T, error) {
	var zero T

	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		value T
		err   error
	}
	out := make(chan outcome, len(fns))

	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, fn := range fns {
		go func(fn func(context.Context) (T, error)) {
			defer wg.Done()
			value, err := fn(cctx)
			out <- outcome{value, err}
		}(fn)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	var errs []error
	for o := range out {
		if o.err == nil {
			cancel()
			// out is buffered to len(fns), so returning now without draining the
			// rest never blocks the remaining goroutines' sends.
			return o.value, nil
		}
		errs = append(errs, o.err)
	}

	return zero, joinErrors(errs)
}
