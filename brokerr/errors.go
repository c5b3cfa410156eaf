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

// Package brokerr defines the error taxonomy shared by every connector:
// five orthogonal error kinds (Connection, Decode, InvalidQuery, Encode,
// Rejected) and the composite errors built from them (FetchError, SendError,
// FetchOneError). The name avoids colliding with the stdlib "errors"
// package, which every file here also uses for wrapping.
//
// No error-handling or error-enum library appears anywhere in the retrieval
// pack this module was modeled on, so this taxonomy is expressed with plain
// Go idiom: exported error struct types implementing `error`, `Unwrap() error`
// for use with errors.As/errors.Is, and sentinel values for the cases that
// carry no data.
package brokerr

import (
	"errors"
	"fmt"
)

// ConnectionError reports a transport-layer failure: an HTTP error with
// status code, an I/O error, a timeout, a redirect loop, or any other
// failure at the link layer, classified by the connector that observed it.
type ConnectionError struct {
	// Code is the HTTP status code, if this failure came from a non-2xx
	// response. Zero if the failure occurred before a status was available
	// (e.g. a connection reset or timeout).
	Code int
	// Err is the underlying error, if any (an *url.Error, a context error,
	// etc).
	Err error
}

func (e *ConnectionError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("connection error: http %d: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("connection error: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// HTTPError wraps err as a ConnectionError carrying the given status code.
func HTTPError(code int, err error) *ConnectionError {
	return &ConnectionError{Code: code, Err: err}
}

// IOError wraps err as a ConnectionError with no status code.
func IOError(err error) *ConnectionError {
	return &ConnectionError{Err: err}
}

// DecodeError reports that bytes were received but the codec could not
// parse them. It carries the underlying codec error.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode error: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// InvalidQueryError reports that a query could not be serialized to the
// backend's request form, e.g. a value type the translator can't stringify.
type InvalidQueryError struct {
	Err error
}

func (e *InvalidQueryError) Error() string { return fmt.Sprintf("invalid query: %v", e.Err) }
func (e *InvalidQueryError) Unwrap() error { return e.Err }

// EncodeError reports that an outgoing record could not be serialized.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return fmt.Sprintf("encode error: %v", e.Err) }
func (e *EncodeError) Unwrap() error { return e.Err }

// ErrRejected reports that a sink accepted the request but refused the
// content — distinct from a ConnectionError, which means the request never
// got a considered response at all.
var ErrRejected = errors.New("entry rejected by sink")

// ErrNoSuchEntry reports that no entry matched the query.
var ErrNoSuchEntry = errors.New("no entry matching the query")

// ErrEmpty reports that decoding received no bytes, or bytes representing an
// empty collection.
var ErrEmpty = errors.New("no bytes were returned, or they represent an empty collection")

// FetchError is raised by Source methods. It aggregates Connection, Decode
// and InvalidQuery failures.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return e.Err.Error() }
func (e *FetchError) Unwrap() error { return e.Err }

// Fetch wraps err (expected to be a *ConnectionError, *DecodeError or
// *InvalidQueryError) as a FetchError.
func Fetch(err error) *FetchError {
	if err == nil {
		return nil
	}
	return &FetchError{Err: err}
}

// FetchOneError is raised by Source.FetchOne. It is either a FetchError or
// ErrNoSuchEntry.
type FetchOneError struct {
	Err error
}

func (e *FetchOneError) Error() string { return e.Err.Error() }
func (e *FetchOneError) Unwrap() error { return e.Err }

// FetchOne wraps err as a FetchOneError.
func FetchOne(err error) *FetchOneError {
	if err == nil {
		return nil
	}
	return &FetchOneError{Err: err}
}

// IsNoSuchEntry reports whether err (directly or through a FetchOneError
// wrapper, or a raw decode-empty result) denotes "no matching entry", as
// opposed to any other failure.
func IsNoSuchEntry(err error) bool {
	return errors.Is(err, ErrNoSuchEntry) || errors.Is(err, ErrEmpty)
}

// SendError is raised by Sink methods. It aggregates Connection, Encode and
// Rejected failures.
type SendError struct {
	Err error
}

func (e *SendError) Error() string { return e.Err.Error() }
func (e *SendError) Unwrap() error { return e.Err }

// Send wraps err as a SendError.
func Send(err error) *SendError {
	if err == nil {
		return nil
	}
	return &SendError{Err: err}
}
