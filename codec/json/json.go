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

// Package json is the JSON codec.Codec[T] implementation. One-shot
// encode/decode goes through github.com/json-iterator/go, the codec the
// rest of this module's ancestry already depends on; the element-wise
// streaming encoder is built on an array writer in the style of the
// jsonwriter package, adapted so it can emit an arbitrary T's JSON form one
// record at a time instead of requiring the full slice up front.
package json

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/botobag/broker/codec"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// Codec is the JSON codec.Codec[T] implementation.
type Codec[T any] struct{}

// New returns a JSON Codec for T.
func New[T any]() Codec[T] {
	return Codec[T]{}
}

// EncodeOne implements codec.Encoder[T].
func (Codec[T]) EncodeOne(entry T) ([]byte, error) {
	return api.Marshal(entry)
}

// EncodeAll implements codec.Encoder[T]. A nil slice encodes to "[]", not
// the "null" jsoniter would otherwise produce for it, so that EncodeAll(nil)
// and Encode of a stream yielding zero entries are bit-exactly equivalent.
func (Codec[T]) EncodeAll(entries []T) ([]byte, error) {
	if len(entries) == 0 {
		return []byte("[]"), nil
	}
	return api.Marshal(entries)
}

// Encode implements codec.Encoder[T], building the JSON array "[e1,e2,...]"
// element by element as next yields them, rather than collecting every
// entry into a slice and marshaling it whole. This keeps memory bounded by
// one record at a time for sources fed by a large or unbounded stream.
func (c Codec[T]) Encode(w io.Writer, next func() (T, bool)) error {
	aw := newArrayWriter(w)
	for {
		entry, ok := next()
		if !ok {
			break
		}
		b, err := api.Marshal(entry)
		if err != nil {
			return &codecEncodeError{err}
		}
		if err := aw.writeElement(b); err != nil {
			return err
		}
	}
	return aw.close()
}

// DecodeAll implements codec.Decoder[T].
func (Codec[T]) DecodeAll(data []byte) ([]T, error) {
	var out []T
	if len(data) == 0 {
		return out, nil
	}
	if err := api.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeOptional implements codec.Decoder[T]. Empty bytes and a JSON "null"
// literal both mean "no value".
func (c Codec[T]) DecodeOptional(data []byte) (T, bool, error) {
	var zero T
	trimmed := trimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return zero, false, nil
	}
	var value T
	if err := api.Unmarshal(trimmed, &value); err != nil {
		return zero, false, err
	}
	return value, true, nil
}

// DecodeOne implements codec.Decoder[T].
func (c Codec[T]) DecodeOne(data []byte) (T, error) {
	value, ok, err := c.DecodeOptional(data)
	if err != nil {
		return value, err
	}
	if !ok {
		return value, codec.ErrNoValue
	}
	return value, nil
}

func trimSpace(b []byte) []byte {
	start := 0
	for start < len(b) && isSpace(b[start]) {
		start++
	}
	end := len(b)
	for end > start && isSpace(b[end-1]) {
		end--
	}
	return b[start:end]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

type codecEncodeError struct{ err error }

func (e *codecEncodeError) Error() string { return "json encode: " + e.err.Error() }
func (e *codecEncodeError) Unwrap() error { return e.err }
