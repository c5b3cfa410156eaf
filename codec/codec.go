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

// Package codec defines the serialization contract connectors use to turn
// records into bytes and back. A Codec bundles an Encoder and a Decoder;
// most callers only need the Codec, but the two halves are split so a
// connector that only ever sends, or only ever fetches, can depend on the
// narrower interface.
package codec

import (
	"errors"
	"io"
)

// ErrNoValue reports that a DecodeOne call found no record to decode.
var ErrNoValue = errors.New("codec: no value to decode")

// Encoder serializes records of type T to bytes.
//
// EncodeAllFromEncodeOne can supply EncodeAll from EncodeOne; this package
// has no helper that derives EncodeOne or Encode, so implementations provide
// those themselves.
type Encoder[T any] interface {
	// EncodeOne serializes a single record.
	EncodeOne(entry T) ([]byte, error)

	// EncodeAll serializes entries as one value (e.g. a JSON array), not as
	// entries encoded independently and concatenated.
	EncodeAll(entries []T) ([]byte, error)

	// Encode writes entries, read one at a time from next, to w as a single
	// logical collection, without materializing the whole slice first. next
	// returns ok == false once exhausted.
	Encode(w io.Writer, next func() (entry T, ok bool)) error
}

// Decoder deserializes bytes into records of type T.
//
// DecodeOneFromDecodeAll and DecodeOptionalFromDecodeAll can supply the two
// single-record methods from DecodeAll; this package has no helper that
// derives DecodeAll from DecodeOne.
type Decoder[T any] interface {
	// DecodeAll parses data as a collection of records.
	DecodeAll(data []byte) ([]T, error)

	// DecodeOptional parses data as a single optional record: ok is false if
	// data represents "no value" (empty bytes, or an empty collection) with
	// no error.
	DecodeOptional(data []byte) (value T, ok bool, err error)

	// DecodeOne parses data as a single record, failing if data represents no
	// value at all.
	DecodeOne(data []byte) (T, error)
}

// Codec bundles an Encoder and Decoder for the same wire format.
type Codec[T any] interface {
	Encoder[T]
	Decoder[T]
}

// EncodeAllFromEncodeOne implements EncodeAll by independently encoding
// each entry and joining the results with sep. Codecs whose format has no
// notion of "encode a collection as one value" (e.g. newline-delimited
// formats) can build EncodeAll this way; codecs that serialize collections
// as a single structured value (JSON arrays) should not use this — see
// codec/json, which builds its own array form instead.
func EncodeAllFromEncodeOne[T any](enc Encoder[T], entries []T, sep []byte) ([]byte, error) {
	var out []byte
	for i, entry := range entries {
		if i > 0 {
			out = append(out, sep...)
		}
		b, err := enc.EncodeOne(entry)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// DecodeOneFromDecodeAll implements DecodeOne in terms of DecodeAll: it
// returns the first decoded record, or ErrNoValue if the collection is
// empty.
func DecodeOneFromDecodeAll[T any](dec Decoder[T], data []byte) (T, error) {
	var zero T
	all, err := dec.DecodeAll(data)
	if err != nil {
		return zero, err
	}
	if len(all) == 0 {
		return zero, ErrNoValue
	}
	return all[0], nil
}

// DecodeOptionalFromDecodeAll implements DecodeOptional in terms of
// DecodeAll.
func DecodeOptionalFromDecodeAll[T any](dec Decoder[T], data []byte) (T, bool, error) {
	var zero T
	if len(data) == 0 {
		return zero, false, nil
	}
	all, err := dec.DecodeAll(data)
	if err != nil {
		return zero, false, err
	}
	if len(all) == 0 {
		return zero, false, nil
	}
	return all[0], true, nil
}
