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

import "github.com/botobag/broker/codec"

// Builder constructs a Connector through a typestate chain: each call that
// narrows the configuration returns a distinct builder type, and Build()
// only exists on the types reachable once enough fields are set. Asking for
// a read-only connector without ever calling SourceMethod, for instance, is
// a compile error — there is no Build method to call, not a runtime
// "missing field" failure.
//
// Client and Codec (or Encoder/Decoder) must be set before branching into
// SourceURL/SinkURL; they are not reachable afterward. Whether they were set
// is not checked, neither at compile time nor by Build: a Connector built
// without a Client or a codec panics on its first request. This trades a little
// flexibility (you must know the collaborator and codec before you know
// which of source/sink you're configuring) for a builder whose states don't
// multiply by every possible call ordering.
type Builder[T any] struct {
	cfg config[T]
}

// NewBuilder starts an empty Builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Client sets the Transport used for every request.
func (b *Builder[T]) Client(c Transport) *Builder[T] {
	b.cfg.client = c
	return b
}

// Codec sets a combined encoder/decoder, overriding any Encoder/Decoder set
// separately.
func (b *Builder[T]) Codec(c codec.Codec[T]) *Builder[T] {
	b.cfg.codec = c
	return b
}

// Encoder sets just the encoding half of the codec; combine with Decoder to
// build a full codec.Codec[T] without a single value implementing both.
func (b *Builder[T]) Encoder(e codec.Encoder[T]) *Builder[T] {
	b.cfg.encoder = e
	return b
}

// Decoder sets just the decoding half of the codec.
func (b *Builder[T]) Decoder(d codec.Decoder[T]) *Builder[T] {
	b.cfg.decoder = d
	return b
}

// SourceURL sets the URL used for fetches and narrows the builder toward a
// readable connector; SourceMethod must follow before Build becomes
// available.
func (b *Builder[T]) SourceURL(u string) *sourceURLSet[T] {
	cfg := b.cfg
	cfg.sourceURL = u
	return &sourceURLSet[T]{cfg: cfg}
}

// SinkURL sets the URL used for sends and narrows the builder toward a
// writable connector; SinkMethod must follow before Build becomes
// available.
func (b *Builder[T]) SinkURL(u string) *sinkURLSet[T] {
	cfg := b.cfg
	cfg.sinkURL = u
	return &sinkURLSet[T]{cfg: cfg}
}

// sourceURLSet is a Builder that has a source URL but not yet a source
// method.
type sourceURLSet[T any] struct {
	cfg config[T]
}

// SourceMethod sets the HTTP method used for fetches (conventionally "GET")
// and reaches the readable state, from which Build is available.
func (b *sourceURLSet[T]) SourceMethod(m string) *readable[T] {
	cfg := b.cfg
	cfg.sourceMethod = m
	return &readable[T]{cfg: cfg}
}

// sinkURLSet is a Builder that has a sink URL but not yet a sink method.
type sinkURLSet[T any] struct {
	cfg config[T]
}

// SinkMethod sets the HTTP method used for sends (conventionally "POST")
// and reaches the writable state, from which Build is available.
func (b *sinkURLSet[T]) SinkMethod(m string) *writable[T] {
	cfg := b.cfg
	cfg.sinkMethod = m
	return &writable[T]{cfg: cfg}
}

// readable is a Builder with enough configuration to fetch. It can Build a
// read-only Connector now, or add a sink configuration to reach read-write.
type readable[T any] struct {
	cfg config[T]
}

// Build produces a Connector usable as a source.Source[T].
func (b *readable[T]) Build() *Connector[T] {
	return newConnector(b.cfg)
}

// SinkURL extends a readable builder toward read-write.
func (b *readable[T]) SinkURL(u string) *readableSinkURLSet[T] {
	cfg := b.cfg
	cfg.sinkURL = u
	return &readableSinkURLSet[T]{cfg: cfg}
}

// readableSinkURLSet has both a complete source configuration and a sink
// URL, awaiting a sink method.
type readableSinkURLSet[T any] struct {
	cfg config[T]
}

// SinkMethod completes the configuration needed for a read-write connector.
func (b *readableSinkURLSet[T]) SinkMethod(m string) *readWrite[T] {
	cfg := b.cfg
	cfg.sinkMethod = m
	return &readWrite[T]{cfg: cfg}
}

// writable is a Builder with enough configuration to send. It can Build a
// write-only Connector now, or add a source configuration to reach
// read-write.
type writable[T any] struct {
	cfg config[T]
}

// Build produces a Connector usable as a source.Sink[T].
func (b *writable[T]) Build() *Connector[T] {
	return newConnector(b.cfg)
}

// SourceURL extends a writable builder toward read-write.
func (b *writable[T]) SourceURL(u string) *writableSourceURLSet[T] {
	cfg := b.cfg
	cfg.sourceURL = u
	return &writableSourceURLSet[T]{cfg: cfg}
}

// writableSourceURLSet has both a complete sink configuration and a source
// URL, awaiting a source method.
type writableSourceURLSet[T any] struct {
	cfg config[T]
}

// SourceMethod completes the configuration needed for a read-write
// connector.
func (b *writableSourceURLSet[T]) SourceMethod(m string) *readWrite[T] {
	cfg := b.cfg
	cfg.sourceMethod = m
	return &readWrite[T]{cfg: cfg}
}

// readWrite is a Builder with both a complete fetch and a complete send
// configuration.
type readWrite[T any] struct {
	cfg config[T]
}

// Build produces a Connector usable as both a source.Source[T] and a
// source.Sink[T].
func (b *readWrite[T]) Build() *Connector[T] {
	return newConnector(b.cfg)
}
