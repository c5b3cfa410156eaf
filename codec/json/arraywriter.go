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

package json

import "io"

const initialArrayWriterBufSize = 512

// arrayWriter buffers the bytes of a JSON array, writing "[", each already-
// marshaled element separated by ",", and a closing "]", directly to an
// io.Writer rather than building the whole array in memory first. It plays
// the same role the jsonwriter package's Stream plays for artemis's GraphQL
// result marshaling, trimmed to the one capability codec/json needs:
// writing raw, already-encoded element bytes one at a time.
type arrayWriter struct {
	w     io.Writer
	buf   []byte
	wrote bool
	err   error
}

func newArrayWriter(w io.Writer) *arrayWriter {
	aw := &arrayWriter{w: w, buf: make([]byte, 0, initialArrayWriterBufSize)}
	aw.writeByte('[')
	return aw
}

func (aw *arrayWriter) writeElement(raw []byte) error {
	if aw.err != nil {
		return aw.err
	}
	if aw.wrote {
		aw.writeByte(',')
	}
	aw.wrote = true
	aw.writeRaw(raw)
	return aw.err
}

func (aw *arrayWriter) close() error {
	if aw.err != nil {
		return aw.err
	}
	aw.writeByte(']')
	return aw.flush()
}

func (aw *arrayWriter) writeByte(b byte) {
	aw.buf = append(aw.buf, b)
}

func (aw *arrayWriter) writeRaw(b []byte) {
	if aw.err != nil {
		return
	}
	if len(aw.buf)+len(b) < initialArrayWriterBufSize {
		aw.buf = append(aw.buf, b...)
		return
	}
	if err := aw.flush(); err != nil {
		return
	}
	if len(b) > 0 {
		if _, err := aw.w.Write(b); err != nil {
			aw.err = err
		}
	}
}

func (aw *arrayWriter) flush() error {
	if aw.err != nil {
		return aw.err
	}
	if len(aw.buf) == 0 {
		return nil
	}
	_, err := aw.w.Write(aw.buf)
	aw.buf = aw.buf[:0]
	if err != nil {
		aw.err = err
	}
	return err
}
