/*
Copyright 2011-2017 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package bitstream packs single bits into W-bit words and unpacks them
// again, in the fixed little-endian byte order shared by the encoder and
// decoder.
package bitstream

import (
	"encoding/binary"
	"errors"
	"io"
)

// Width is the canonical register width, in bits, of one packed word.
const Width = 32

var errClosed = errors.New("bitstream: sink closed")

// Sink accepts bits one at a time, high-bit-first within each word, and
// flushes whole words to the underlying writer as they fill.
type Sink struct {
	word   uint32
	count  uint
	w      io.Writer
	closed bool
}

// NewSink returns a Sink that flushes packed words to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// WriteBit appends the low bit of bit to the buffer, flushing a full word
// to the underlying writer when Width bits have accumulated.
func (this *Sink) WriteBit(bit int) error {
	if this.closed {
		return errClosed
	}

	this.word = (this.word << 1) | uint32(bit&1)
	this.count++

	if this.count == Width {
		return this.flush()
	}

	return nil
}

func (this *Sink) flush() error {
	var buf [Width / 8]byte
	binary.LittleEndian.PutUint32(buf[:], this.word)

	if _, err := this.w.Write(buf[:]); err != nil {
		return err
	}

	this.word = 0
	this.count = 0
	return nil
}

// FlushFinal implements the end-of-stream procedure: if a partial word is
// buffered, it is padded out to Width bits with the high bits of final and
// emitted; then final is always emitted as one more full word, so the
// stream holds at least one word past the last bit written with WriteBit.
// rangecoder.Encoder.Finish writes the leading bits of its flush value
// with WriteBit and passes the remaining bits here as final.
func (this *Sink) FlushFinal(final uint32) error {
	if this.closed {
		return errClosed
	}

	if this.count > 0 {
		remaining := Width - this.count
		this.word = (this.word << remaining) | (final >> this.count)
		this.count = Width

		if err := this.flush(); err != nil {
			return err
		}
	}

	var buf [Width / 8]byte
	binary.LittleEndian.PutUint32(buf[:], final)

	if _, err := this.w.Write(buf[:]); err != nil {
		return err
	}

	this.closed = true
	return nil
}
