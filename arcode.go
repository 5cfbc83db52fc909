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

// Package arcode is a file-level arithmetic coder: a lossless compressor
// and matching decompressor that maps a finite sequence of bytes to a
// compact binary representation whose length approaches the empirical
// entropy of the input. Encode and Decode are the two one-shot entry
// points; everything else in this package wires the Frequency Table,
// Table Codec, Range State, and Bit Sink/Source components together into
// the Encoder Driver and Decoder Driver described by the design.
package arcode

import (
	"fmt"
	"io"

	"github.com/rfbergeron/arithmetic-coding/bitstream"
	"github.com/rfbergeron/arithmetic-coding/rangecoder"
	"github.com/rfbergeron/arithmetic-coding/table"
)

// dataMagic identifies the data section of a compressed file: 0x1B, "dat", W.
var dataMagic = [5]byte{0x1B, 'd', 'a', 't', byte(table.Width)}

// Encode is the Encoder Driver: it builds the frequency table over one
// full pass of src, writes the table and the data magic, then drives the
// range encoder over a second pass of src, finishing with the
// end-of-stream flush.
func Encode(src []byte, w io.Writer, listeners ...Listener) error {
	notify(listeners, EventTableBuildStart, int64(len(src)))
	t := table.Build(src)
	notify(listeners, EventTableBuildEnd, int64(t.Len()))

	if err := table.WriteTo(w, t); err != nil {
		return err
	}

	if _, err := w.Write(dataMagic[:]); err != nil {
		return fmt.Errorf("arcode: write data magic: %w", err)
	}

	notify(listeners, EventDataStart, int64(t.Total()))
	sink := bitstream.NewSink(w)

	if t.Total() == 0 {
		// Empty input: headers and terminator are already on the wire;
		// only the final zero word remains (spec §9, third open question).
		if err := sink.FlushFinal(0); err != nil {
			return fmt.Errorf("arcode: flush empty stream: %w", err)
		}

		notify(listeners, EventDataEnd, 0)
		return nil
	}

	enc := rangecoder.NewEncoder(sink)

	for _, b := range src {
		r, err := t.Range(b)
		if err != nil {
			return fmt.Errorf("arcode: encode %q: %w", b, err)
		}

		if err := enc.EncodeSymbol(r.Lower, r.Upper, t.Total()); err != nil {
			return fmt.Errorf("arcode: encode %q: %w", b, err)
		}
	}

	if err := enc.Finish(); err != nil {
		return fmt.Errorf("arcode: finish stream: %w", err)
	}

	notify(listeners, EventDataEnd, int64(len(src)))
	return nil
}

// Decode is the Decoder Driver: it reads and verifies the table and data
// magic, then for each of the table's N output positions selects the
// symbol whose narrowed interval contains the decoder's encoding
// register, applying the same renormalize/straddle transitions used by
// the encoder.
func Decode(r io.Reader, listeners ...Listener) ([]byte, error) {
	t, err := table.ReadFrom(r)
	if err != nil {
		return nil, wrapInvalidHeader(err)
	}

	notify(listeners, EventAfterHeader, int64(t.Total()))

	var magic [5]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, wrapInvalidHeader(fmt.Errorf("reading data magic: %w", err))
	}

	if magic != dataMagic {
		return nil, fmt.Errorf("%w: data magic: want %x, got %x", ErrInvalidHeader, dataMagic, magic)
	}

	total := t.Total()

	if total == 0 {
		// Still consume the final zero word the encoder always writes.
		var zero [4]byte
		if _, err := io.ReadFull(r, zero[:]); err != nil {
			return nil, wrapPrematureEnd(err)
		}

		return []byte{}, nil
	}

	dec, err := rangecoder.NewDecoder(r)
	if err != nil {
		return nil, wrapPrematureEnd(err)
	}

	notify(listeners, EventDataStart, int64(total))
	out := make([]byte, 0, total)

	for uint32(len(out)) < total {
		sym, err := dec.DecodeSymbol(t, total)
		if err != nil {
			return nil, wrapPrematureEnd(err)
		}

		out = append(out, sym)
	}

	notify(listeners, EventDataEnd, int64(len(out)))
	return out, nil
}

func wrapInvalidHeader(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidHeader, err)
}

func wrapPrematureEnd(err error) error {
	return fmt.Errorf("%w: %v", ErrPrematureEnd, err)
}
