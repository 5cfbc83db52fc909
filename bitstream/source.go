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

package bitstream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrExhausted is returned when a fresh word cannot be read before the
// decoder driver has produced all N symbols: the compressed stream ended
// prematurely.
var ErrExhausted = errors.New("bitstream: data ended prematurely")

// Source delivers bits one at a time from an underlying reader via a
// W-bit lookahead register, refilling it one word at a time.
type Source struct {
	word  uint32
	count uint
	r     io.Reader
}

// NewSource creates a Source over r, reading the first W-bit word to seed
// the decoder's encoding register (returned verbatim) but leaving the
// lookahead itself exhausted: that word has already been folded into the
// register by the caller, so it must not be redelivered by NextBit. The
// first real NextBit call therefore reads a fresh second word, matching
// original_source/arthcoding.cpp's priming loop, which leaves its own
// buffer_counter exhausted immediately after filling the encoding register.
func NewSource(r io.Reader) (*Source, uint32, error) {
	s := &Source{r: r}

	if err := s.refill(); err != nil {
		return nil, 0, err
	}

	first := s.word
	s.count = 0
	return s, first, nil
}

func (this *Source) refill() error {
	var buf [Width / 8]byte

	if _, err := io.ReadFull(this.r, buf[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrExhausted, err)
	}

	this.word = binary.LittleEndian.Uint32(buf[:])
	this.count = Width
	return nil
}

// NextBit returns the next bit of the lookahead, refilling it from the
// underlying reader whenever it empties.
func (this *Source) NextBit() (int, error) {
	if this.count == 0 {
		if err := this.refill(); err != nil {
			return 0, err
		}
	}

	bit := int((this.word >> (this.count - 1)) & 1)
	this.count--
	return bit, nil
}
