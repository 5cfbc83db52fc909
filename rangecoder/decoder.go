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

package rangecoder

import (
	"errors"
	"io"

	"github.com/rfbergeron/arithmetic-coding/bitstream"
)

// ErrNoMatch indicates the encoding register did not fall inside any
// symbol's narrowed interval, which can only happen if the compressed
// stream or table is corrupt.
var ErrNoMatch = errors.New("rangecoder: encoding register matched no symbol")

// Locator finds the unique symbol whose narrowed interval
// [base+step*lower, base+step*upper) contains target, scanning in
// ascending symbol order. It is implemented by *table.Table.
type Locator interface {
	Locate(target, base, step uint32) (symbol byte, lower, upper uint32, ok bool)
}

// Decoder maintains State and a Width-bit encoding register E, selecting
// the symbol whose narrowed interval contains E at each output position
// and applying the same renormalize/straddle transitions to State and E.
type Decoder struct {
	state State
	src   *bitstream.Source
	reg   uint32
}

// NewDecoder seeds the encoding register from the first Width-bit word of
// r. That word is spent once read: the Source's lookahead starts out
// exhausted rather than holding a second copy of it, so the first
// renormalize reads the next word the encoder actually wrote.
func NewDecoder(r io.Reader) (*Decoder, error) {
	src, first, err := bitstream.NewSource(r)
	if err != nil {
		return nil, err
	}

	return &Decoder{state: NewState(), src: src, reg: first}, nil
}

// DecodeSymbol locates the symbol whose narrowed interval contains the
// current encoding register, narrows State to match, renormalizes, and
// returns the symbol.
func (this *Decoder) DecodeSymbol(l Locator, total uint32) (byte, error) {
	step := (this.state.Upper - this.state.Lower) / total
	sym, lower, upper, ok := l.Locate(this.reg, this.state.Lower, step)

	if !ok {
		return 0, ErrNoMatch
	}

	this.state.Narrow(lower, upper, total)

	if err := this.renormalize(); err != nil {
		return 0, err
	}

	return sym, nil
}

func (this *Decoder) renormalize() error {
	for {
		switch {
		case this.state.agrees():
			this.state.Lower <<= 1
			this.state.Upper = (this.state.Upper << 1) | 1

			bit, err := this.src.NextBit()
			if err != nil {
				return err
			}

			this.reg = (this.reg << 1) | uint32(bit)

		case this.state.straddles():
			this.state.Lower = (this.state.Lower << 1) &^ Top
			this.state.Upper = (this.state.Upper << 1) | Top | 1

			bit, err := this.src.NextBit()
			if err != nil {
				return err
			}

			// Preserve the top bit of E (already decided, not yet consumed
			// by a comparison), shift the rest, and inject the fresh bit.
			this.reg = ((this.reg << 1) &^ Top) | (this.reg & Top) | uint32(bit)

		default:
			return nil
		}
	}
}
