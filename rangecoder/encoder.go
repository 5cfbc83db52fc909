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

import "github.com/rfbergeron/arithmetic-coding/bitstream"

// Encoder drives State from each input symbol's cumulative interval,
// pushing emitted bits into a bitstream.Sink.
type Encoder struct {
	state State
	sink  *bitstream.Sink
}

// NewEncoder returns an Encoder writing through sink.
func NewEncoder(sink *bitstream.Sink) *Encoder {
	return &Encoder{state: NewState(), sink: sink}
}

// EncodeSymbol narrows the range by [lower, upper) out of total and
// renormalizes, emitting bits as the range's top bits become decided.
func (this *Encoder) EncodeSymbol(lower, upper, total uint32) error {
	this.state.Narrow(lower, upper, total)
	return this.renormalize()
}

func (this *Encoder) renormalize() error {
	for {
		switch {
		case this.state.agrees():
			bit := int(this.state.Lower >> (Width - 1))

			if err := this.sink.WriteBit(bit); err != nil {
				return err
			}

			complement := bit ^ 1

			for ; this.state.Pending > 0; this.state.Pending-- {
				if err := this.sink.WriteBit(complement); err != nil {
					return err
				}
			}

			this.state.Lower <<= 1
			this.state.Upper = (this.state.Upper << 1) | 1

		case this.state.straddles():
			this.state.Pending++
			this.state.Lower = (this.state.Lower << 1) &^ Top
			this.state.Upper = (this.state.Upper << 1) | Top | 1

		default:
			return nil
		}
	}
}

// Finish flushes the midpoint of the final [Lower, Upper) interval, as
// described by the end-of-stream procedure. It writes the midpoint's top
// bit, one complement bit for each pending (E3) bit, and the midpoint's
// second bit, then hands the remaining bits to Sink.FlushFinal. Only the
// leading bits of the flushed value reach the decoder's register intact
// (the pad is followed by FlushFinal's extra word), so the value needs a
// margin on both sides: after renormalization the interval is wider than
// Second, so the midpoint stays inside it with at least three exact
// leading bits, whereas Lower, the inclusive bottom edge, has no margin
// below it. This matches original_source/arthcoding.cpp's compress_file,
// which flushes lower_bound + (range/2), never lower_bound on its own.
func (this *Encoder) Finish() error {
	midpoint := this.state.Lower + (this.state.Upper-this.state.Lower)/2
	bit := int(midpoint >> (Width - 1))

	if err := this.sink.WriteBit(bit); err != nil {
		return err
	}

	for ; this.state.Pending > 0; this.state.Pending-- {
		if err := this.sink.WriteBit(bit ^ 1); err != nil {
			return err
		}
	}

	if err := this.sink.WriteBit(int(midpoint>>(Width-2)) & 1); err != nil {
		return err
	}

	return this.sink.FlushFinal(midpoint << 2)
}
