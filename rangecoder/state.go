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

// Package rangecoder implements the fixed-precision range-narrowing state
// machine shared by the encoder and decoder drivers: narrowing the
// [Lower, Upper) register by each symbol's cumulative interval, then
// renormalizing with the E1/E2 (first-bit-agrees) and E3 (straddle,
// pending-bit) transitions.
package rangecoder

// Width is the canonical register width, in bits.
const Width = 32

// Top is the mask of the first (most significant) bit of a Width-bit
// register. Second is the mask of the bit below it.
const (
	Top    = uint32(1) << (Width - 1)
	Second = Top >> 1
)

// State is the range coder's working register: a half-open interval
// [Lower, Upper) narrowed by one symbol at a time, plus the count of
// straddled (E3) bits not yet resolved.
type State struct {
	Lower, Upper uint32
	Pending      uint
}

// NewState returns the initial state: the full Width-bit range, no
// symbols narrowed yet, no pending bits.
func NewState() State {
	return State{Lower: 0, Upper: ^uint32(0), Pending: 0}
}

// Narrow replaces [Lower, Upper) with the sub-interval corresponding to a
// symbol's cumulative range [lower, upper) out of total. step is computed
// once (range/total) to avoid overflow from a wider multiplicative form.
func (s *State) Narrow(lower, upper, total uint32) {
	step := (s.Upper - s.Lower) / total
	s.Upper = s.Lower + step*upper
	s.Lower = s.Lower + step*lower
}

// agrees reports whether the top bit of Lower and Upper is already decided.
func (s *State) agrees() bool {
	return (s.Lower ^ s.Upper) < Top
}

// straddles reports whether the range crosses the midpoint but is
// trapped within the middle half (the E3 case).
func (s *State) straddles() bool {
	return s.Lower >= Second && s.Upper < (Top|Second)
}
