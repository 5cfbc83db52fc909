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

// Package table implements the symbol-frequency table shared by the
// range encoder and decoder: counting occurrences, assigning each
// symbol a half-open cumulative interval, and the wire codec used to
// carry the table across the compressed file.
package table

import "errors"

// Width is the canonical register width, in bits, that this table's
// cumulative counts are scaled for.
const Width = 32

// ErrEmptyFrequencies is returned by Range for a symbol that never occurred.
var ErrEmptyFrequencies = errors.New("table: symbol not present")

// entry is one symbol's cumulative interval, kept in ascending symbol order.
type entry struct {
	symbol byte
	rng    Range
}

// Range is a symbol's half-open cumulative interval [Lower, Upper) over
// [0, N), where N is the total symbol count. Occurrences == Upper - Lower.
type Range struct {
	Occurrences uint32
	Lower       uint32
	Upper       uint32
}

// Table is an ordered mapping from symbol to Range. Symbols are walked in
// ascending value order both when built and when queried; this order is
// part of the wire contract (see Codec).
type Table struct {
	present [256]bool
	ranges  [256]Range
	entries []entry
	total   uint32
}

// Build counts each symbol over one full pass of src and assigns cumulative
// intervals in ascending symbol order. An empty src yields an empty table.
func Build(src []byte) *Table {
	var counts [256]int

	// 4-way unrolled counting, same shape as the teacher's order-0 histogram.
	f0 := [256]int{}
	f1 := [256]int{}
	f2 := [256]int{}
	f3 := [256]int{}
	end4 := len(src) &^ 3

	for i := 0; i < end4; i += 4 {
		f0[src[i]]++
		f1[src[i+1]]++
		f2[src[i+2]]++
		f3[src[i+3]]++
	}

	for i := end4; i < len(src); i++ {
		counts[src[i]]++
	}

	for i := 0; i < 256; i++ {
		counts[i] += f0[i] + f1[i] + f2[i] + f3[i]
	}

	t := &Table{}
	running := uint32(0)

	for sym := 0; sym < 256; sym++ {
		if counts[sym] == 0 {
			continue
		}

		occ := uint32(counts[sym])
		r := Range{Occurrences: occ, Lower: running, Upper: running + occ}
		running = r.Upper

		t.present[sym] = true
		t.ranges[sym] = r
		t.entries = append(t.entries, entry{symbol: byte(sym), rng: r})
	}

	t.total = running
	return t
}

// Total returns N, the total number of symbols the table was built from.
func (t *Table) Total() uint32 {
	return t.total
}

// Len returns the number of distinct symbols present in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Range returns the cumulative interval assigned to sym.
func (t *Table) Range(sym byte) (Range, error) {
	if !t.present[sym] {
		return Range{}, ErrEmptyFrequencies
	}

	return t.ranges[sym], nil
}

// Locate returns the unique symbol whose narrowed interval
// [base+step*Lower, base+step*Upper) contains target, and that symbol's
// own [Lower, Upper) cumulative interval. Symbols are scanned in ascending
// value order; the first (and only) match is returned. This satisfies
// rangecoder.Locator.
func (t *Table) Locate(target, base, step uint32) (byte, uint32, uint32, bool) {
	for _, e := range t.entries {
		lo := base + step*e.rng.Lower
		hi := base + step*e.rng.Upper

		if target >= lo && target < hi {
			return e.symbol, e.rng.Lower, e.rng.Upper, true
		}
	}

	return 0, 0, 0, false
}
