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

package table

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Magic identifies the table section of a compressed file: 0x1B, "tab", W.
var Magic = [5]byte{0x1B, 't', 'a', 'b', byte(Width)}

// ErrInvalidHeader is returned when the table magic does not match,
// including a register-width byte mismatch.
var ErrInvalidHeader = errors.New("table: invalid header")

// WriteTo serializes t as magic, one record per present symbol in ascending
// symbol order, and a zero-occurrence terminator record.
func WriteTo(w io.Writer, t *Table) error {
	if _, err := w.Write(Magic[:]); err != nil {
		return fmt.Errorf("table: write magic: %w", err)
	}

	var rec [5]byte

	for _, e := range t.entries {
		rec[0] = e.symbol
		binary.LittleEndian.PutUint32(rec[1:], e.rng.Occurrences)

		if _, err := w.Write(rec[:]); err != nil {
			return fmt.Errorf("table: write record: %w", err)
		}
	}

	rec[0] = 0
	binary.LittleEndian.PutUint32(rec[1:], 0)

	if _, err := w.Write(rec[:]); err != nil {
		return fmt.Errorf("table: write terminator: %w", err)
	}

	return nil
}

// ReadFrom verifies the magic, reads records until the zero-occurrence
// terminator, and reconstructs cumulative intervals in the order the
// records were written (ascending symbol value, by the encoder's contract).
func ReadFrom(r io.Reader) (*Table, error) {
	var magic [5]byte

	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return &Table{}, fmt.Errorf("%w: reading table magic: %v", ErrInvalidHeader, err)
	}

	if magic != Magic {
		return &Table{}, fmt.Errorf("%w: table magic: want %x, got %x", ErrInvalidHeader, Magic, magic)
	}

	t := &Table{}
	running := uint32(0)
	var rec [5]byte

	for {
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			return &Table{}, fmt.Errorf("%w: reading table record: %v", ErrInvalidHeader, err)
		}

		occ := binary.LittleEndian.Uint32(rec[1:])

		if occ == 0 {
			break
		}

		sym := rec[0]
		rg := Range{Occurrences: occ, Lower: running, Upper: running + occ}
		running = rg.Upper

		t.present[sym] = true
		t.ranges[sym] = rg
		t.entries = append(t.entries, entry{symbol: sym, rng: rg})
	}

	t.total = running
	return t, nil
}
