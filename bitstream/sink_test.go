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
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkFlushesOnFullWord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := NewSink(&buf)

	// 0b10110000000000000000000000000001 (32 bits, MSB-first)
	bits := []int{1, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	for _, b := range bits {
		require.NoError(t, sink.WriteBit(b))
	}

	require.Len(t, buf.Bytes(), 4)
	got := binary.LittleEndian.Uint32(buf.Bytes())
	assert.Equal(t, uint32(0xB0000001), got)
}

func TestSinkWriteAfterClose(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := NewSink(&buf)
	require.NoError(t, sink.FlushFinal(0))
	assert.ErrorIs(t, sink.WriteBit(0), errClosed)
	assert.ErrorIs(t, sink.FlushFinal(0), errClosed)
}

func TestFlushFinalPadsPartialWordThenEmitsLower(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := NewSink(&buf)

	// Three bits buffered: 1,0,1 -> top three bits of the padded word.
	require.NoError(t, sink.WriteBit(1))
	require.NoError(t, sink.WriteBit(0))
	require.NoError(t, sink.WriteBit(1))

	lower := uint32(0x6C000000)
	require.NoError(t, sink.FlushFinal(lower))

	require.Len(t, buf.Bytes(), 8)

	paddedWord := binary.LittleEndian.Uint32(buf.Bytes()[0:4])
	finalWord := binary.LittleEndian.Uint32(buf.Bytes()[4:8])

	// Top 3 bits from the buffer, remaining 29 from lower's high bits.
	wantPadded := (uint32(0b101) << 29) | (lower >> 3)
	assert.Equal(t, wantPadded, paddedWord)
	assert.Equal(t, lower, finalWord)
}

func TestFlushFinalWithNoPendingBits(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := NewSink(&buf)

	require.NoError(t, sink.FlushFinal(0xDEADBEEF))
	require.Len(t, buf.Bytes(), 4)
	assert.Equal(t, uint32(0xDEADBEEF), binary.LittleEndian.Uint32(buf.Bytes()))
}
