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
	"bytes"
	"testing"

	"github.com/rfbergeron/arithmetic-coding/bitstream"
	"github.com/rfbergeron/arithmetic-coding/table"
	"github.com/stretchr/testify/require"
)

func encodeSymbols(t *testing.T, tbl *table.Table, src []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	sink := bitstream.NewSink(&buf)
	enc := NewEncoder(sink)

	for _, b := range src {
		r, err := tbl.Range(b)
		require.NoError(t, err)
		require.NoError(t, enc.EncodeSymbol(r.Lower, r.Upper, tbl.Total()))
	}

	require.NoError(t, enc.Finish())
	return buf.Bytes()
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	tests := [...][]byte{
		[]byte("A"),
		[]byte("AAAA"),
		[]byte("AB"),
		[]byte("BAAB"),
		bytes.Repeat([]byte{0x00, 0xFF}, 500),
	}

	for _, src := range tests {
		src := src
		tbl := table.Build(src)
		wire := encodeSymbols(t, tbl, src)

		dec, err := NewDecoder(bytes.NewReader(wire))
		require.NoError(t, err)

		out := make([]byte, 0, len(src))
		for uint32(len(out)) < tbl.Total() {
			sym, err := dec.DecodeSymbol(tbl, tbl.Total())
			require.NoError(t, err)
			out = append(out, sym)
		}

		require.Equal(t, src, out)
	}
}
