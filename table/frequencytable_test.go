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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmpty(t *testing.T) {
	t.Parallel()

	tbl := Build(nil)
	assert.Equal(t, uint32(0), tbl.Total())
	assert.Equal(t, 0, tbl.Len())
}

func TestBuildSingleSymbol(t *testing.T) {
	t.Parallel()

	tbl := Build([]byte("AAAA"))
	assert.Equal(t, uint32(4), tbl.Total())
	require.Equal(t, 1, tbl.Len())

	r, err := tbl.Range('A')
	require.NoError(t, err)
	assert.Equal(t, Range{Occurrences: 4, Lower: 0, Upper: 4}, r)
}

func TestBuildAscendingOrder(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  []byte
		want map[byte]Range
	}{
		{
			name: "AB",
			src:  []byte("AB"),
			want: map[byte]Range{
				'A': {Occurrences: 1, Lower: 0, Upper: 1},
				'B': {Occurrences: 1, Lower: 1, Upper: 2},
			},
		},
		{
			name: "mixed counts",
			src:  []byte("BAAB"),
			want: map[byte]Range{
				'A': {Occurrences: 2, Lower: 0, Upper: 2},
				'B': {Occurrences: 2, Lower: 2, Upper: 4},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tbl := Build(tt.src)

			for sym, want := range tt.want {
				got, err := tbl.Range(sym)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestRangeMissingSymbol(t *testing.T) {
	t.Parallel()

	tbl := Build([]byte("A"))
	_, err := tbl.Range('Z')
	assert.ErrorIs(t, err, ErrEmptyFrequencies)
}

func TestLocateRoundTrip(t *testing.T) {
	t.Parallel()

	tbl := Build([]byte("BAAB"))
	total := tbl.Total()

	for _, sym := range []byte{'A', 'B'} {
		r, err := tbl.Range(sym)
		require.NoError(t, err)

		// base=0, step=1 collapses Locate's scaled interval back to the
		// symbol's own cumulative interval, so target==r.Lower must match.
		got, lo, hi, ok := tbl.Locate(r.Lower, 0, 1)
		require.True(t, ok)
		assert.Equal(t, sym, got)
		assert.Equal(t, r.Lower, lo)
		assert.Equal(t, r.Upper, hi)
	}

	_, _, _, ok := tbl.Locate(total, 0, 1)
	assert.False(t, ok, "target at N is out of range for every symbol")
}

func TestBuild256DistinctSymbols(t *testing.T) {
	t.Parallel()

	src := make([]byte, 256)
	for i := range src {
		src[i] = byte(i)
	}

	tbl := Build(src)
	assert.Equal(t, uint32(256), tbl.Total())
	assert.Equal(t, 256, tbl.Len())

	for i := 0; i < 256; i++ {
		r, err := tbl.Range(byte(i))
		require.NoError(t, err)
		assert.Equal(t, uint32(1), r.Occurrences)
		assert.Equal(t, uint32(i), r.Lower)
		assert.Equal(t, uint32(i+1), r.Upper)
	}
}
