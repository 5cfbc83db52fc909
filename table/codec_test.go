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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToReadFromRoundTrip(t *testing.T) {
	t.Parallel()

	tests := [...][]byte{
		nil,
		[]byte("A"),
		[]byte("AAAA"),
		[]byte("AB"),
		[]byte("BAAB"),
	}

	for _, src := range tests {
		src := src
		tbl := Build(src)

		var buf bytes.Buffer
		require.NoError(t, WriteTo(&buf, tbl))

		got, err := ReadFrom(&buf)
		require.NoError(t, err)

		assert.Equal(t, tbl.Total(), got.Total())
		assert.Equal(t, tbl.Len(), got.Len())

		for sym := 0; sym < 256; sym++ {
			want, wantErr := tbl.Range(byte(sym))
			have, haveErr := got.Range(byte(sym))
			assert.Equal(t, wantErr, haveErr)
			assert.Equal(t, want, have)
		}
	}
}

func TestWriteToLayout(t *testing.T) {
	t.Parallel()

	tbl := Build([]byte("A"))

	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, tbl))

	want := append(append([]byte{}, Magic[:]...),
		'A', 1, 0, 0, 0, // one record: symbol 'A', occurrences=1 LE
		0, 0, 0, 0, 0, // terminator record
	)
	assert.Equal(t, want, buf.Bytes())
}

func TestReadFromBadMagic(t *testing.T) {
	t.Parallel()

	_, err := ReadFrom(bytes.NewReader([]byte{0, 0, 0, 0, 0}))
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestReadFromTruncated(t *testing.T) {
	t.Parallel()

	_, err := ReadFrom(bytes.NewReader(Magic[:]))
	assert.ErrorIs(t, err, ErrInvalidHeader)
}
