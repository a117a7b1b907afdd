package spotify_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xeptore/spotid/spotify"
)

func TestFileIDFromBytes(t *testing.T) {
	t.Parallel()

	raw := bytes.Repeat([]byte{0xab}, spotify.FileIDSize)
	raw[0] = 0x01
	raw[spotify.FileIDSize-1] = 0xff

	id, err := spotify.FileIDFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, "01abababababababababababababababababff", id.Hex())
	assert.Len(t, id.Hex(), 2*spotify.FileIDSize)
	assert.Equal(t, id.Hex(), id.String())
}

func TestFileIDFromBytesInvalid(t *testing.T) {
	t.Parallel()
	for _, src := range [][]byte{
		nil,
		{},
		bytes.Repeat([]byte{0x00}, spotify.FileIDSize-1),
		bytes.Repeat([]byte{0x00}, spotify.FileIDSize+1),
	} {
		_, err := spotify.FileIDFromBytes(src)
		bytesErr := new(spotify.InvalidIDBytesError)
		require.ErrorAs(t, err, &bytesErr)
	}
}

func TestFileIDCompare(t *testing.T) {
	t.Parallel()

	mustFileID := func(b byte) spotify.FileID {
		id, err := spotify.FileIDFromBytes(bytes.Repeat([]byte{b}, spotify.FileIDSize))
		require.NoError(t, err)
		return id
	}

	low := mustFileID(0x01)
	high := mustFileID(0x02)

	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, high.Compare(low))
	assert.Equal(t, 0, low.Compare(mustFileID(0x01)))

	// Ordering is byte-lexicographic, so an earlier differing byte wins.
	raw := bytes.Repeat([]byte{0xff}, spotify.FileIDSize)
	raw[0] = 0x00
	mixed, err := spotify.FileIDFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, -1, mixed.Compare(low))
}

func TestFileIDComparable(t *testing.T) {
	t.Parallel()

	a, err := spotify.FileIDFromBytes(bytes.Repeat([]byte{0x01}, spotify.FileIDSize))
	require.NoError(t, err)
	b, err := spotify.FileIDFromBytes(bytes.Repeat([]byte{0x01}, spotify.FileIDSize))
	require.NoError(t, err)
	c, err := spotify.FileIDFromBytes(bytes.Repeat([]byte{0x02}, spotify.FileIDSize))
	require.NoError(t, err)

	assert.True(t, a == b)
	assert.False(t, a == c)
}
