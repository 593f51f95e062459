package gifed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLZWRoundTripSimple(t *testing.T) {
	indices := []byte{0, 0, 0, 1, 1, 1, 0, 1, 0, 1, 2, 2, 2, 2}
	compressed, err := CompressIndices(2, indices)
	require.NoError(t, err)

	out, err := DecompressIndices(2, compressed)
	require.NoError(t, err)
	assert.Equal(t, indices, out)
}

func TestLZWRoundTripEmpty(t *testing.T) {
	compressed, err := CompressIndices(3, nil)
	require.NoError(t, err)

	out, err := DecompressIndices(3, compressed)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLZWRoundTripRepeatingPattern(t *testing.T) {
	// Long repeating run exercises the KwKwK special case (code ==
	// nextCode, reusing the previous sequence plus its own first byte).
	indices := make([]byte, 0, 600)
	for i := 0; i < 200; i++ {
		indices = append(indices, 0, 1, 2)
	}
	compressed, err := CompressIndices(2, indices)
	require.NoError(t, err)

	out, err := DecompressIndices(2, compressed)
	require.NoError(t, err)
	assert.Equal(t, indices, out)
}

func TestLZWRoundTripForcesCodeWidthGrowthAndReset(t *testing.T) {
	// High-cardinality, low-repetition data fills the 12-bit code space,
	// triggering the CLEAR-and-reset path in both directions.
	indices := make([]byte, 0, 20000)
	for i := 0; i < 20000; i++ {
		indices = append(indices, byte((i*37+i/13)%256))
	}
	compressed, err := CompressIndices(8, indices)
	require.NoError(t, err)

	out, err := DecompressIndices(8, compressed)
	require.NoError(t, err)
	assert.Equal(t, indices, out)
}

func TestLZWInvalidMinCodeSize(t *testing.T) {
	_, err := CompressIndices(1, []byte{0})
	assert.ErrorIs(t, err, ErrInvalidCodeSize)

	_, err = DecompressIndices(13, []byte{0})
	assert.ErrorIs(t, err, ErrInvalidCodeSize)
}

func TestLZWDecompressTruncatedStream(t *testing.T) {
	_, err := DecompressIndices(2, []byte{0x04})
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestLZWTrieLookupInsert(t *testing.T) {
	trie := newLZWTrie(4)
	_, ok := trie.lookup(0, 'a')
	assert.False(t, ok)

	trie.insert(0, 'a', 10)
	code, ok := trie.lookup(0, 'a')
	require.True(t, ok)
	assert.Equal(t, 10, code)

	trie.reset(4)
	_, ok = trie.lookup(0, 'a')
	assert.False(t, ok)
}
