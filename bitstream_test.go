package gifed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitWriterPacksLSBFirst(t *testing.T) {
	w := newBitWriter()
	w.pushBits(3, 0x5) // 101
	w.pushBits(3, 0x3) // 011
	w.pushBits(2, 0x2) // 10
	got := w.finalize()
	// bit order low-to-high: 101 011 10 -> byte = 1_0_011_101 truncated to 8 bits
	// accum built LSB-first: bit0..2=101, bit3..5=011, bit6..7=10
	want := byte(0x5) | byte(0x3)<<3 | byte(0x2)<<6
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0])
}

func TestBitWriterReaderRoundTrip(t *testing.T) {
	w := newBitWriter()
	values := []uint32{1, 2, 3, 4, 5, 6, 7, 255, 511, 4095}
	widths := []uint{2, 3, 3, 4, 4, 4, 4, 8, 9, 12}
	for i, v := range values {
		w.pushBits(widths[i], v)
	}
	data := w.finalize()

	r := newBitReader(data)
	for i, want := range values {
		got, ok := r.popBits(widths[i])
		require.True(t, ok)
		assert.Equal(t, want, got, "value %d", i)
	}
}

func TestBitReaderExhausted(t *testing.T) {
	r := newBitReader([]byte{0xFF})
	_, ok := r.popBits(4)
	require.True(t, ok)
	_, ok = r.popBits(4)
	require.True(t, ok)
	_, ok = r.popBits(1)
	assert.False(t, ok)
}
