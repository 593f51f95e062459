package quantize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientPixels(w, h int) []byte {
	pixels := make([]byte, w*h*3)
	for i := 0; i < w*h; i++ {
		pixels[i*3] = byte((i * 7) % 256)
		pixels[i*3+1] = byte((i * 13) % 256)
		pixels[i*3+2] = byte((i * 29) % 256)
	}
	return pixels
}

func TestNeuQuantBuildsRequestedPaletteSize(t *testing.T) {
	nq := NewNeuQuant(10)
	pal := nq.Quantize(gradientPixels(32, 32), 16)
	require.Len(t, pal, 16)
}

func TestNeuQuantClampsMaxColors(t *testing.T) {
	nq := NewNeuQuant(10)
	pal := nq.Quantize(gradientPixels(16, 16), 1000)
	assert.Len(t, pal, 256)

	pal = nq.Quantize(gradientPixels(16, 16), 0)
	assert.Len(t, pal, 1)
}

func TestNeuQuantIndexReturnsValidEntry(t *testing.T) {
	nq := NewNeuQuant(10)
	pal := nq.Quantize(gradientPixels(24, 24), 32)

	idx := nq.Index(255, 0, 0)
	require.GreaterOrEqual(t, idx, 0)
	require.Less(t, idx, len(pal))
}

func TestNeuQuantUniformImageProducesUsablePalette(t *testing.T) {
	pixels := make([]byte, 30*30*3)
	for i := range pixels {
		pixels[i] = 128
	}
	nq := NewNeuQuant(1)
	pal := nq.Quantize(pixels, 8)
	require.Len(t, pal, 8)

	idx := nq.Index(128, 128, 128)
	require.GreaterOrEqual(t, idx, 0)
	require.Less(t, idx, len(pal))
}
