package indexer

import (
	"testing"

	"github.com/ncgif/gifed"
	"github.com/ncgif/gifed/quantize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkerboard(w, h int) []byte {
	pixels := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 3
			if (x+y)%2 == 0 {
				pixels[i], pixels[i+1], pixels[i+2] = 255, 255, 255
			} else {
				pixels[i], pixels[i+1], pixels[i+2] = 0, 0, 0
			}
		}
	}
	return pixels
}

func TestIndexNearestProducesCorrectlySizedImage(t *testing.T) {
	nq := quantize.NewNeuQuant(10)
	img := Index(8, 8, checkerboard(8, 8), nq, Options{MaxColors: 4})

	assert.Equal(t, uint16(8), img.Descriptor.Width)
	assert.Equal(t, uint16(8), img.Descriptor.Height)
	require.Len(t, img.Indices, 64)
	require.LessOrEqual(t, len(img.LocalPalette), 4)

	for _, idx := range img.Indices {
		assert.Less(t, int(idx), len(img.LocalPalette))
	}
}

func TestIndexWithDitheringProducesValidIndices(t *testing.T) {
	nq := quantize.NewNeuQuant(10)
	img := Index(16, 16, checkerboard(16, 16), nq, Options{
		MaxColors:  4,
		Kernel:     FloydSteinberg,
		Serpentine: true,
	})

	require.Len(t, img.Indices, 256)
	for _, idx := range img.Indices {
		assert.Less(t, int(idx), len(img.LocalPalette))
	}

	// The resulting image should still be round-trippable through the
	// core package's compress/decompress path.
	compressed, err := img.Compress(img.LocalPalette.LZWCodeSize())
	require.NoError(t, err)
	back, err := compressed.Decompress()
	require.NoError(t, err)
	assert.Equal(t, img.Indices, back)
}

func TestIndexDefaultsMaxColorsWhenUnset(t *testing.T) {
	nq := quantize.NewNeuQuant(10)
	img := Index(4, 4, checkerboard(4, 4), nq, Options{})
	assert.LessOrEqual(t, len(img.LocalPalette), gifed.MaxPaletteColors)
}
