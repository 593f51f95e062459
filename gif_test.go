package gifed

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSampleGIF(t *testing.T) *Gif {
	t.Helper()
	global := Palette{{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}}
	b, err := NewBuilder(GIF89a, 2, 2, global)
	require.NoError(t, err)

	b.AddBlock(Looping{Count: 0})
	b.AddBlock(GraphicControl{Disposal: DisposalNone, Delay: 10})
	require.NoError(t, b.AddIndexedImage(IndexedImage{
		Descriptor: ImageDescriptor{Width: 2, Height: 2},
		Indices:    []byte{0, 1, 2, 3},
	}, 0))
	b.AddBlock(Comment{Text: []byte("made for a test")})
	b.AddBlock(GraphicControl{Disposal: DisposalRestoreBackground, Delay: 20})
	require.NoError(t, b.AddIndexedImage(IndexedImage{
		Descriptor: ImageDescriptor{Width: 2, Height: 2},
		Indices:    []byte{3, 2, 1, 0},
	}, 0))

	return b.Build()
}

func TestDecodeAllRoundTripsBuilderOutput(t *testing.T) {
	g := buildSampleGIF(t)
	wire := g.Bytes()

	decoded, err := DecodeAll(bytes.NewReader(wire))
	require.NoError(t, err)

	assert.Equal(t, GIF89a, decoded.Version)
	assert.True(t, decoded.GlobalPalette.Equal(g.GlobalPalette))
	assert.Equal(t, 2, Count(decoded.Blocks))
}

func TestGifImagesIteratorResolvesFrameControl(t *testing.T) {
	g := buildSampleGIF(t)

	it := g.Images()
	first, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, DisposalNone, first.DisposalMethod())
	assert.Equal(t, FrameControlDelay, first.FrameControl().Kind)
	assert.Equal(t, uint16(10), first.FrameControl().Delay)

	second, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, DisposalRestoreBackground, second.DisposalMethod())
	assert.Equal(t, uint16(20), second.FrameControl().Delay)

	// The comment between frames must show up as a preceding block of the
	// second frame, not the first.
	foundComment := false
	for _, blk := range second.Preceding() {
		if _, ok := blk.(Comment); ok {
			foundComment = true
		}
	}
	assert.True(t, foundComment)

	_, ok = it.Next()
	assert.False(t, ok)
}

func TestImageViewDecompressValidatesPalette(t *testing.T) {
	g := buildSampleGIF(t)
	it := g.Images()
	first, ok := it.Next()
	require.True(t, ok)

	indices, err := first.Decompress()
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 3}, indices)

	pal, err := first.Palette()
	require.NoError(t, err)
	assert.True(t, pal.Equal(g.GlobalPalette))
}

func TestImageViewResolvedImagePunchesOutTransparency(t *testing.T) {
	global := Palette{{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}}
	b, err := NewBuilder(GIF89a, 2, 2, global)
	require.NoError(t, err)

	b.AddBlock(GraphicControl{TransparentFlag: true, TransparentIndex: 1})
	require.NoError(t, b.AddIndexedImage(IndexedImage{
		Descriptor: ImageDescriptor{Width: 2, Height: 2},
		Indices:    []byte{0, 1, 2, 3},
	}, 0))
	g := b.Build()

	decoded, err := DecodeAll(bytes.NewReader(g.Bytes()))
	require.NoError(t, err)

	it := decoded.Images()
	view, ok := it.Next()
	require.True(t, ok)

	resolved, err := view.ResolvedImage()
	require.NoError(t, err)

	assert.Equal(t, 2, resolved.Bounds().Dx())
	assert.Equal(t, 2, resolved.Bounds().Dy())
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 0xff}, resolved.At(0, 0))
	_, _, _, alpha := resolved.At(1, 0).RGBA()
	assert.Equal(t, uint32(0), alpha)
	assert.Equal(t, color.RGBA{R: 255, G: 0, B: 0, A: 0xff}, resolved.At(0, 1))
	assert.Equal(t, color.RGBA{R: 0, G: 255, B: 0, A: 0xff}, resolved.At(1, 1))
}
