// Package indexer bridges a full-color RGB pixel buffer and a
// quantize.Quantizer into a gifed.IndexedImage: it builds a palette with
// the Quantizer, then maps every pixel to its nearest palette entry, optionally
// diffusing the quantization error to neighboring pixels first.
package indexer

import "github.com/ncgif/gifed"

// Kernel is an error-diffusion matrix: each row is {weight, dx, dy}
// describing how much of the current pixel's quantization error to push
// onto the neighbor at (dx, dy).
type Kernel [][3]float64

var (
	// FalseFloydSteinberg is a cheaper three-neighbor approximation of
	// FloydSteinberg.
	FalseFloydSteinberg = Kernel{
		{3.0 / 8.0, 1, 0},
		{3.0 / 8.0, 0, 1},
		{2.0 / 8.0, 1, 1},
	}

	// FloydSteinberg is the classic four-neighbor kernel.
	FloydSteinberg = Kernel{
		{7.0 / 16.0, 1, 0},
		{3.0 / 16.0, -1, 1},
		{5.0 / 16.0, 0, 1},
		{1.0 / 16.0, 1, 1},
	}

	// Stucki spreads error over a wider 12-neighbor window, trading speed
	// for smoother gradients.
	Stucki = Kernel{
		{8.0 / 42.0, 1, 0},
		{4.0 / 42.0, 2, 0},
		{2.0 / 42.0, -2, 1},
		{4.0 / 42.0, -1, 1},
		{8.0 / 42.0, 0, 1},
		{4.0 / 42.0, 1, 1},
		{2.0 / 42.0, 2, 1},
		{1.0 / 42.0, -2, 2},
		{2.0 / 42.0, -1, 2},
		{4.0 / 42.0, 0, 2},
		{2.0 / 42.0, 1, 2},
		{1.0 / 42.0, 2, 2},
	}

	// Atkinson only diffuses 3/4 of the error, leaving images with more
	// contrast at the cost of occasional missed detail.
	Atkinson = Kernel{
		{1.0 / 8.0, 1, 0},
		{1.0 / 8.0, 2, 0},
		{1.0 / 8.0, -1, 1},
		{1.0 / 8.0, 0, 1},
		{1.0 / 8.0, 1, 1},
		{1.0 / 8.0, 0, 2},
	}
)

// Quantizer is the subset of quantize.Quantizer this package depends on.
// Declared locally so indexer does not import the quantize package just
// to name its interface.
type Quantizer interface {
	Quantize(pixels []byte, maxColors int) gifed.Palette
	Index(r, g, b byte) int
}

// Options controls how Index converts a pixel buffer.
type Options struct {
	// MaxColors bounds the palette Quantize is asked to build. Zero means
	// gifed.MaxPaletteColors.
	MaxColors int
	// Kernel, if non-nil, enables error-diffusion dithering. Nil means a
	// plain nearest-color mapping with no diffusion.
	Kernel Kernel
	// Serpentine reverses scan direction on alternating rows, which
	// reduces the directional streaking dithering can otherwise leave.
	Serpentine bool
}

// Index quantizes pixels (a flat R,G,B,... stream, width*height*3 bytes)
// into an IndexedImage of the given dimensions using q, applying opts.
func Index(width, height int, pixels []byte, q Quantizer, opts Options) gifed.IndexedImage {
	maxColors := opts.MaxColors
	if maxColors <= 0 {
		maxColors = gifed.MaxPaletteColors
	}
	palette := q.Quantize(pixels, maxColors)

	var indices []byte
	if opts.Kernel == nil {
		indices = indexNearest(pixels, q)
	} else {
		indices = ditherInto(width, height, pixels, q, palette, opts.Kernel, opts.Serpentine)
	}

	return gifed.IndexedImage{
		Descriptor: gifed.ImageDescriptor{
			Width:  uint16(width),
			Height: uint16(height),
		},
		LocalPalette: palette,
		Indices:      indices,
	}
}

func indexNearest(pixels []byte, q Quantizer) []byte {
	n := len(pixels) / 3
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		p := i * 3
		out[i] = byte(q.Index(pixels[p], pixels[p+1], pixels[p+2]))
	}
	return out
}

// ditherInto walks pixels in scanline order (optionally serpentine),
// mapping each pixel to its nearest palette entry and diffusing the
// quantization error (original minus the chosen palette color) to
// not-yet-visited neighbors per kernel. Grounded on the scan/diffuse loop
// structure of a Floyd-Steinberg GIF encoder, generalized to work against
// any Quantizer rather than a fixed color table.
func ditherInto(width, height int, pixels []byte, q Quantizer, palette gifed.Palette, kernel Kernel, serpentine bool) []byte {
	work := append([]byte(nil), pixels...)
	out := make([]byte, width*height)
	direction := 1

	for y := 0; y < height; y++ {
		if serpentine {
			direction = -direction
		}

		var x, xEnd int
		if direction == 1 {
			x, xEnd = 0, width
		} else {
			x, xEnd = width-1, -1
		}

		for x != xEnd {
			pos := y*width + x
			p := pos * 3
			r1, g1, b1 := int(work[p]), int(work[p+1]), int(work[p+2])

			idx := q.Index(clamp(r1), clamp(g1), clamp(b1))
			out[pos] = byte(idx)

			chosen := palette[idx]
			er := r1 - int(chosen.R)
			eg := g1 - int(chosen.G)
			eb := b1 - int(chosen.B)

			diffuseError(work, width, height, x, y, er, eg, eb, kernel, direction)

			x += direction
		}
	}

	return out
}

func diffuseError(work []byte, width, height, x, y, er, eg, eb int, kernel Kernel, direction int) {
	var i, iEnd int
	if direction == 1 {
		i, iEnd = 0, len(kernel)
	} else {
		i, iEnd = len(kernel)-1, -1
	}

	for i != iEnd {
		dx := int(kernel[i][1])
		if direction == -1 {
			dx = -dx
		}
		dy := int(kernel[i][2])
		nx, ny := x+dx, y+dy
		if nx >= 0 && nx < width && ny >= 0 && ny < height {
			w := kernel[i][0]
			nIdx := (ny*width + nx) * 3
			work[nIdx] = clamp(int(work[nIdx]) + int(float64(er)*w))
			work[nIdx+1] = clamp(int(work[nIdx+1]) + int(float64(eg)*w))
			work[nIdx+2] = clamp(int(work[nIdx+2]) + int(float64(eb)*w))
		}
		if direction == 1 {
			i++
		} else {
			i--
		}
	}
}

func clamp(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

