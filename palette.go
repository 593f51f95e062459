package gifed

import "fmt"

// Palette is an ordered sequence of colors, logical length 1..256.
type Palette []Color

// MaxPaletteColors is the largest palette GIF's packed fields can address.
const MaxPaletteColors = 256

// ceilLog2 returns ceil(log2(n)) for n >= 1.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	bits := 0
	v := n - 1
	for v > 0 {
		bits++
		v >>= 1
	}
	return bits
}

// PackedLen returns the 3-bit table-size field stored in descriptor packed
// bytes: ceil(log2(len)) - 1, clamped to 0 for len <= 2.
func (p Palette) PackedLen() int {
	n := ceilLog2(len(p)) - 1
	if n < 0 {
		return 0
	}
	return n
}

// EffectiveLen is the decoder-perceived table length implied by
// PackedLen: 1 << (PackedLen + 1). It may exceed len(p), in which case
// on-wire serialization is zero-padded out to this length.
func (p Palette) EffectiveLen() int {
	return 1 << (p.PackedLen() + 1)
}

// LZWCodeSize is the initial LZW minimum code size for a table of this
// length: max(2, ceil(log2(len))). Per the GIF spec this is never below
// 2, even for 1- or 2-color palettes (the historical from_color bug this
// spec refuses to reproduce used ClearCode=0 for 1-color palettes).
func (p Palette) LZWCodeSize() int {
	size := ceilLog2(len(p))
	if size < 2 {
		size = 2
	}
	return size
}

// Bytes serializes the palette to its padded on-wire form: EffectiveLen()
// colors, 3 bytes each, zero-padded past len(p).
func (p Palette) Bytes() []byte {
	n := p.EffectiveLen()
	out := make([]byte, n*3)
	for i, c := range p {
		if i >= n {
			break
		}
		out[i*3] = c.R
		out[i*3+1] = c.G
		out[i*3+2] = c.B
	}
	return out
}

// ParsePalette reads a palette of exactly n colors (n*3 bytes) from data.
func ParsePalette(data []byte, n int) (Palette, error) {
	if len(data) < n*3 {
		return nil, fmt.Errorf("gifed: %w: palette needs %d bytes, have %d", ErrUnexpectedEOF, n*3, len(data))
	}
	p := make(Palette, n)
	for i := 0; i < n; i++ {
		p[i] = Color{data[i*3], data[i*3+1], data[i*3+2]}
	}
	return p, nil
}

// Index returns the index of c in p, or -1 if absent.
func (p Palette) Index(c Color) int {
	for i, pc := range p {
		if pc == c {
			return i
		}
	}
	return -1
}

// Equal reports whether two palettes have identical logical contents.
func (p Palette) Equal(o Palette) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}
