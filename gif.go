package gifed

import (
	"io"
)

// Gif is the fully decoded (or to-be-encoded) value: a version tag, the
// logical screen descriptor, an optional global palette, and the ordered
// sequence of blocks between the screen descriptor and the trailer.
// Everything here is a plain value — nothing is shared, and encoding
// consumes blocks by value (§3 lifecycle).
type Gif struct {
	Version       Version
	Screen        ScreenDescriptor
	GlobalPalette Palette
	Blocks        []Block
}

// DecodeAll reads every block from r into memory, building a complete Gif
// value. For long animations where bounded memory matters, use Reader
// directly and process blocks as they arrive instead.
func DecodeAll(r io.Reader) (*Gif, error) {
	rd, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	g := &Gif{Version: rd.Version(), Screen: rd.Screen(), GlobalPalette: rd.GlobalPalette()}
	for {
		block, _, err := rd.Next()
		if err == io.EOF {
			return g, nil
		}
		if err != nil {
			return nil, err
		}
		g.Blocks = append(g.Blocks, block)
	}
}

// Bytes serializes the complete Gif to its on-wire byte-for-byte
// representation: magic, screen descriptor, optional global palette,
// blocks in order, and the 0x3B trailer.
func (g *Gif) Bytes() []byte {
	out := make([]byte, 0, 1024)
	out = append(out, g.Version.magic()...)

	screen := g.Screen
	screen.HasColorTable = g.GlobalPalette != nil
	if screen.HasColorTable {
		screen.ColorTableSize = g.GlobalPalette.PackedLen()
	}
	out = append(out, screen.Bytes()...)

	if screen.HasColorTable {
		out = append(out, g.GlobalPalette.Bytes()...)
	}

	for _, b := range g.Blocks {
		out = append(out, b.Bytes()...)
	}

	out = append(out, introducerTrailer)
	return out
}

// Images returns an iterator over every CompressedImage block, paired
// with the blocks that preceded it since the last yielded image (used to
// locate the effective graphic control extension).
func (g *Gif) Images() *ImageIterator {
	return newImageIterator(g.Blocks, g.GlobalPalette)
}
