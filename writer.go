package gifed

import (
	"errors"
	"io"
)

// Writer streams a GIF to a sink one block at a time, writing the header,
// screen descriptor, and optional global palette up front. It is the only
// path with bounded memory for long animations — the Builder below
// materializes the whole file in memory first.
type Writer struct {
	w         io.Writer
	screen    ScreenDescriptor
	globalPal Palette
	done      bool
}

// NewWriter writes the 6-byte magic, the logical screen descriptor, and
// (if global is non-nil) the global color table, then returns a Writer
// ready to accept blocks.
func NewWriter(w io.Writer, version Version, screen ScreenDescriptor, global Palette) (*Writer, error) {
	if len(global) > MaxPaletteColors {
		return nil, &TooManyColorsError{Count: len(global)}
	}

	screen.HasColorTable = global != nil
	if screen.HasColorTable {
		screen.ColorTableSize = global.PackedLen()
	}

	if _, err := w.Write(version.magic()); err != nil {
		return nil, err
	}
	if _, err := w.Write(screen.Bytes()); err != nil {
		return nil, err
	}
	if screen.HasColorTable {
		if _, err := w.Write(global.Bytes()); err != nil {
			return nil, err
		}
	}

	return &Writer{w: w, screen: screen, globalPal: global}, nil
}

// WriteBlock writes any already-built Block (including a CompressedImage
// the caller compressed itself).
func (gw *Writer) WriteBlock(b Block) error {
	if gw.done {
		return errors.New("gifed: write after Done")
	}
	_, err := gw.w.Write(b.Bytes())
	return err
}

// WriteIndexedImage compresses img lazily and writes it. The initial LZW
// code size comes from img's local palette if present, else the writer's
// global palette, else codeSizeOverride; if none of those are available
// it fails with ErrInvalidCodeSize rather than guessing.
func (gw *Writer) WriteIndexedImage(img IndexedImage, codeSizeOverride int) error {
	codeSize, err := gw.resolveCodeSize(img, codeSizeOverride)
	if err != nil {
		return err
	}
	ci, err := img.Compress(codeSize)
	if err != nil {
		return err
	}
	return gw.WriteBlock(ci)
}

func (gw *Writer) resolveCodeSize(img IndexedImage, override int) (int, error) {
	switch {
	case img.LocalPalette != nil:
		return img.LocalPalette.LZWCodeSize(), nil
	case gw.globalPal != nil:
		return gw.globalPal.LZWCodeSize(), nil
	case override > 0:
		return override, nil
	default:
		return 0, ErrInvalidCodeSize
	}
}

// Done flushes the 0x3B trailer. It is idempotent; callers should still
// call it exactly once via defer to guarantee the trailer is written on
// every exit path.
func (gw *Writer) Done() error {
	if gw.done {
		return nil
	}
	gw.done = true
	_, err := gw.w.Write([]byte{introducerTrailer})
	return err
}

// Builder accumulates blocks in memory and materializes a complete Gif
// value on Build. Prefer Writer for long animations.
type Builder struct {
	version   Version
	screen    ScreenDescriptor
	globalPal Palette
	blocks    []Block
}

// NewBuilder starts a builder for a width x height canvas. Validation of
// the global palette happens here, eagerly, never mid-stream (§4.9).
func NewBuilder(version Version, width, height int, global Palette) (*Builder, error) {
	if len(global) > MaxPaletteColors {
		return nil, &TooManyColorsError{Count: len(global)}
	}
	return &Builder{
		version:   version,
		screen:    ScreenDescriptor{Width: uint16(width), Height: uint16(height)},
		globalPal: global,
	}, nil
}

// AddBlock appends any block — a GraphicControl, Comment, Application,
// Looping, or a pre-compressed CompressedImage — in file order.
func (b *Builder) AddBlock(blk Block) {
	b.blocks = append(b.blocks, blk)
}

// AddIndexedImage compresses img and appends it, resolving the initial
// LZW code size the same way Writer.WriteIndexedImage does.
func (b *Builder) AddIndexedImage(img IndexedImage, codeSizeOverride int) error {
	if len(img.LocalPalette) > MaxPaletteColors {
		return &TooManyColorsError{Count: len(img.LocalPalette)}
	}
	var codeSize int
	switch {
	case img.LocalPalette != nil:
		codeSize = img.LocalPalette.LZWCodeSize()
	case b.globalPal != nil:
		codeSize = b.globalPal.LZWCodeSize()
	case codeSizeOverride > 0:
		codeSize = codeSizeOverride
	default:
		return ErrInvalidCodeSize
	}
	ci, err := img.Compress(codeSize)
	if err != nil {
		return err
	}
	b.AddBlock(ci)
	return nil
}

// Build materializes the accumulated blocks into a Gif value.
func (b *Builder) Build() *Gif {
	return &Gif{
		Version:       b.version,
		Screen:        b.screen,
		GlobalPalette: b.globalPal,
		Blocks:        append([]Block(nil), b.blocks...),
	}
}

// Bytes is a convenience for Build().Bytes().
func (b *Builder) Bytes() []byte {
	return b.Build().Bytes()
}

// NewAnimation is a ported convenience wrapper (grounded on
// original_source/gifed/src/videogif.rs's VideoGif) for the common case
// of a uniform-delay, single-global-palette animation: every frame gets
// the same disposal and delay, and a NETSCAPE looping extension is
// emitted up front when there is more than one frame.
func NewAnimation(width, height int, global Palette, frames []IndexedImage, delay uint16, loopCount uint16) (*Gif, error) {
	b, err := NewBuilder(GIF89a, width, height, global)
	if err != nil {
		return nil, err
	}
	if len(frames) > 1 {
		b.AddBlock(Looping{Count: loopCount})
	}
	for _, f := range frames {
		b.AddBlock(GraphicControl{Disposal: DisposalNone, Delay: delay})
		if err := b.AddIndexedImage(f, 0); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}
