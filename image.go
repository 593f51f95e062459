package gifed

import (
	"fmt"
	"image"
	"image/color"
)

// FrameControlKind classifies how a frame's graphic control extension
// wants the player to advance: waiting for user input, waiting out a
// delay, whichever comes first, or neither.
type FrameControlKind int

const (
	FrameControlNone FrameControlKind = iota
	FrameControlDelay
	FrameControlInput
	FrameControlInputOrDelay
)

// FrameControl is the resolved {Delay(d) | Input | InputOrDelay(d) | none}
// value for a frame, derived from its preceding graphic control
// extension's delay and user-input flag.
type FrameControl struct {
	Kind  FrameControlKind
	Delay uint16 // centiseconds; meaningful for Delay and InputOrDelay
}

// ImageView is a lazily-resolved projection of one CompressedImage block:
// it holds a copy of the CompressedImage value, the global palette, and
// its own slice of the blocks since the previous yielded image. Those
// block values still share their byte slices with the Gif's blocks, so
// mutating a block's data in place is visible through the view.
type ImageView struct {
	image     CompressedImage
	globalPal Palette
	preceding []Block
}

// Descriptor returns the frame's image descriptor.
func (v ImageView) Descriptor() ImageDescriptor { return v.image.Descriptor }

// Compressed returns the underlying wire-level CompressedImage block.
func (v ImageView) Compressed() CompressedImage { return v.image }

// Preceding returns the blocks between this image and the previous
// yielded image (or the start of the stream), in original file order.
func (v ImageView) Preceding() []Block {
	return v.preceding
}

// Palette resolves the frame's effective palette: its local palette if it
// has one, else the global palette. Returns an error if neither exists —
// per §3, a frame lacking both a local and the screen's global color
// table is malformed.
func (v ImageView) Palette() (Palette, error) {
	if v.image.LocalPalette != nil {
		return v.image.LocalPalette, nil
	}
	if v.globalPal != nil {
		return v.globalPal, nil
	}
	return nil, fmt.Errorf("gifed: %w: frame has neither a local nor a global color table", ErrMalformed)
}

// graphicControl returns the most recent Graphic Control Extension among
// the preceding blocks (the last one wins if several appear), or false if
// none preceded this image.
func (v ImageView) graphicControl() (GraphicControl, bool) {
	for i := len(v.preceding) - 1; i >= 0; i-- {
		if gce, ok := v.preceding[i].(GraphicControl); ok {
			return gce, true
		}
	}
	return GraphicControl{}, false
}

// TransparentIndex returns the transparent palette index carried by the
// frame's graphic control extension, if one precedes it and its
// transparent flag is set.
func (v ImageView) TransparentIndex() (index byte, ok bool) {
	gce, found := v.graphicControl()
	if !found || !gce.TransparentFlag {
		return 0, false
	}
	return gce.TransparentIndex, true
}

// FrameControl derives the {Delay|Input|InputOrDelay|none} classification
// for this frame from its preceding graphic control extension.
func (v ImageView) FrameControl() FrameControl {
	gce, found := v.graphicControl()
	if !found {
		return FrameControl{Kind: FrameControlNone}
	}
	switch {
	case gce.UserInput && gce.Delay > 0:
		return FrameControl{Kind: FrameControlInputOrDelay, Delay: gce.Delay}
	case gce.UserInput:
		return FrameControl{Kind: FrameControlInput}
	case gce.Delay > 0:
		return FrameControl{Kind: FrameControlDelay, Delay: gce.Delay}
	default:
		return FrameControl{Kind: FrameControlNone}
	}
}

// DisposalMethod returns the frame's parsed disposal method, falling
// back to DisposalNone when no graphic control extension precedes it.
func (v ImageView) DisposalMethod() Disposal {
	gce, found := v.graphicControl()
	if !found {
		return DisposalNone
	}
	return gce.Disposal
}

// Decompress LZW-decodes the frame's pixel data into a flat index buffer
// of length Width*Height, without retaining any intermediate buffers
// beyond the call.
func (v ImageView) Decompress() ([]byte, error) {
	indices, err := v.image.Decompress()
	if err != nil {
		return nil, err
	}
	pal, err := v.Palette()
	if err != nil {
		return nil, err
	}
	effective := pal.EffectiveLen()
	for _, idx := range indices {
		if int(idx) >= effective {
			return nil, fmt.Errorf("gifed: %w: index %d >= palette length %d", ErrMalformed, idx, effective)
		}
	}
	return indices, nil
}

// ResolvedImage resolves the frame to its third projection: a full
// image.Paletted over the frame's effective palette, transparency already
// punched out as alpha 0. Grounded on original_source/gifed's
// RgbaImage::from_indicies (colorimage.rs), which builds the same
// indices+palette+transparent-index -> RGBA mapping; here it's folded into
// the image-view layer rather than kept as a separate on-disk type, since
// image.Paletted already fills that role in Go.
func (v ImageView) ResolvedImage() (*image.Paletted, error) {
	pal, err := v.Palette()
	if err != nil {
		return nil, err
	}
	indices, err := v.Decompress()
	if err != nil {
		return nil, err
	}

	colorPal := make(color.Palette, len(pal))
	for i, c := range pal {
		colorPal[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}
	if idx, ok := v.TransparentIndex(); ok && int(idx) < len(colorPal) {
		colorPal[idx] = color.Alpha{0}
	}

	desc := v.Descriptor()
	bounds := image.Rect(0, 0, int(desc.Width), int(desc.Height))
	out := image.NewPaletted(bounds, colorPal)
	copy(out.Pix, indices)
	return out, nil
}

// ImageIterator walks a block sequence yielding one ImageView per
// CompressedImage block, in file order, with no reordering (§5).
type ImageIterator struct {
	blocks    []Block
	globalPal Palette
	pos       int
	pending   []Block
}

func newImageIterator(blocks []Block, global Palette) *ImageIterator {
	return &ImageIterator{blocks: blocks, globalPal: global}
}

// Next returns the next frame view, or ok=false once every block has
// been consumed.
func (it *ImageIterator) Next() (view ImageView, ok bool) {
	for it.pos < len(it.blocks) {
		b := it.blocks[it.pos]
		it.pos++
		if ci, isImage := b.(CompressedImage); isImage {
			view = ImageView{image: ci, globalPal: it.globalPal, preceding: it.pending}
			it.pending = nil
			return view, true
		}
		it.pending = append(it.pending, b)
	}
	return ImageView{}, false
}

// Count returns the total number of CompressedImage blocks in blocks,
// without consuming an iterator.
func Count(blocks []Block) int {
	n := 0
	for _, b := range blocks {
		if b.Kind() == KindCompressedImage {
			n++
		}
	}
	return n
}
