package gifed

// BlockKind tags the closed set of block variants this package models.
// It is a closed sum type over {CompressedImage, GraphicControl, Comment,
// Application, Looping} plus a future-proof Unknown variant that
// preserves round-tripping of extension labels this package does not
// otherwise understand.
type BlockKind int

const (
	KindCompressedImage BlockKind = iota
	KindGraphicControl
	KindComment
	KindApplication
	KindLooping
	KindUnknownExtension
)

func (k BlockKind) String() string {
	switch k {
	case KindCompressedImage:
		return "CompressedImage"
	case KindGraphicControl:
		return "GraphicControl"
	case KindComment:
		return "Comment"
	case KindApplication:
		return "Application"
	case KindLooping:
		return "Looping"
	case KindUnknownExtension:
		return "UnknownExtension"
	default:
		return "Invalid"
	}
}

// Block is the common interface satisfied by every block variant this
// package can serialize. Decoding never returns anything but these
// variants (or a top-level error for a malformed stream) — ordering
// within a GIF is preserved exactly as read, never reshuffled.
type Block interface {
	Kind() BlockKind
	// Bytes returns the block's full on-wire encoding, including its
	// leading introducer/label bytes and any trailing terminator.
	Bytes() []byte
}

const (
	introducerImage     = 0x2C
	introducerExtension = 0x21
	introducerTrailer   = 0x3B

	labelGraphicControl = 0xF9
	labelComment        = 0xFE
	labelApplication    = 0xFF
	labelPlainText      = 0x01
)

// chunkSubBlocks splits data into <=255-byte length-prefixed chunks,
// terminated by a single zero-length chunk. An empty payload serializes
// to just the terminator byte.
func chunkSubBlocks(data []byte) []byte {
	out := make([]byte, 0, len(data)+len(data)/255+2)
	for len(data) >= 255 {
		out = append(out, 255)
		out = append(out, data[:255]...)
		data = data[255:]
	}
	out = append(out, byte(len(data)))
	out = append(out, data...)
	if len(data) > 0 {
		out = append(out, 0)
	}
	return out
}

// subBlockReader reads sub-blocks one at a time off a shared cursor.
type subBlockReader struct {
	data []byte
	pos  int
}

// readSubBlocks concatenates an entire sub-block chain starting at r.pos,
// leaving r.pos just past the terminating zero-length chunk.
func (r *subBlockReader) readSubBlocks() ([]byte, error) {
	var out []byte
	for {
		if r.pos >= len(r.data) {
			return nil, ErrUnexpectedEOF
		}
		n := int(r.data[r.pos])
		r.pos++
		if n == 0 {
			return out, nil
		}
		if r.pos+n > len(r.data) {
			return nil, ErrUnexpectedEOF
		}
		out = append(out, r.data[r.pos:r.pos+n]...)
		r.pos += n
	}
}

// CompressedImage is an image frame as it appears on the wire: an image
// descriptor, an optional local palette, and still-LZW-compressed pixel
// data (already de-chunked from its sub-block chain, but not yet run
// through the LZW decoder).
type CompressedImage struct {
	Descriptor   ImageDescriptor
	LocalPalette Palette // nil if the frame has no local color table
	MinCodeSize  byte
	Data         []byte // raw LZW stream, sub-blocks already concatenated
}

func (c CompressedImage) Kind() BlockKind { return KindCompressedImage }

func (c CompressedImage) Bytes() []byte {
	desc := c.Descriptor
	desc.HasColorTable = c.LocalPalette != nil
	if desc.HasColorTable {
		desc.ColorTableSize = c.LocalPalette.PackedLen()
	}

	out := []byte{introducerImage}
	out = append(out, desc.Bytes()...)
	if desc.HasColorTable {
		out = append(out, c.LocalPalette.Bytes()...)
	}
	out = append(out, c.MinCodeSize)
	out = append(out, chunkSubBlocks(c.Data)...)
	return out
}

// Decompress LZW-decodes the frame's pixel data into a flat index buffer
// of length Descriptor.Width * Descriptor.Height.
func (c CompressedImage) Decompress() ([]byte, error) {
	indices, err := DecompressIndices(int(c.MinCodeSize), c.Data)
	if err != nil {
		return nil, err
	}
	want := int(c.Descriptor.Width) * int(c.Descriptor.Height)
	if len(indices) != want {
		return nil, &IndexSizeMismatchError{Expected: want, Got: len(indices)}
	}
	return indices, nil
}

// IndexedImage is an uncompressed frame: an image descriptor, an optional
// local palette, and a flat index buffer. The writer compresses it lazily
// when the block is flushed (§4.8).
type IndexedImage struct {
	Descriptor   ImageDescriptor
	LocalPalette Palette
	Indices      []byte
}

// Compress LZW-encodes the index buffer using codeSize as the initial
// minimum code size, producing the wire-ready CompressedImage.
func (img IndexedImage) Compress(codeSize int) (CompressedImage, error) {
	want := int(img.Descriptor.Width) * int(img.Descriptor.Height)
	if len(img.Indices) != want {
		return CompressedImage{}, &IndexSizeMismatchError{Expected: want, Got: len(img.Indices)}
	}
	data, err := CompressIndices(codeSize, img.Indices)
	if err != nil {
		return CompressedImage{}, err
	}
	return CompressedImage{
		Descriptor:   img.Descriptor,
		LocalPalette: img.LocalPalette,
		MinCodeSize:  byte(codeSize),
		Data:         data,
	}, nil
}
