package gifed

import (
	"encoding/binary"
	"fmt"
	"io"
)

// BlockRange is the [Start, End) byte offset a block occupied in the
// source stream, including its introducer and terminator bytes. Used by
// the probe CLI to print a byte-accurate block map.
type BlockRange struct {
	Start, End int
}

// Reader performs streaming block-level decode on top of an in-memory
// byte slice. Per the resource model (§5), the in-memory variant consumes
// its entire input up front and then operates on a byte slice with an
// explicit cursor — there is no partial/incremental read from an
// underlying io.Reader once NewReader returns.
type Reader struct {
	data         []byte
	pos          int
	version      Version
	screen       ScreenDescriptor
	globalPal    Palette
	sawTrailer   bool
}

// NewReader reads r fully, then parses the 6-byte magic, the 7-byte
// logical screen descriptor, and (if present) the global color table.
// Block-level iteration happens afterward via Next.
func NewReader(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewReaderBytes(data)
}

// NewReaderBytes is NewReader for callers that already hold the whole
// file in memory.
func NewReaderBytes(data []byte) (*Reader, error) {
	version, err := parseVersion(data)
	if err != nil {
		return nil, err
	}
	pos := 6

	if len(data) < pos+7 {
		return nil, fmt.Errorf("gifed: %w: truncated screen descriptor", ErrUnexpectedEOF)
	}
	screen, err := ParseScreenDescriptor(data[pos : pos+7])
	if err != nil {
		return nil, err
	}
	pos += 7

	var globalPal Palette
	if screen.HasColorTable {
		n := screen.ColorTableLen()
		globalPal, err = ParsePalette(data[pos:], n)
		if err != nil {
			return nil, err
		}
		pos += n * 3
	}

	return &Reader{data: data, pos: pos, version: version, screen: screen, globalPal: globalPal}, nil
}

// Version reports the decoded GIF87a/GIF89a version.
func (r *Reader) Version() Version { return r.version }

// Screen returns the logical screen descriptor.
func (r *Reader) Screen() ScreenDescriptor { return r.screen }

// GlobalPalette returns the global color table, or nil if the screen
// descriptor reported none.
func (r *Reader) GlobalPalette() Palette { return r.globalPal }

// SawTrailer reports whether Next has already returned io.EOF after
// reading the 0x3B trailer byte.
func (r *Reader) SawTrailer() bool { return r.sawTrailer }

// TrailingBytes returns any bytes left unconsumed after the 0x3B trailer,
// tolerated per §7 (unused trailing bytes are not an error).
func (r *Reader) TrailingBytes() []byte {
	if !r.sawTrailer {
		return nil
	}
	return r.data[r.pos:]
}

// Next reads the next top-level block. It returns io.EOF (with
// SawTrailer becoming true) once the 0x3B trailer is consumed. Plain Text
// Extensions are tolerated and skipped — they are never yielded as a
// Block (§1 non-goals) — so a single call to Next may internally consume
// more than one wire block before returning.
func (r *Reader) Next() (Block, BlockRange, error) {
	for {
		if r.pos >= len(r.data) {
			return nil, BlockRange{}, fmt.Errorf("gifed: %w: missing trailer", ErrUnexpectedEOF)
		}
		start := r.pos
		introducer := r.data[r.pos]
		r.pos++

		switch introducer {
		case introducerTrailer:
			r.sawTrailer = true
			return nil, BlockRange{}, io.EOF

		case introducerImage:
			block, err := r.readCompressedImage()
			if err != nil {
				return nil, BlockRange{}, err
			}
			return block, BlockRange{start, r.pos}, nil

		case introducerExtension:
			if r.pos >= len(r.data) {
				return nil, BlockRange{}, fmt.Errorf("gifed: %w: truncated extension", ErrUnexpectedEOF)
			}
			label := r.data[r.pos]
			r.pos++

			switch label {
			case labelGraphicControl:
				block, err := r.readGraphicControl()
				if err != nil {
					return nil, BlockRange{}, err
				}
				return block, BlockRange{start, r.pos}, nil

			case labelComment:
				sr := &subBlockReader{data: r.data, pos: r.pos}
				text, err := sr.readSubBlocks()
				if err != nil {
					return nil, BlockRange{}, err
				}
				r.pos = sr.pos
				return Comment{Text: text}, BlockRange{start, r.pos}, nil

			case labelApplication:
				block, err := r.readApplication()
				if err != nil {
					return nil, BlockRange{}, err
				}
				return block, BlockRange{start, r.pos}, nil

			case labelPlainText:
				if err := r.skipPlainText(); err != nil {
					return nil, BlockRange{}, err
				}
				continue // tolerated, never yielded

			default:
				sr := &subBlockReader{data: r.data, pos: r.pos}
				raw, err := sr.readSubBlocks()
				if err != nil {
					return nil, BlockRange{}, err
				}
				r.pos = sr.pos
				return UnknownExtension{Label: label, Data: raw}, BlockRange{start, r.pos}, nil
			}

		default:
			return nil, BlockRange{}, &UnknownBlockError{Byte: introducer}
		}
	}
}

func (r *Reader) readCompressedImage() (CompressedImage, error) {
	if len(r.data) < r.pos+9 {
		return CompressedImage{}, fmt.Errorf("gifed: %w: truncated image descriptor", ErrUnexpectedEOF)
	}
	desc, err := ParseImageDescriptor(r.data[r.pos : r.pos+9])
	if err != nil {
		return CompressedImage{}, err
	}
	r.pos += 9

	var local Palette
	if desc.HasColorTable {
		n := desc.ColorTableLen()
		local, err = ParsePalette(r.data[r.pos:], n)
		if err != nil {
			return CompressedImage{}, err
		}
		r.pos += n * 3
	}

	if r.pos >= len(r.data) {
		return CompressedImage{}, fmt.Errorf("gifed: %w: missing LZW code size", ErrUnexpectedEOF)
	}
	codeSize := r.data[r.pos]
	r.pos++

	sr := &subBlockReader{data: r.data, pos: r.pos}
	lzwData, err := sr.readSubBlocks()
	if err != nil {
		return CompressedImage{}, err
	}
	r.pos = sr.pos

	return CompressedImage{Descriptor: desc, LocalPalette: local, MinCodeSize: codeSize, Data: lzwData}, nil
}

func (r *Reader) readGraphicControl() (GraphicControl, error) {
	if r.pos >= len(r.data) {
		return GraphicControl{}, fmt.Errorf("gifed: %w: truncated graphic control", ErrUnexpectedEOF)
	}
	size := int(r.data[r.pos])
	r.pos++
	if size != 4 {
		return GraphicControl{}, fmt.Errorf("gifed: %w: graphic control block size %d, want 4", ErrMalformed, size)
	}
	if len(r.data) < r.pos+size+1 {
		return GraphicControl{}, fmt.Errorf("gifed: %w: truncated graphic control data", ErrUnexpectedEOF)
	}
	gce, err := parseGraphicControl(r.data[r.pos : r.pos+size])
	if err != nil {
		return GraphicControl{}, err
	}
	r.pos += size
	if r.data[r.pos] != 0 {
		return GraphicControl{}, fmt.Errorf("gifed: %w: missing graphic control terminator", ErrMalformed)
	}
	r.pos++
	return gce, nil
}

func (r *Reader) readApplication() (Block, error) {
	if r.pos >= len(r.data) {
		return nil, fmt.Errorf("gifed: %w: truncated application extension", ErrUnexpectedEOF)
	}
	size := int(r.data[r.pos])
	r.pos++
	if size != 11 {
		return nil, fmt.Errorf("gifed: %w: application block size %d, want 11", ErrMalformed, size)
	}
	if len(r.data) < r.pos+11 {
		return nil, fmt.Errorf("gifed: %w: truncated application identifier", ErrUnexpectedEOF)
	}
	id := string(r.data[r.pos : r.pos+8])
	auth := string(r.data[r.pos+8 : r.pos+11])
	r.pos += 11

	sr := &subBlockReader{data: r.data, pos: r.pos}
	data, err := sr.readSubBlocks()
	if err != nil {
		return nil, err
	}
	r.pos = sr.pos

	if id == "NETSCAPE" && auth == "2.0" && len(data) >= 3 && data[0] == 0x01 {
		return Looping{Count: binary.LittleEndian.Uint16(data[1:3])}, nil
	}
	return Application{Identifier: id, AuthCode: auth, Data: data}, nil
}

// skipPlainText consumes a Plain Text Extension without returning it: a
// 1-byte length (conventionally 12), that many bytes, then a sub-block
// chain. Interlaced rendering and plain text are the two tolerated,
// never-emitted non-goals this decoder accepts silently.
func (r *Reader) skipPlainText() error {
	if r.pos >= len(r.data) {
		return fmt.Errorf("gifed: %w: truncated plain text extension", ErrUnexpectedEOF)
	}
	size := int(r.data[r.pos])
	r.pos++
	if len(r.data) < r.pos+size {
		return fmt.Errorf("gifed: %w: truncated plain text data", ErrUnexpectedEOF)
	}
	r.pos += size
	sr := &subBlockReader{data: r.data, pos: r.pos}
	if _, err := sr.readSubBlocks(); err != nil {
		return err
	}
	r.pos = sr.pos
	return nil
}
