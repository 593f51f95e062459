package gifed

import (
	"encoding/binary"
	"fmt"
)

// ScreenDescriptor is the 7-byte Logical Screen Descriptor that follows
// the GIF version header.
type ScreenDescriptor struct {
	Width, Height        uint16
	ColorResolution      int // 0..7
	Sort                 bool
	HasColorTable        bool
	ColorTableSize       int // packed 3-bit field; effective len = 1<<(size+1)
	BackgroundColorIndex byte
	PixelAspectRatio     byte
}

// Bytes serializes the descriptor to its 7-byte on-wire form.
func (s ScreenDescriptor) Bytes() []byte {
	out := make([]byte, 7)
	binary.LittleEndian.PutUint16(out[0:2], s.Width)
	binary.LittleEndian.PutUint16(out[2:4], s.Height)
	out[4] = byte(newScreenPacked(s.HasColorTable, s.ColorResolution, s.Sort, s.ColorTableSize))
	out[5] = s.BackgroundColorIndex
	out[6] = s.PixelAspectRatio
	return out
}

// ParseScreenDescriptor reads the 7-byte Logical Screen Descriptor.
func ParseScreenDescriptor(data []byte) (ScreenDescriptor, error) {
	if len(data) < 7 {
		return ScreenDescriptor{}, fmt.Errorf("gifed: %w: screen descriptor needs 7 bytes, have %d", ErrUnexpectedEOF, len(data))
	}
	packed := screenPacked(data[4])
	return ScreenDescriptor{
		Width:                binary.LittleEndian.Uint16(data[0:2]),
		Height:               binary.LittleEndian.Uint16(data[2:4]),
		ColorResolution:      packed.colorResolution(),
		Sort:                 packed.sort(),
		HasColorTable:        packed.hasColorTable(),
		ColorTableSize:       packed.tableSize(),
		BackgroundColorIndex: data[5],
		PixelAspectRatio:     data[6],
	}, nil
}

// ColorTableLen is the effective global color table length implied by
// ColorTableSize: 1 << (size+1).
func (s ScreenDescriptor) ColorTableLen() int {
	return 1 << (s.ColorTableSize + 1)
}

// ImageDescriptor is the 9-byte block (image separator excluded) that
// precedes every compressed image's optional local color table and LZW
// data.
type ImageDescriptor struct {
	Left, Top, Width, Height uint16
	Interlace                bool
	Sort                     bool
	HasColorTable            bool
	ColorTableSize           int
}

// Bytes serializes the descriptor to its 9-byte on-wire form (not
// including the 0x2C image separator byte).
func (d ImageDescriptor) Bytes() []byte {
	out := make([]byte, 9)
	binary.LittleEndian.PutUint16(out[0:2], d.Left)
	binary.LittleEndian.PutUint16(out[2:4], d.Top)
	binary.LittleEndian.PutUint16(out[4:6], d.Width)
	binary.LittleEndian.PutUint16(out[6:8], d.Height)
	out[8] = byte(newImagePacked(d.HasColorTable, d.Interlace, d.Sort, d.ColorTableSize))
	return out
}

// ParseImageDescriptor reads the 9-byte image descriptor (the 0x2C
// introducer must already have been consumed by the caller).
func ParseImageDescriptor(data []byte) (ImageDescriptor, error) {
	if len(data) < 9 {
		return ImageDescriptor{}, fmt.Errorf("gifed: %w: image descriptor needs 9 bytes, have %d", ErrUnexpectedEOF, len(data))
	}
	packed := imagePacked(data[8])
	return ImageDescriptor{
		Left:           binary.LittleEndian.Uint16(data[0:2]),
		Top:            binary.LittleEndian.Uint16(data[2:4]),
		Width:          binary.LittleEndian.Uint16(data[4:6]),
		Height:         binary.LittleEndian.Uint16(data[6:8]),
		Interlace:      packed.interlace(),
		Sort:           packed.sort(),
		HasColorTable:  packed.hasColorTable(),
		ColorTableSize: packed.tableSize(),
	}, nil
}

// ColorTableLen is the effective local color table length implied by
// ColorTableSize: 1 << (size+1).
func (d ImageDescriptor) ColorTableLen() int {
	return 1 << (d.ColorTableSize + 1)
}
