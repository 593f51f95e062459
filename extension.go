package gifed

import (
	"encoding/binary"
	"fmt"
)

// Disposal is the post-render action for a frame's canvas region. Codes
// 4-7 are reserved by the GIF89a spec; this package keeps them as their raw
// Disposal value (String reports "unknown(n)") rather than failing.
type Disposal int

const (
	DisposalNone              Disposal = 0
	DisposalDoNotDispose      Disposal = 1
	DisposalRestoreBackground Disposal = 2
	DisposalRestorePrevious   Disposal = 3
)

func (d Disposal) String() string {
	switch d {
	case DisposalNone:
		return "none"
	case DisposalDoNotDispose:
		return "do-not-dispose"
	case DisposalRestoreBackground:
		return "restore-background"
	case DisposalRestorePrevious:
		return "restore-previous"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

// GraphicControl is a Graphic Control Extension: the metadata governing
// the single compressed image it precedes. At most one is "live" at a
// time; if several precede the same image, the last one wins (§3
// invariants).
type GraphicControl struct {
	Disposal         Disposal
	UserInput        bool
	TransparentFlag  bool
	Delay            uint16 // centiseconds
	TransparentIndex byte
}

func (g GraphicControl) Kind() BlockKind { return KindGraphicControl }

func (g GraphicControl) Bytes() []byte {
	out := make([]byte, 0, 8)
	out = append(out, introducerExtension, labelGraphicControl, 4)
	out = append(out, byte(newGCEPacked(g.Disposal, g.UserInput, g.TransparentFlag)))
	delay := make([]byte, 2)
	binary.LittleEndian.PutUint16(delay, g.Delay)
	out = append(out, delay...)
	out = append(out, g.TransparentIndex, 0)
	return out
}

// parseGraphicControl parses a Graphic Control Extension's 4 data bytes;
// data holds exactly those 4 bytes. The caller reads and checks the
// length and terminator bytes around them.
func parseGraphicControl(data []byte) (GraphicControl, error) {
	if len(data) != 4 {
		return GraphicControl{}, fmt.Errorf("gifed: %w: graphic control needs 4 data bytes, have %d", ErrMalformed, len(data))
	}
	packed := gcePacked(data[0])
	return GraphicControl{
		Disposal:         packed.disposal(),
		UserInput:        packed.userInput(),
		TransparentFlag:  packed.transparent(),
		Delay:            binary.LittleEndian.Uint16(data[1:3]),
		TransparentIndex: data[3],
	}, nil
}

// Comment is a Comment Extension: an arbitrary byte payload, chunked on
// emission and concatenated on decode.
type Comment struct {
	Text []byte
}

func (c Comment) Kind() BlockKind { return KindComment }

func (c Comment) Bytes() []byte {
	out := []byte{introducerExtension, labelComment}
	return append(out, chunkSubBlocks(c.Text)...)
}

// Application is an Application Extension: an 8-byte identifier, a
// 3-byte authentication code, and a sub-block-chunked data payload.
type Application struct {
	Identifier string // exactly 8 bytes
	AuthCode   string // exactly 3 bytes
	Data       []byte
}

func (a Application) Kind() BlockKind { return KindApplication }

func (a Application) Bytes() []byte {
	id := padOrTrim(a.Identifier, 8)
	auth := padOrTrim(a.AuthCode, 3)

	out := []byte{introducerExtension, labelApplication, 0x0B}
	out = append(out, id...)
	out = append(out, auth...)
	return append(out, chunkSubBlocks(a.Data)...)
}

func padOrTrim(s string, n int) []byte {
	b := make([]byte, n)
	copy(b, s)
	return b
}

// Looping is the synthetic NETSCAPE2.0 looping extension: a convenience
// wrapper over the Application Extension form every browser recognizes
// for animation repeat counts. Count == 0 means loop forever.
type Looping struct {
	Count uint16
}

func (l Looping) Kind() BlockKind { return KindLooping }

func (l Looping) Bytes() []byte {
	data := make([]byte, 3)
	data[0] = 0x01
	binary.LittleEndian.PutUint16(data[1:3], l.Count)
	return Application{Identifier: "NETSCAPE", AuthCode: "2.0", Data: data}.Bytes()
}

// AsApplication returns the Looping extension's equivalent Application
// Extension form, useful for callers that want to inspect it generically.
func (l Looping) AsApplication() Application {
	data := make([]byte, 3)
	data[0] = 0x01
	binary.LittleEndian.PutUint16(data[1:3], l.Count)
	return Application{Identifier: "NETSCAPE", AuthCode: "2.0", Data: data}
}

// UnknownExtension preserves an extension this package's decoder does not
// specifically recognize (anything but 0xF9/0xFE/0xFF, and 0x01 Plain Text,
// which the reader skips without yielding a block), so round-tripping
// never silently drops data. Its sub-block payload is read generically
// and stored in raw concatenated form.
type UnknownExtension struct {
	Label byte
	Data  []byte
}

func (u UnknownExtension) Kind() BlockKind { return KindUnknownExtension }

func (u UnknownExtension) Bytes() []byte {
	out := []byte{introducerExtension, u.Label}
	return append(out, chunkSubBlocks(u.Data)...)
}
