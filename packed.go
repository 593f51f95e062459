package gifed

// The three packed-field byte layouts in GIF each pack several flags into
// one byte at different bit positions. Accessors here always mask the
// target bit region before OR-ing in the new value — the historical
// reference implementation this package is informed by has OR-only
// setters that corrupt adjacent fields on a second call; this package
// does not repeat that bug.

// screenPacked is the logical screen descriptor's packed byte:
// has_ct(1) | color_resolution(3) | sort(1) | ct_size(3).
type screenPacked byte

func (p screenPacked) hasColorTable() bool  { return p&0x80 != 0 }
func (p screenPacked) colorResolution() int { return int(p>>4) & 0x07 }
func (p screenPacked) sort() bool           { return p&0x08 != 0 }
func (p screenPacked) tableSize() int       { return int(p) & 0x07 }

func newScreenPacked(hasCT bool, colorRes int, sort bool, tableSize int) screenPacked {
	var b byte
	if hasCT {
		b |= 0x80
	}
	b |= byte(colorRes&0x07) << 4
	if sort {
		b |= 0x08
	}
	b |= byte(tableSize & 0x07)
	return screenPacked(b)
}

// imagePacked is the image descriptor's packed byte:
// has_ct(1) | interlace(1) | sort(1) | reserved(2) | ct_size(3).
type imagePacked byte

func (p imagePacked) hasColorTable() bool { return p&0x80 != 0 }
func (p imagePacked) interlace() bool     { return p&0x40 != 0 }
func (p imagePacked) sort() bool          { return p&0x20 != 0 }
func (p imagePacked) tableSize() int      { return int(p) & 0x07 }

func newImagePacked(hasCT, interlace, sort bool, tableSize int) imagePacked {
	var b byte
	if hasCT {
		b |= 0x80
	}
	if interlace {
		b |= 0x40
	}
	if sort {
		b |= 0x20
	}
	b |= byte(tableSize & 0x07)
	return imagePacked(b)
}

// gcePacked is the graphic control extension's packed byte:
// reserved(3) | disposal(3) | user_input(1) | transparent(1).
type gcePacked byte

func (p gcePacked) disposal() Disposal { return Disposal(int(p>>2) & 0x07) }
func (p gcePacked) userInput() bool    { return p&0x02 != 0 }
func (p gcePacked) transparent() bool  { return p&0x01 != 0 }

func newGCEPacked(disposal Disposal, userInput, transparent bool) gcePacked {
	var b byte
	b |= byte(disposal&0x07) << 2
	if userInput {
		b |= 0x02
	}
	if transparent {
		b |= 0x01
	}
	return gcePacked(b)
}
