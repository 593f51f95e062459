package gifed

// Color is an RGB triple. GIF carries no alpha channel in its color
// tables; transparency is expressed separately via the graphic control
// extension's transparent index.
type Color struct {
	R, G, B byte
}

// Bytes returns the color as its 3-byte on-wire representation.
func (c Color) Bytes() [3]byte {
	return [3]byte{c.R, c.G, c.B}
}
