// Package quantize holds the external collaborator the core gifed
// package deliberately does not implement: reducing a full-color RGB
// pixel stream down to a bounded-size palette. gifed names the interface
// only (§1 non-goals); this package supplies one concrete algorithm.
package quantize

import "github.com/ncgif/gifed"

// Quantizer reduces an RGB pixel stream to a Palette of at most
// maxColors entries, then maps arbitrary RGB triples to their nearest
// entry in that palette.
type Quantizer interface {
	// Quantize builds a palette of at most maxColors colors from pixels,
	// an RGB-triple stream (len(pixels) must be a multiple of 3).
	Quantize(pixels []byte, maxColors int) gifed.Palette
	// Index returns the palette entry nearest (r, g, b), using the
	// palette built by the most recent call to Quantize.
	Index(r, g, b byte) int
}
