package gifed

import (
	"errors"
	"fmt"
)

// Decode-side sentinels. Wrapped with context via fmt.Errorf("...: %w", ...)
// so callers can still match with errors.Is.
var (
	ErrUnexpectedEOF   = errors.New("gifed: unexpected end of input")
	ErrInvalidVersion  = errors.New("gifed: invalid GIF version header")
	ErrLZWInvalidCode  = errors.New("gifed: invalid LZW code")
	ErrInvalidCodeSize = errors.New("gifed: invalid LZW minimum code size")
	ErrTooManyColors   = errors.New("gifed: palette exceeds 256 colors")
	ErrMalformed       = errors.New("gifed: malformed GIF stream")
)

// UnknownBlockError is returned when the reader encounters a top-level
// block introducer it does not recognize (anything other than 0x21, 0x2C,
// or 0x3B).
type UnknownBlockError struct {
	Byte byte
}

func (e *UnknownBlockError) Error() string {
	return fmt.Sprintf("gifed: unknown block introducer 0x%02X", e.Byte)
}

// UnknownExtensionError is returned for extension labels other than the
// ones this package understands (0xF9, 0xFE, 0xFF, 0x01). The reader does
// not return this as a fatal error on its own — unrecognized extensions
// are retained as Unknown blocks — but it is exposed for callers that want
// to distinguish the anomaly.
type UnknownExtensionError struct {
	Label byte
}

func (e *UnknownExtensionError) Error() string {
	return fmt.Sprintf("gifed: unknown extension label 0x%02X", e.Label)
}

// IndexSizeMismatchError is returned at encode time when an IndexedImage's
// index buffer length does not equal width*height.
type IndexSizeMismatchError struct {
	Expected, Got int
}

func (e *IndexSizeMismatchError) Error() string {
	return fmt.Sprintf("gifed: indices length mismatch: expected %d, got %d", e.Expected, e.Got)
}

// TooManyColorsError is returned at encode time when a palette has more
// than 256 colors.
type TooManyColorsError struct {
	Count int
}

func (e *TooManyColorsError) Error() string {
	return fmt.Sprintf("gifed: %d colors exceeds the 256-color limit", e.Count)
}
