package gifed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenDescriptorRoundTrip(t *testing.T) {
	s := ScreenDescriptor{
		Width:                640,
		Height:               480,
		ColorResolution:      7,
		Sort:                 true,
		HasColorTable:        true,
		ColorTableSize:       5,
		BackgroundColorIndex: 3,
		PixelAspectRatio:     0,
	}
	wire := s.Bytes()
	require.Len(t, wire, 7)

	back, err := ParseScreenDescriptor(wire)
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestScreenDescriptorColorTableLen(t *testing.T) {
	s := ScreenDescriptor{ColorTableSize: 3}
	assert.Equal(t, 16, s.ColorTableLen())
}

func TestParseScreenDescriptorTruncated(t *testing.T) {
	_, err := ParseScreenDescriptor([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestImageDescriptorRoundTrip(t *testing.T) {
	d := ImageDescriptor{
		Left: 10, Top: 20, Width: 100, Height: 50,
		Interlace: true, Sort: false,
		HasColorTable: true, ColorTableSize: 2,
	}
	wire := d.Bytes()
	require.Len(t, wire, 9)

	back, err := ParseImageDescriptor(wire)
	require.NoError(t, err)
	assert.Equal(t, d, back)
}

func TestParseImageDescriptorTruncated(t *testing.T) {
	_, err := ParseImageDescriptor([]byte{1, 2})
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}
