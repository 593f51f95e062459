package gifed

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderTrailingBytesTolerated(t *testing.T) {
	g := buildSampleGIF(t)
	wire := append(g.Bytes(), []byte("junk after trailer")...)

	rd, err := NewReaderBytes(wire)
	require.NoError(t, err)
	for {
		_, _, err := rd.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.True(t, rd.SawTrailer())
	assert.Equal(t, []byte("junk after trailer"), rd.TrailingBytes())
}

func TestReaderRejectsUnknownBlockIntroducer(t *testing.T) {
	wire := append([]byte("GIF89a"), ScreenDescriptor{Width: 1, Height: 1}.Bytes()...)
	wire = append(wire, 0x99)

	rd, err := NewReaderBytes(wire)
	require.NoError(t, err)
	_, _, err = rd.Next()
	var unknown *UnknownBlockError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, byte(0x99), unknown.Byte)
}

func TestReaderSkipsPlainTextExtension(t *testing.T) {
	screen := ScreenDescriptor{Width: 1, Height: 1}
	wire := append([]byte("GIF89a"), screen.Bytes()...)
	wire = append(wire, introducerExtension, labelPlainText, 12)
	wire = append(wire, make([]byte, 12)...)
	wire = append(wire, chunkSubBlocks([]byte("hi"))...)
	wire = append(wire, introducerTrailer)

	rd, err := NewReaderBytes(wire)
	require.NoError(t, err)
	_, _, err = rd.Next()
	assert.ErrorIs(t, err, io.EOF) // plain text tolerated and skipped, never yielded
	assert.True(t, rd.SawTrailer())
}

func TestReaderPreservesUnknownExtension(t *testing.T) {
	screen := ScreenDescriptor{Width: 1, Height: 1}
	wire := append([]byte("GIF89a"), screen.Bytes()...)
	wire = append(wire, introducerExtension, 0x77)
	wire = append(wire, chunkSubBlocks([]byte{1, 2, 3})...)
	wire = append(wire, introducerTrailer)

	rd, err := NewReaderBytes(wire)
	require.NoError(t, err)
	block, _, err := rd.Next()
	require.NoError(t, err)
	unknown, ok := block.(UnknownExtension)
	require.True(t, ok)
	assert.Equal(t, byte(0x77), unknown.Label)
	assert.Equal(t, []byte{1, 2, 3}, unknown.Data)
}

func TestDecodeAllRejectsTruncatedStream(t *testing.T) {
	g := buildSampleGIF(t)
	wire := g.Bytes()
	truncated := wire[:len(wire)-5]

	_, err := DecodeAll(bytes.NewReader(truncated))
	assert.Error(t, err)
}
