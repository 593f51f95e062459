package gifed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenPackedMaskAndOr(t *testing.T) {
	p := newScreenPacked(true, 7, true, 5)
	assert.True(t, p.hasColorTable())
	assert.Equal(t, 7, p.colorResolution())
	assert.True(t, p.sort())
	assert.Equal(t, 5, p.tableSize())

	// A second construction from different fields must not leak bits from
	// an unrelated region.
	p2 := newScreenPacked(false, 0, false, 0)
	assert.False(t, p2.hasColorTable())
	assert.Equal(t, 0, p2.colorResolution())
	assert.False(t, p2.sort())
	assert.Equal(t, 0, p2.tableSize())
}

func TestImagePackedFields(t *testing.T) {
	p := newImagePacked(true, true, true, 3)
	assert.True(t, p.hasColorTable())
	assert.True(t, p.interlace())
	assert.True(t, p.sort())
	assert.Equal(t, 3, p.tableSize())
}

func TestGCEPackedFields(t *testing.T) {
	p := newGCEPacked(DisposalRestoreBackground, true, false)
	assert.Equal(t, DisposalRestoreBackground, p.disposal())
	assert.True(t, p.userInput())
	assert.False(t, p.transparent())
}
