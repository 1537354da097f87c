package saver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreenRampPalette(t *testing.T) {
	p := GreenRampPalette(RainColors)

	assert.Len(t, p, 16)
	assert.Equal(t, RGB{}, p[0])
	assert.Equal(t, RGB{G: 255}, p[15])

	// 255/15 = 17 exactly; the ramp is linear with no red or blue.
	for i, c := range p {
		assert.Equal(t, uint8(i*17), c.G, "index %d", i)
		assert.Zero(t, c.R)
		assert.Zero(t, c.B)
	}
}

func TestPipePalette(t *testing.T) {
	p := PipePalette()

	assert.Len(t, p, 9)
	assert.Equal(t, RGB{}, p[0])
	assert.Equal(t, RGB{R: 0xe0, G: 0xe0, B: 0xe0}, p[1])
	assert.Equal(t, RGB{R: 0xb2, G: 0x94, B: 0xbb}, p[8])

	// Every accent colour is non-black.
	for i := 1; i < len(p); i++ {
		assert.NotEqual(t, RGB{}, p[i], "index %d", i)
	}
}

func TestPaletteColorClampsOutOfRange(t *testing.T) {
	p := PipePalette()

	assert.Equal(t, p[8], p.Color(15), "stale index after a shrinking rebind clamps to the last entry")
	assert.Equal(t, RGB{}, Palette{}.Color(3))
}
