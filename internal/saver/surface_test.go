package saver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurfaceFillAndAccess(t *testing.T) {
	s := NewPixelSurface(4, 3)

	s.Fill(7)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, uint8(7), s.At(x, y))
		}
	}

	s.Set(2, 1, 3)
	assert.Equal(t, uint8(3), s.At(2, 1))
	assert.Equal(t, uint8(7), s.At(1, 1))
}

func TestSurfaceOutOfRangeIsNoOp(t *testing.T) {
	s := NewPixelSurface(4, 3)
	s.Fill(5)

	s.Set(-1, 0, 9)
	s.Set(4, 0, 9)
	s.Set(0, 3, 9)

	assert.Equal(t, uint8(0), s.At(-1, 0))
	assert.Equal(t, uint8(0), s.At(0, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, uint8(5), s.At(x, y), "stray writes must not land anywhere")
		}
	}
}

func TestSurfaceRebindPaletteKeepsCells(t *testing.T) {
	s := NewPixelSurface(2, 2)
	s.RebindPalette(GreenRampPalette(16))
	s.Set(1, 1, 12)

	s.RebindPalette(PipePalette())

	assert.Len(t, s.Palette(), 9)
	assert.Equal(t, uint8(12), s.At(1, 1), "rebinding swaps the palette only")
	assert.Equal(t, 2, s.Width())
	assert.Equal(t, 2, s.Height())
}

func TestSurfaceCopyFrom(t *testing.T) {
	src := NewPixelSurface(3, 2)
	src.Set(2, 0, 4)
	dst := NewPixelSurface(3, 2)

	dst.CopyFrom(src)
	assert.Equal(t, uint8(4), dst.At(2, 0))

	// Mismatched dimensions are ignored.
	other := NewPixelSurface(2, 2)
	other.Fill(9)
	dst.CopyFrom(other)
	assert.Equal(t, uint8(4), dst.At(2, 0))
}
