package saver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDisplay records presents for the tests; the real one is the GL
// LED-panel renderer.
type fakeDisplay struct {
	w, h      int
	presented *PixelSurface
	presents  int
}

func (f *fakeDisplay) Width() int  { return f.w }
func (f *fakeDisplay) Height() int { return f.h }
func (f *fakeDisplay) Present(s *PixelSurface) {
	f.presented = s
	f.presents++
}

func newDirectorForTest(w, h int, seed uint64) (*Director, *fakeDisplay) {
	disp := &fakeDisplay{w: w, h: h}
	d := NewDirector(disp, seed)
	return d, disp
}

func TestDirectorAddActivatesFirst(t *testing.T) {
	d, _ := newDirectorForTest(8, 4, 1)

	assert.Nil(t, d.active())
	rain := NewRainSaver(2)
	d.Add(rain)
	assert.Same(t, rain, d.active())
}

func TestDirectorCycleNeverRepeats(t *testing.T) {
	d, _ := newDirectorForTest(8, 4, 0xBEEF)
	d.Add(NewRainSaver(1))
	d.Add(NewPipesSaver(2))

	prev := d.current
	for i := 0; i < 500; i++ {
		d.Cycle()
		require.NotEqual(t, prev, d.current, "cycle %d re-picked the active saver", i)
		prev = d.current
	}
}

func TestDirectorCycleEdgeCases(t *testing.T) {
	d, _ := newDirectorForTest(8, 4, 1)

	d.Cycle() // empty roster: no-op
	assert.Nil(t, d.active())

	d.Add(NewRainSaver(1))
	d.Cycle() // single entry stays active
	assert.Equal(t, 0, d.current)
	d.Cycle()
	assert.Equal(t, 0, d.current)
}

func TestDirectorCycleReinitialisesBuffers(t *testing.T) {
	d, disp := newDirectorForTest(8, 4, 7)
	d.Add(NewRainSaver(1))
	d.Add(NewPipesSaver(2))

	// Dirty both buffers, then force a rotation.
	d.buf1.Fill(9)
	d.buf2.Fill(9)
	d.Cycle()

	s := d.active()
	require.NotNil(t, s)
	assert.True(t, s.ViewportValid(), "viewport pushed into the new saver")
	assert.Len(t, d.buf1.Palette(), len(s.Palette()))
	assert.Len(t, d.buf2.Palette(), len(s.Palette()))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			assert.Zero(t, d.buf1.At(x, y))
			assert.Zero(t, d.buf2.At(x, y))
		}
	}
	assert.Same(t, d.buf1, disp.presented, "primary buffer presented after reinit")
	assert.False(t, d.useSecondary)
}

func TestDirectorRunFrameFlipsBuffers(t *testing.T) {
	d, disp := newDirectorForTest(8, 4, 7)
	d.Add(NewRainSaver(1))
	d.Add(NewPipesSaver(2))
	d.Cycle()

	d.RunFrame()
	first := disp.presented
	d.RunFrame()
	second := disp.presented

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotSame(t, first, second, "presented buffer alternates every frame")
	d.RunFrame()
	assert.Same(t, first, disp.presented)
}

func TestDirectorRunFrameHealsInvalidViewport(t *testing.T) {
	d, disp := newDirectorForTest(8, 4, 7)
	d.Add(NewRainSaver(1))
	// Single-entry activation does not reinitialise, so the saver still
	// has a zero viewport here.
	require.False(t, d.active().ViewportValid())

	d.RunFrame()
	assert.True(t, d.active().ViewportValid(), "first frame self-heals via reinit")
	assert.Same(t, d.buf1, disp.presented)

	presentsAfterReset := disp.presents
	d.RunFrame()
	assert.Greater(t, disp.presents, presentsAfterReset, "subsequent frames draw normally")
}

func TestDirectorRunFrameWithoutSaversIsNoOp(t *testing.T) {
	d, disp := newDirectorForTest(8, 4, 7)
	d.RunFrame()
	assert.Zero(t, disp.presents)
}

func TestDirectorRebindRoundTrip(t *testing.T) {
	// Rotating between palettes of different sizes must never leave a
	// stale index visible: every rebind is followed by a clear, and the
	// first draw only produces indices valid under the new palette.
	d, disp := newDirectorForTest(8, 4, 0x51AB)
	d.Add(NewRainSaver(1))
	d.Add(NewPipesSaver(2))

	for i := 0; i < 20; i++ {
		d.Cycle()
		for f := 0; f < 5; f++ {
			d.RunFrame()
		}
		palette := disp.presented.Palette()
		require.NotEmpty(t, palette)
		for y := 0; y < 4; y++ {
			for x := 0; x < 8; x++ {
				assert.Less(t, int(disp.presented.At(x, y)), len(palette))
			}
		}
	}
}
