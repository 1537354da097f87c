package saver

// Screensaver is the capability contract a generative animation variant
// implements. The Director pushes the viewport with SetViewport followed
// by Reset, fetches the palette once per activation, and then calls Draw
// once per frame with the previously presented surface and the surface
// being computed. Draw must fully populate curr without reading it first
// and must leave prev untouched.
type Screensaver interface {
	SetViewport(width, height int)
	ViewportValid() bool
	Reset()
	Palette() Palette
	ResetBuffer(buf *PixelSurface)
	Draw(prev, curr *PixelSurface)
}

// viewport carries the dimension bookkeeping shared by every saver.
type viewport struct {
	width  int
	height int
}

func (v *viewport) SetViewport(width, height int) {
	v.width = width
	v.height = height
}

func (v *viewport) ViewportValid() bool {
	return v.width > 0 && v.height > 0
}

// ResetBuffer clears a freshly rebound surface to the blank state.
// Variants that want a different background override this.
func (v *viewport) ResetBuffer(buf *PixelSurface) {
	buf.Fill(0)
}
