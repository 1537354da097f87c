package saver

// Display is the external output the Director presents frames to. The
// desktop build backs it with the GL LED-panel renderer; the hardware
// build backs it with the matrix driver. Present is synchronous and
// idempotent for unchanged content.
type Display interface {
	Width() int
	Height() int
	Present(s *PixelSurface)
}

// Director owns the screensaver roster and the two ping-pong frame
// buffers, drives per-frame execution, and rotates between variants.
// Single-threaded: every method runs on the caller's goroutine.
type Director struct {
	display Display
	rng     *Rand

	savers  []Screensaver
	current int

	buf1, buf2   *PixelSurface
	useSecondary bool
}

func NewDirector(display Display, seed uint64) *Director {
	return &Director{
		display: display,
		rng:     NewRand(seed),
		current: -1,
		buf1:    NewPixelSurface(display.Width(), display.Height()),
		buf2:    NewPixelSurface(display.Width(), display.Height()),
	}
}

// active returns the current screensaver, or nil if none is selected.
func (d *Director) active() Screensaver {
	if d.current < 0 || d.current >= len(d.savers) {
		return nil
	}
	return d.savers[d.current]
}

// Add appends a screensaver to the roster. The first one added is
// activated immediately.
func (d *Director) Add(s Screensaver) {
	d.savers = append(d.savers, s)
	if len(d.savers) == 1 {
		d.Cycle()
	}
}

// Cycle switches to a different screensaver picked uniformly from the
// roster, never re-picking the current one, and reinitialises buffers and
// palette for it.
func (d *Director) Cycle() {
	switch n := len(d.savers); n {
	case 0:
		return
	case 1:
		d.current = 0
		return
	default:
		if d.current < 0 {
			d.current = d.rng.Intn(n)
			break
		}
		// Draw from the n-1 other indices; no rejection loop needed.
		next := d.rng.Intn(n - 1)
		if next >= d.current {
			next++
		}
		d.current = next
	}

	d.reset()
}

// reset pushes the display viewport into the active screensaver and
// rebuilds both buffers under its palette. The primary buffer becomes the
// presented one.
func (d *Director) reset() {
	s := d.active()
	if s == nil {
		return
	}

	s.SetViewport(d.display.Width(), d.display.Height())
	s.Reset()

	palette := s.Palette()
	d.buf1.RebindPalette(palette)
	d.buf2.RebindPalette(palette)

	s.ResetBuffer(d.buf1)
	s.ResetBuffer(d.buf2)

	d.useSecondary = false
	d.display.Present(d.buf1)
}

// RunFrame computes and presents one frame. The buffer presented last
// frame becomes prev; the other is fully redrawn and becomes the
// presented buffer for the next call. A frame is never partially
// presented: the flip happens only after Draw returns.
func (d *Director) RunFrame() {
	s := d.active()
	if s == nil {
		return
	}
	if !s.ViewportValid() {
		d.reset()
		return
	}

	if d.useSecondary {
		d.display.Present(d.buf1)
		s.Draw(d.buf1, d.buf2)
	} else {
		d.display.Present(d.buf2)
		s.Draw(d.buf2, d.buf1)
	}
	d.useSecondary = !d.useSecondary
}
