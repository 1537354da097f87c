package saver

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Palette is an ordered colour table; pixel values index into it.
// Treated as immutable once built — rotations build a fresh one.
type Palette []RGB

// GreenRampPalette returns n shades from black to full green, the
// phosphor ramp the falling-code saver fades along.
func GreenRampPalette(n int) Palette {
	if n < 2 {
		n = 2
	}
	// step is computed before the multiply so the 16-shade ramp lands on
	// exact multiples of 17 (255/15 is an exact float).
	step := 255.0 / float64(n-1)
	p := make(Palette, n)
	for i := range p {
		p[i] = RGB{G: uint8(float64(i) * step)}
	}
	return p
}

// PipePalette returns black plus the eight pipe accent colours.
func PipePalette() Palette {
	return Palette{
		{0x00, 0x00, 0x00},
		{0xe0, 0xe0, 0xe0},
		{0xcc, 0x66, 0x66},
		{0xde, 0x93, 0x5f},
		{0xf0, 0xc6, 0x74},
		{0xb5, 0xbd, 0x68},
		{0x8a, 0xbe, 0xb7},
		{0x81, 0xa2, 0xbe},
		{0xb2, 0x94, 0xbb},
	}
}

// Color returns the colour for a stored cell index, clamping out-of-range
// indices to the last entry so a palette swap can never fault a lookup.
func (p Palette) Color(idx uint8) RGB {
	if len(p) == 0 {
		return RGB{}
	}
	if int(idx) >= len(p) {
		idx = uint8(len(p) - 1)
	}
	return p[idx]
}
