package saver

// PixelSurface is one frame buffer: a fixed-size grid of palette indices
// bound to exactly one Palette at a time. The Director owns two of these
// and ping-pongs between them; nothing here is safe for concurrent use.
type PixelSurface struct {
	w, h    int
	cells   []uint8
	palette Palette
}

func NewPixelSurface(w, h int) *PixelSurface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &PixelSurface{
		w:     w,
		h:     h,
		cells: make([]uint8, w*h),
	}
}

func (s *PixelSurface) Width() int  { return s.w }
func (s *PixelSurface) Height() int { return s.h }

// Palette returns the currently bound colour table.
func (s *PixelSurface) Palette() Palette { return s.palette }

// RebindPalette swaps the bound palette without touching cell data.
// Stored indices are reinterpreted under the new table, so callers clear
// or refill after a rebind that changes the colour count.
func (s *PixelSurface) RebindPalette(p Palette) {
	s.palette = p
}

// Fill sets every cell to v.
func (s *PixelSurface) Fill(v uint8) {
	for i := range s.cells {
		s.cells[i] = v
	}
}

// At returns the cell value at (x, y), or 0 for out-of-range coordinates.
func (s *PixelSurface) At(x, y int) uint8 {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return 0
	}
	return s.cells[y*s.w+x]
}

// Set writes v at (x, y). Out-of-range coordinates are ignored so a stray
// write can never wrap onto a neighbouring row.
func (s *PixelSurface) Set(x, y int, v uint8) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.cells[y*s.w+x] = v
}

// CopyFrom copies every cell from src. Both surfaces must share
// dimensions; mismatched sizes are ignored.
func (s *PixelSurface) CopyFrom(src *PixelSurface) {
	if src == nil || src.w != s.w || src.h != s.h {
		return
	}
	copy(s.cells, src.cells)
}
