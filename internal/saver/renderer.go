package saver

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// spriteFloats is the per-sprite vertex layout: x, y, size, r, g, b, a.
const spriteFloats = 7

// Renderer draws a PixelSurface as a simulated LED panel: one round dot
// per lit cell plus an additive halo around the bright ones. It also
// implements Display, so the Director can present straight to it;
// Present only retargets which surface Draw renders, matching a root
// buffer swap on the hardware display.
type Renderer struct {
	gridW, gridH int

	ledProg  uint32
	glowProg uint32
	vao      uint32
	vbo      uint32

	ledUGrid int32
	ledURes  int32

	glowUGrid int32
	glowURes  int32

	frame *PixelSurface

	// Reusable sprite buffers to avoid per-frame heap allocations.
	ledBuf  []float32
	glowBuf []float32
}

func NewRenderer(gridW, gridH int) (*Renderer, error) {
	ledProg, err := linkProgram(ledVertSrc, ledFragSrc)
	if err != nil {
		return nil, fmt.Errorf("led program: %w", err)
	}
	glowProg, err := linkProgram(ledVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(ledProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		gridW:    gridW,
		gridH:    gridH,
		ledProg:  ledProg,
		glowProg: glowProg,
	}

	// One streaming VAO/VBO shared by both passes.
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(spriteFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, gridW*gridH*int(stride), nil, gl.STREAM_DRAW)
	// aCell (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))

	gl.UseProgram(ledProg)
	r.ledUGrid = gl.GetUniformLocation(ledProg, gl.Str("uGridSize\x00"))
	r.ledURes = gl.GetUniformLocation(ledProg, gl.Str("uResolution\x00"))
	gl.Uniform2f(r.ledUGrid, float32(gridW), float32(gridH))

	gl.UseProgram(glowProg)
	r.glowUGrid = gl.GetUniformLocation(glowProg, gl.Str("uGridSize\x00"))
	r.glowURes = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))
	gl.Uniform2f(r.glowUGrid, float32(gridW), float32(gridH))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	for _, id := range []uint32{r.ledProg, r.glowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// Display implementation.

func (r *Renderer) Width() int  { return r.gridW }
func (r *Renderer) Height() int { return r.gridH }

func (r *Renderer) Present(s *PixelSurface) {
	r.frame = s
}

// Draw renders the presented surface into the current GL frame.
func (r *Renderer) Draw(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if r.frame == nil {
		return
	}
	palette := r.frame.Palette()
	if len(palette) == 0 {
		return
	}

	r.ledBuf = r.ledBuf[:0]
	r.glowBuf = r.glowBuf[:0]

	for y := 0; y < r.gridH; y++ {
		for x := 0; x < r.gridW; x++ {
			col := palette.Color(r.frame.At(x, y))
			if col.R == 0 && col.G == 0 && col.B == 0 {
				continue
			}

			fx := float32(x)
			fy := float32(y)
			rc := float32(col.R) / 255.0
			gc := float32(col.G) / 255.0
			bc := float32(col.B) / 255.0
			r.ledBuf = append(r.ledBuf, fx, fy, LEDDotSize, rc, gc, bc, 1)

			bright := rc
			if gc > bright {
				bright = gc
			}
			if bc > bright {
				bright = bc
			}
			if bright > LEDGlowLevel {
				// Pre-multiplied halo colour for additive blending.
				halo := col.Mul(uint8(90 * bright))
				r.glowBuf = append(r.glowBuf, fx, fy, LEDGlowSize,
					float32(halo.R)/255.0, float32(halo.G)/255.0, float32(halo.B)/255.0, 1)
			}
		}
	}

	r.drawPass(r.ledProg, r.ledURes, r.ledBuf, false, fbW, fbH)
	r.drawPass(r.glowProg, r.glowURes, r.glowBuf, true, fbW, fbH)
}

func (r *Renderer) drawPass(prog uint32, uRes int32, buf []float32, additive bool, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / spriteFloats

	gl.UseProgram(prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.Uniform2f(uRes, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, count*spriteFloats*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
