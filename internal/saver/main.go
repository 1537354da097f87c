package saver

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("NEON_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0.02, 0.02, 0.03, 1.0)

	rend, err := NewRenderer(MatrixWidth, MatrixHeight)
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	director := NewDirector(rend, seed^0xD12EC7)
	director.Add(NewRainSaver(seed ^ 0x2A17))
	director.Add(NewPipesSaver(seed ^ 0x919E5))
	director.Cycle()
	StartAmbient(ambientFor(director))

	frames := 0
	last := glfw.GetTime()
	acc := 0.0
	for !window.ShouldClose() {
		now := glfw.GetTime()
		acc += now - last
		last = now
		if acc > 0.25 {
			acc = 0.25
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		// Advance animation frames at the fixed cadence; vsync redraws in
		// between just re-present the same frame.
		for acc >= FrameInterval {
			acc -= FrameInterval
			if frames >= FramesPerCycle {
				frames = 0
				director.Cycle()
				StartAmbient(ambientFor(director))
				continue
			}
			director.RunFrame()
			frames++
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		rend.Draw(fbW, fbH)
		window.SwapBuffers()
	}

	StartAmbient(AmbientOff)
}

// ambientFor maps the active screensaver to its soundscape.
func ambientFor(d *Director) AmbientKind {
	switch d.active().(type) {
	case *RainSaver:
		return AmbientRain
	case *PipesSaver:
		return AmbientPipes
	}
	return AmbientOff
}
