package saver

// Matrix dimensions (in LED pixels). Matches the 64x32 HUB75 panel the
// hardware build drives.
const (
	MatrixWidth  = 64
	MatrixHeight = 32
)

// Window defaults. Each LED cell is rendered PixelScale screen pixels wide.
const (
	PixelScale   = 16
	WindowWidth  = MatrixWidth * PixelScale  // 1024
	WindowHeight = MatrixHeight * PixelScale // 512
)

// Frame cadence.
const (
	FramesPerCycle = 500  // animation frames between screensaver rotations
	FrameInterval  = 0.05 // seconds per animation frame (20 fps)
)

// Falling-code ("matrix rain") tuning.
const (
	RainColors      = 16             // green ramp length; indices 0..15
	RainHeadValue   = RainColors - 1 // maximum brightness; the streak head
	RainHeadTrail   = 3              // head leaves headValue-3 behind itself
	RainFadeChance  = 0.3            // per-cell chance to decay one shade per frame
	RainSpawnChance = 0.4            // per-frame chance a new head appears at column 0
	RainRowHistory  = 10             // recently-used spawn rows kept out of the draw
)

// Wandering-pipe tuning.
const (
	PipeMaxCount   = 10   // pipes drawn before the canvas is wiped
	PipeTurnRamp   = 25.0 // turn chance ramps by 1/PipeTurnRamp per tick
	PipeDirections = 4    // axis-aligned: right, up, left, down
)

// LED look.
const (
	LEDDotSize   = 0.82 // dot diameter as a fraction of one cell
	LEDGlowSize  = 2.6  // halo diameter in cells for bright pixels
	LEDGlowLevel = 0.55 // brightness (0..1) above which a cell gets a halo
)
