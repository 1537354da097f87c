package saver

// Pipe travel directions.
const (
	dirRight = 0
	dirUp    = 1
	dirLeft  = 2
	dirDown  = 3
)

// PipesSaver is the "wandering pipe" screensaver: one coloured path at a
// time snakes across the panel, turning at random, until it wanders off
// an edge and a fresh pipe starts. Every PipeMaxCount pipes the canvas
// is wiped.
type PipesSaver struct {
	viewport
	rng *Rand

	x, y             int
	direction        int
	color            uint8
	ticksWithoutTurn int
	numPipes         int
}

func NewPipesSaver(seed uint64) *PipesSaver {
	return &PipesSaver{rng: NewRand(seed)}
}

func (ps *PipesSaver) Reset() {
	ps.numPipes = 0
	ps.newPipe()
}

func (ps *PipesSaver) Palette() Palette {
	return PipePalette()
}

// newPipe abandons the current path and starts a new one on a random
// edge, heading inward. The perpendicular coordinate avoids the corners.
func (ps *PipesSaver) newPipe() {
	ps.ticksWithoutTurn = 0
	ps.numPipes++

	ps.color = uint8(ps.rng.Range(1, len(PipePalette())-1))
	ps.direction = ps.rng.Intn(PipeDirections)

	switch ps.direction {
	case dirRight:
		ps.x, ps.y = 0, ps.rng.Range(1, ps.height-2)
	case dirUp:
		ps.x, ps.y = ps.rng.Range(1, ps.width-2), ps.height-1
	case dirLeft:
		ps.x, ps.y = ps.width-1, ps.rng.Range(1, ps.height-2)
	case dirDown:
		ps.x, ps.y = ps.rng.Range(1, ps.width-2), 0
	}
}

func (ps *PipesSaver) Draw(prev, curr *PixelSurface) {
	if ps.numPipes > PipeMaxCount {
		ps.ResetBuffer(curr)
		ps.numPipes = 0
	} else {
		curr.CopyFrom(prev)
	}

	curr.Set(ps.x, ps.y, ps.color)

	switch ps.direction {
	case dirRight:
		ps.x++
	case dirUp:
		ps.y--
	case dirLeft:
		ps.x--
	case dirDown:
		ps.y++
	}

	// Turn chance ramps with every straight tick. Negative for the first
	// two ticks, which just means no turn.
	turnChance := float64(ps.ticksWithoutTurn-1) / PipeTurnRamp
	if ps.rng.Float64() < turnChance {
		turning := 1
		if ps.rng.Float64() < 0.5 {
			turning = -1
		}
		ps.direction = (ps.direction + turning + PipeDirections) % PipeDirections
		ps.ticksWithoutTurn = 0
	} else {
		ps.ticksWithoutTurn++
	}

	// Bounds are checked only after the advance: an off-canvas position is
	// replaced here before the next frame would have plotted it, so the
	// out-of-bounds write never happens.
	if ps.x < 0 || ps.x >= ps.width || ps.y < 0 || ps.y >= ps.height {
		ps.newPipe()
	}
}
