package saver

// RainSaver is the "falling code" screensaver: bright heads spawn at the
// left edge and streak rightward, leaving a stochastically fading green
// trail. (The panel is mounted rotated, so on-screen the code falls.)
type RainSaver struct {
	viewport
	rng *Rand

	// recentRows holds rows recently used as spawn points, oldest first,
	// so consecutive heads don't stack on the same row.
	recentRows []int
}

func NewRainSaver(seed uint64) *RainSaver {
	return &RainSaver{rng: NewRand(seed)}
}

func (rs *RainSaver) Reset() {
	rs.recentRows = rs.recentRows[:0]
}

func (rs *RainSaver) Palette() Palette {
	return GreenRampPalette(RainColors)
}

func (rs *RainSaver) Draw(prev, curr *PixelSurface) {
	curr.Fill(0)

	for y := 0; y < rs.height; y++ {
		// Columns walk right to left. Each cell's decay write is later
		// overwritten by its left neighbour's shift write, so columns
		// 1..w-1 end up exact copies of their left neighbour and the
		// fade/trail is only ever visible at the left edge. The prior
		// value of column w-1 falls off the edge.
		for x := rs.width - 2; x >= 0; x-- {
			value := prev.At(x, y)

			curr.Set(x+1, y, value)

			if value == RainHeadValue {
				// Fast decay directly behind the head, no stochastic fade.
				curr.Set(x, y, value-RainHeadTrail)
				continue
			}

			if rs.rng.Float64() < RainFadeChance && value > 0 {
				value--
			}
			curr.Set(x, y, value)
		}
	}

	y := rs.spawnRow()
	if rs.rng.Float64() < RainSpawnChance {
		curr.Set(0, y, RainHeadValue)
	}
}

// spawnRow picks a row not in the recent history and records it. The
// rejection loop is bounded: on a short panel the history can cover every
// row, so after enough misses the last draw is accepted anyway.
func (rs *RainSaver) spawnRow() int {
	y := 0
	for tries := 0; tries < 4*rs.height; tries++ {
		y = rs.rng.Intn(rs.height)
		if !rs.recentRow(y) {
			break
		}
	}

	rs.recentRows = append(rs.recentRows, y)
	if len(rs.recentRows) > RainRowHistory {
		rs.recentRows = rs.recentRows[1:]
	}
	return y
}

func (rs *RainSaver) recentRow(y int) bool {
	for _, r := range rs.recentRows {
		if r == y {
			return true
		}
	}
	return false
}
