package saver

import (
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// AmbientKind selects the soundscape matching the active screensaver.
type AmbientKind int

const (
	AmbientOff AmbientKind = iota
	AmbientRain
	AmbientPipes
)

// AudioSystem holds the oto context and the single ambient player.
// Audio is best-effort: if init fails the screensaver runs silent.
type AudioSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	player oto.Player
}

var globalAudio *AudioSystem

var ambientVolume = 0.16

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// SetAmbientVolume adjusts the soundscape volume, taking effect on the
// currently playing stream too.
func SetAmbientVolume(vol float64) {
	ambientVolume = clampF(vol, 0, 1)
	if globalAudio != nil && globalAudio.player != nil {
		globalAudio.player.SetVolume(ambientVolume)
	}
}

// StartAmbient switches the ambient soundscape. Any previous stream is
// closed first; AmbientOff just stops playback.
func StartAmbient(kind AmbientKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if globalAudio.player != nil {
		globalAudio.player.Close()
		globalAudio.player = nil
	}
	if kind == AmbientOff {
		return
	}

	reader := &ambientReader{
		kind: kind,
		seed: uint64(time.Now().UnixNano()) | 1,
	}
	player := globalAudio.ctx.NewPlayer(reader)
	player.SetVolume(ambientVolume)
	globalAudio.player = player
	player.Play()
}

// ambientReader streams an endless procedural soundscape.
type ambientReader struct {
	kind AmbientKind
	t    float64
	seed uint64

	lp, lp2 float64 // lowpass chain for rain noise
	dripIn  float64 // seconds until the next droplet ping
	dripT   float64 // time since the current droplet triggered
	dripHz  float64
}

func (m *ambientReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	dt := 1.0 / SampleRate
	for i := 0; i < samples; i++ {
		var s float64
		switch m.kind {
		case AmbientRain:
			s = m.rainSample(dt)
		case AmbientPipes:
			s = m.droneSample()
		}
		putStereoF32(p, i, softSat(s))
		m.t += dt
	}
	return samples * 8, nil
}

// rainSample is double-lowpassed noise (steady patter) with sparse sine
// pings on top (individual droplets).
func (m *ambientReader) rainSample(dt float64) float64 {
	n := lcg(&m.seed)
	m.lp += (n - m.lp) * 0.10
	m.lp2 += (m.lp - m.lp2) * 0.10
	s := m.lp2*0.9 + (m.lp-m.lp2)*0.3

	m.dripIn -= dt
	if m.dripIn <= 0 {
		m.dripIn = 0.08 + lcgU(&m.seed)*0.5
		m.dripT = 0
		m.dripHz = 1400 + lcgU(&m.seed)*1800
	}
	if m.dripT < 0.03 {
		s += math.Sin(2*math.Pi*m.dripHz*m.dripT) * math.Exp(-m.dripT*160.0) * 0.22
	}
	m.dripT += dt

	return s
}

// droneSample is a slow detuned hum: root, a slightly sharp copy for
// beating, and a fifth, all breathing on long periods.
func (m *ambientReader) droneSample() float64 {
	breathe := 0.7 + 0.3*math.Sin(2*math.Pi*m.t/13.0)
	s := math.Sin(2*math.Pi*55.0*m.t) * 0.45
	s += math.Sin(2*math.Pi*55.4*m.t) * 0.35
	s += math.Sin(2*math.Pi*82.5*m.t) * 0.20 * (0.6 + 0.4*math.Sin(2*math.Pi*m.t/7.0))
	return s * breathe
}

// softSat applies gentle tanh-like saturation — no harsh clipping.
func softSat(x float64) float64 {
	return math.Tanh(x * 1.2)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>11))/float64(1<<52) - 1.0
}

// lcgU advances an LCG seed and returns a sample in [0,1].
func lcgU(seed *uint64) float64 {
	return (lcg(seed) + 1.0) * 0.5
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}
