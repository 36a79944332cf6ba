package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/orrery/constants"
)

// SweepGenerator is a finite sine sweep with exponential decay and optional noise
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64 // Hz
	length   int     // samples
	decay    float64 // envelope rate per second
	noise    float64 // noise mix in [0, 1]
	amp      float64

	pos   int
	phase float64
	seed  int64
}

// NewSweepGenerator creates a sweep from one frequency to another over d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration, decay float64) *SweepGenerator {
	return &SweepGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		length: sr.N(d),
		decay:  decay,
		amp:    0.25,
		seed:   1,
	}
}

// WithNoise mixes in crackle, used by the clear sweep
func (g *SweepGenerator) WithNoise(mix float64) *SweepGenerator {
	g.noise = min(max(mix, 0), 1)
	return g
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.length {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.length)

		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Short attack to avoid clicks, then exponential decay
		attack := math.Min(t/0.005, 1)
		envelope := attack * math.Exp(-t*g.decay)

		sample := math.Sin(g.phase)
		if g.noise > 0 {
			g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
			noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
			sample = sample*(1-g.noise) + noise*g.noise
		}
		sample *= g.amp * envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// newCue builds the streamer for c at sample rate sr
func newCue(c Cue, sr beep.SampleRate) beep.Streamer {
	switch c {
	case CueSelect:
		return beep.Seq(
			NewSweepGenerator(sr, 880, 880, constants.SelectNote1Duration, 10),
			NewSweepGenerator(sr, 1320, 1320, constants.SelectNote2Duration, 14),
		)
	case CuePlace:
		return NewSweepGenerator(sr, 440, 660, constants.PlaceSoundDuration, 12)
	case CueRemove:
		return NewSweepGenerator(sr, 140, 90, constants.RemoveSoundDuration, 15)
	case CueClear:
		return NewSweepGenerator(sr, 600, 120, constants.ClearSoundDuration, 6).WithNoise(0.3)
	default:
		return nil
	}
}

// newVolume scales s by a linear volume
// math.Log2(0) is -Inf, so zero volume is mapped to silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
