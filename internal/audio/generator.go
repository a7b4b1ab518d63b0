package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator produces a sine tone gliding linearly from one frequency
// to another over its duration, with a short fade in and a fade out.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	volume   float64
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep. Equal frequencies give a plain tone.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration, volume float64) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(d),
		volume:  volume,
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}

	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		sample := g.volume * g.envelope(progress) * math.Sin(2*math.Pi*g.phase)
		g.phase += freq / float64(g.sr)
		if g.phase >= 1 {
			g.phase -= 1
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// envelope ramps up over the first 5% and down over the last 30%.
func (g *SweepGenerator) envelope(progress float64) float64 {
	switch {
	case progress < 0.05:
		return progress / 0.05
	case progress > 0.7:
		return (1 - progress) / 0.3
	default:
		return 1
	}
}
