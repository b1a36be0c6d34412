package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// crackle is a fire bed: a low noise rumble with random pops that decay
// quickly.
type crackle struct {
	rng   *rand.Rand
	pop   float64
	decay float64
	odds  float64
	low   float64
}

// NewCrackle creates an endless fire crackle streamer
func NewCrackle(rate beep.SampleRate, seed int64) beep.Streamer {
	return &crackle{
		rng: rand.New(rand.NewSource(seed)),
		// pops die out in ~15ms
		decay: math.Exp(-1 / (0.015 * float64(rate))),
		// ~12 pops per second
		odds: 12 / float64(rate),
	}
}

func (c *crackle) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.rng.Float64() < c.odds {
			c.pop = 0.5 + c.rng.Float64()*0.5
		}
		c.pop *= c.decay

		white := c.rng.Float64()*2 - 1
		c.low += (white - c.low) * 0.02

		val := white*c.pop*0.8 + c.low*0.6
		samples[i][0] = clampSample(val)
		samples[i][1] = clampSample(val)
	}
	return len(samples), true
}

func (c *crackle) Err() error { return nil }

// hiss is a rain bed: low-passed white noise, slightly different per
// channel so it sounds wide.
type hiss struct {
	rng  *rand.Rand
	l, r float64
}

// NewRainHiss creates an endless rain streamer
func NewRainHiss(seed int64) beep.Streamer {
	return &hiss{rng: rand.New(rand.NewSource(seed))}
}

func (h *hiss) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		h.l += (h.rng.Float64()*2 - 1 - h.l) * 0.35
		h.r += (h.rng.Float64()*2 - 1 - h.r) * 0.35
		samples[i][0] = clampSample(h.l * 0.6)
		samples[i][1] = clampSample(h.r * 0.6)
	}
	return len(samples), true
}

func (h *hiss) Err() error { return nil }

// applyVolume sets a linear level on a volume effect
func applyVolume(v *effects.Volume, level float64) {
	if level <= 0.001 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(math.Min(level, 1))
}

func clampSample(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
