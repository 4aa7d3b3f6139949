package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/demon-diapers/constants"
)

// droneGenerator is an endless low hum: fundamental, a flat fifth and a slow pitch wobble
type droneGenerator struct {
	sr  beep.SampleRate
	pos int
}

func newDroneGenerator(sr beep.SampleRate) *droneGenerator {
	return &droneGenerator{sr: sr}
}

func (g *droneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	wobbleHz := 1 / constants.AmbientWobblePeriod.Seconds()
	base := constants.AmbientBaseFrequency
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		wobble := 1 + 0.02*math.Sin(2*math.Pi*wobbleHz*t)

		sample := 0.5 * math.Sin(2*math.Pi*base*wobble*t)
		sample += 0.3 * math.Sin(2*math.Pi*base*1.41*wobble*t)
		sample += 0.15 * math.Sin(2*math.Pi*base*0.5*t)

		// Slightly different phase per channel for width
		samples[i][0] = 0.6 * sample
		samples[i][1] = 0.6 * (sample * (0.9 + 0.1*math.Cos(2*math.Pi*wobbleHz*t)))
		g.pos++
	}
	return len(samples), true
}

func (g *droneGenerator) Err() error { return nil }

// fader scales a stream by a gain that eases toward a target over a number of samples
type fader struct {
	streamer beep.Streamer
	from     float64
	to       float64
	pos      int
	span     int
}

func newFader(s beep.Streamer, initial float64) *fader {
	return &fader{streamer: s, from: initial, to: initial}
}

// rampTo starts a new ramp from the current gain; span <= 0 jumps immediately
func (f *fader) rampTo(target float64, span int) {
	f.from = f.level()
	f.to = target
	f.pos = 0
	f.span = span
}

// level returns the gain applied to the next sample
func (f *fader) level() float64 {
	if f.span <= 0 || f.pos >= f.span {
		return f.to
	}
	p := float64(f.pos) / float64(f.span)
	return f.from + (f.to-f.from)*easeInOutCubic(p)
}

func (f *fader) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := f.level()
		samples[i][0] *= g
		samples[i][1] *= g
		if f.pos < f.span {
			f.pos++
		}
	}
	return n, ok
}

func (f *fader) Err() error { return f.streamer.Err() }

func easeInOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q/2
}
