package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/demon-diapers/constants"
	"github.com/lixenwraith/demon-diapers/engine"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally with vibrato and a pitch glide
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate

	vibratoDepth float64 // fraction of freq
	vibratoRate  float64 // Hz
	glide        float64 // fraction of freq reached at the end
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// newWail is a saw oscillator with vibrato and a downward glide, the shape of a cry
func newWail(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:         freq,
		duration:     rate.N(duration),
		wave:         WaveSaw,
		rate:         rate,
		vibratoDepth: 0.06,
		vibratoRate:  6,
		glide:        -0.2,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.instantFreq() / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) instantFreq() float64 {
	f := o.freq
	if o.glide != 0 && o.duration > 0 {
		f *= 1 + o.glide*float64(o.position)/float64(o.duration)
	}
	if o.vibratoDepth != 0 {
		t := float64(o.position) / float64(o.rate)
		f *= 1 + o.vibratoDepth*math.Sin(2*math.Pi*o.vibratoRate*t)
	}
	return f
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain. math.Log2(0) is -Inf, so 0 is mapped to silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// cryPitch gives every (room, slot) hazard its own voice. Slots past the table reuse the
// room's first entry.
var cryPitch = [engine.RoomCount][]float64{
	engine.Bathroom:   {466.16, 523.25},
	engine.Kitchen:    {392.00, 440.00},
	engine.Bedroom:    {587.33, 659.25},
	engine.LivingRoom: {349.23, 415.30},
}

// CryPitch returns the base frequency of the hazard cry for a room and spot slot
func CryPitch(room engine.Room, slot int) float64 {
	if !room.Valid() {
		room = engine.Bathroom
	}
	pitches := cryPitch[room]
	if slot < 0 || slot >= len(pitches) {
		slot = 0
	}
	return pitches[slot]
}

// CreateHazardCry generates the wail that announces an active hazard
func CreateHazardCry(room engine.Room, slot int, rate beep.SampleRate) beep.Streamer {
	pitch := CryPitch(room, slot)

	wail := newWail(pitch, constants.HazardCryDuration, rate)
	breath := NewOscillator(0, constants.HazardCryDuration, WaveNoise, rate)

	mixed := beep.Mix(
		newVolume(wail, 0.8),
		newVolume(breath, 0.1),
	)
	// beep.Mix never ends on its own; the envelope bounds the cry
	return newVolume(NewEnvelope(mixed, constants.HazardCryDuration, constants.HazardCryAttack, constants.HazardCryRelease, rate), 0.5)
}

// CreateVictoryChime generates a rising three-note arpeggio
func CreateVictoryChime(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99} // C5 E5 G5
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, constants.VictoryNoteDuration, WaveSquare, rate)
		seq = append(seq, NewEnvelope(osc, constants.VictoryNoteDuration, constants.VictoryNoteAttack, constants.VictoryNoteRelease, rate))
	}
	return newVolume(beep.Seq(seq...), 0.3)
}

// CreateGameOverSting generates a low detuned stab with a noisy tail
func CreateGameOverSting(rate beep.SampleRate) beep.Streamer {
	d := constants.GameOverStingDuration

	low := NewEnvelope(NewOscillator(73.42, d, WaveSaw, rate), d, constants.GameOverStingAttack, constants.GameOverStingRelease, rate)
	detuned := NewEnvelope(NewOscillator(77.78, d, WaveSaw, rate), d, constants.GameOverStingAttack, constants.GameOverStingRelease, rate)
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, constants.GameOverStingAttack, constants.GameOverStingRelease, rate)

	return newVolume(beep.Take(rate.N(d), beep.Mix(
		newVolume(low, 0.5),
		newVolume(detuned, 0.4),
		newVolume(noise, 0.15),
	)), 0.6)
}

// CueStreamer returns the streamer for a core cue, or nil for an unknown kind
func CueStreamer(c engine.Cue, rate beep.SampleRate) beep.Streamer {
	switch c.Kind {
	case engine.CueHazard:
		return CreateHazardCry(c.Room, c.Slot, rate)
	case engine.CueVictory:
		return CreateVictoryChime(rate)
	case engine.CueGameOver:
		return CreateGameOverSting(rate)
	default:
		return nil
	}
}
