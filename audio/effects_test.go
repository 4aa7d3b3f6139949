package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/demon-diapers/constants"
	"github.com/lixenwraith/demon-diapers/engine"
)

// drain streams s until exhausted or limit samples, returning the count and the peak amplitude
func drain(s beep.Streamer, limit int) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorDuration verifies the oscillator stops after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 10*time.Millisecond, WaveSquare, rate)

	total, _ := drain(osc, 1<<20)
	if total != rate.N(10*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(10*time.Millisecond), total)
	}

	n, ok := osc.Stream(make([][2]float64, 10))
	if n != 0 || ok {
		t.Errorf("Expected drained oscillator to return 0,false, got %d,%v", n, ok)
	}
}

func TestWailStaysInRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	total, peak := drain(newWail(440, 200*time.Millisecond, rate), 1<<20)
	if total != rate.N(200*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(200*time.Millisecond), total)
	}
	if peak > 1.0 {
		t.Errorf("Expected peak <= 1, got %f", peak)
	}
}

// TestEnvelopeAttackPhase verifies the envelope starts silent and rises
func TestEnvelopeAttackPhase(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // phase stays 0, constant 1.0
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	samples := make([][2]float64, 200)
	n, _ := env.Stream(samples)
	if n != 200 {
		t.Fatalf("Expected 200 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 0.5 {
		t.Errorf("Expected half gain mid-attack, got %f", samples[50][0])
	}
	if samples[150][0] != 1.0 {
		t.Errorf("Expected full gain in sustain, got %f", samples[150][0])
	}
}

func TestEnvelopeReleaseReachesZero(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate)
	env := NewEnvelope(osc, time.Second, 0, 100*time.Millisecond, rate)

	samples := make([][2]float64, 1000)
	n, _ := env.Stream(samples)
	if n != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", n)
	}
	if samples[999][0] > 0.02 {
		t.Errorf("Expected near-silent last sample, got %f", samples[999][0])
	}
	if samples[900][0] != 1.0 {
		t.Errorf("Expected release to start at full gain, got %f", samples[900][0])
	}
}

func TestCryPitchTable(t *testing.T) {
	seen := make(map[float64]bool)
	for room := engine.Room(0); room < engine.RoomCount; room++ {
		for slot := 0; slot < 2; slot++ {
			p := CryPitch(room, slot)
			if p < 200 || p > 1000 {
				t.Errorf("Room %v slot %d: pitch %f outside cry range", room, slot, p)
			}
			if seen[p] {
				t.Errorf("Room %v slot %d: pitch %f reused", room, slot, p)
			}
			seen[p] = true
		}
	}

	if CryPitch(engine.Kitchen, -1) != CryPitch(engine.Kitchen, 0) {
		t.Error("Expected random placement to use the room's first pitch")
	}
	if CryPitch(engine.Kitchen, 7) != CryPitch(engine.Kitchen, 0) {
		t.Error("Expected out-of-table slot to use the room's first pitch")
	}
}

func TestCueStreamerLengths(t *testing.T) {
	rate := beep.SampleRate(constants.AudioSampleRate)

	tests := []struct {
		cue  engine.Cue
		want int
	}{
		{engine.Cue{Kind: engine.CueHazard, Room: engine.Bedroom, Slot: 1}, rate.N(constants.HazardCryDuration)},
		{engine.Cue{Kind: engine.CueVictory, Slot: -1}, 3 * rate.N(constants.VictoryNoteDuration)},
		{engine.Cue{Kind: engine.CueGameOver, Slot: -1}, rate.N(constants.GameOverStingDuration)},
	}

	for _, tt := range tests {
		t.Run(tt.cue.Kind.String(), func(t *testing.T) {
			s := CueStreamer(tt.cue, rate)
			if s == nil {
				t.Fatal("Expected a streamer")
			}
			total, peak := drain(s, 10*tt.want)
			if total != tt.want {
				t.Errorf("Expected %d samples, got %d", tt.want, total)
			}
			if peak == 0 {
				t.Error("Expected audible output")
			}
			if peak > 1.0 {
				t.Errorf("Expected peak <= 1, got %f", peak)
			}
		})
	}
}

func TestCueStreamerUnknownKind(t *testing.T) {
	if s := CueStreamer(engine.Cue{Kind: engine.CueKind(99)}, 44100); s != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}
