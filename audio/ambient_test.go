package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

// constantStreamer emits 1.0 forever
var constantStreamer = beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{1, 1}
	}
	return len(samples), true
})

func TestFaderHoldsInitialLevel(t *testing.T) {
	f := newFader(constantStreamer, 0.25)
	samples := make([][2]float64, 10)
	f.Stream(samples)
	for i, s := range samples {
		if s[0] != 0.25 {
			t.Fatalf("Sample %d: expected 0.25, got %f", i, s[0])
		}
	}
}

func TestFaderRampIsEasedAndMonotone(t *testing.T) {
	f := newFader(constantStreamer, 0)
	f.rampTo(1, 100)

	samples := make([][2]float64, 120)
	f.Stream(samples)

	if samples[0][0] != 0 {
		t.Errorf("Expected ramp to start at 0, got %f", samples[0][0])
	}
	if math.Abs(samples[50][0]-0.5) > 1e-9 {
		t.Errorf("Expected 0.5 at the midpoint, got %f", samples[50][0])
	}
	// Cubic easing starts slow
	if samples[10][0] >= 0.1 {
		t.Errorf("Expected eased start below linear, got %f", samples[10][0])
	}
	for i := 1; i < len(samples); i++ {
		if samples[i][0] < samples[i-1][0] {
			t.Fatalf("Ramp not monotone at %d: %f < %f", i, samples[i][0], samples[i-1][0])
		}
	}
	if samples[119][0] != 1 {
		t.Errorf("Expected target after ramp, got %f", samples[119][0])
	}
}

func TestFaderRetargetStartsFromCurrentLevel(t *testing.T) {
	f := newFader(constantStreamer, 0)
	f.rampTo(1, 100)
	f.Stream(make([][2]float64, 50))

	mid := f.level()
	f.rampTo(0, 100)
	if f.level() != mid {
		t.Errorf("Expected new ramp to start at %f, got %f", mid, f.level())
	}

	samples := make([][2]float64, 101)
	f.Stream(samples)
	if samples[100][0] != 0 {
		t.Errorf("Expected 0 after fade out, got %f", samples[100][0])
	}
}

func TestFaderImmediateJump(t *testing.T) {
	f := newFader(constantStreamer, 0)
	f.rampTo(0.4, 0)
	if f.level() != 0.4 {
		t.Errorf("Expected immediate jump to 0.4, got %f", f.level())
	}
}

func TestEaseInOutCubicEndpoints(t *testing.T) {
	if easeInOutCubic(0) != 0 || easeInOutCubic(1) != 1 || easeInOutCubic(0.5) != 0.5 {
		t.Errorf("Unexpected endpoints: %f %f %f", easeInOutCubic(0), easeInOutCubic(0.5), easeInOutCubic(1))
	}
}

func TestDroneIsEndlessAndBounded(t *testing.T) {
	g := newDroneGenerator(44100)
	total, peak := drain(g, 44100)
	if total < 44100 {
		t.Errorf("Expected drone to keep streaming, got %d samples", total)
	}
	if peak == 0 || peak > 1 {
		t.Errorf("Expected audible bounded drone, got peak %f", peak)
	}
}
