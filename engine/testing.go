package engine

import (
	"fmt"
	"sync"
	"time"
)

// ScriptedRandom replays queued draws for deterministic tests. An exhausted queue yields 0.
type ScriptedRandom struct {
	Ints   []int
	Floats []float64
}

// Intn returns the next scripted int, reduced into [0, n)
func (r *ScriptedRandom) Intn(n int) int {
	if len(r.Ints) == 0 || n <= 0 {
		return 0
	}
	v := r.Ints[0]
	r.Ints = r.Ints[1:]
	if v < 0 {
		v = -v
	}
	return v % n
}

// Float64 returns the next scripted float in [0, 1)
func (r *ScriptedRandom) Float64() float64 {
	if len(r.Floats) == 0 {
		return 0
	}
	v := r.Floats[0]
	r.Floats = r.Floats[1:]
	return v
}

// Ramp is one recorded RampAmbient call
type Ramp struct {
	Target float64
	Over   time.Duration
}

// RecordingEffects records every effect request for assertions
type RecordingEffects struct {
	mu    sync.Mutex
	Cues  []Cue
	Ramps []Ramp
}

func (r *RecordingEffects) PlayCue(c Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Cues = append(r.Cues, c)
}

func (r *RecordingEffects) RampAmbient(target float64, over time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Ramps = append(r.Ramps, Ramp{Target: target, Over: over})
}

// CountCues returns how many cues of kind were played
func (r *RecordingEffects) CountCues(kind CueKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.Cues {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// SequentialRunIDs returns a run id generator yielding run-1, run-2, ...
func SequentialRunIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("run-%d", n)
	}
}

// NewTestSession builds a session on an 80x24 field with scripted randomness
func NewTestSession(now time.Time, rng RandomSource, fx Effects) *Session {
	if rng == nil {
		rng = &ScriptedRandom{}
	}
	return NewSession(now, SessionConfig{
		Layout:   NewLayout(80, 24, DefaultHazardSpots(), 0),
		Rules:    DefaultRules(),
		Catalog:  DefaultChoreCatalog(),
		Stages:   DefaultHauntStages(),
		Random:   rng,
		Effects:  fx,
		NewRunID: SequentialRunIDs(),
	})
}
