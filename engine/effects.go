package engine

import "time"

// CueKind names a one-shot sound
type CueKind int

const (
	CueHazard CueKind = iota
	CueVictory
	CueGameOver
)

func (k CueKind) String() string {
	switch k {
	case CueHazard:
		return "hazard"
	case CueVictory:
		return "victory"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Cue is a fire-and-forget sound request. Hazard cues carry the (room, slot) the hazard
// appeared at so the audio side can pick a matching sound; other cues leave Slot at -1.
type Cue struct {
	Kind CueKind
	Room Room
	Slot int
}

// Effects is the audio collaborator driven by the session
type Effects interface {
	PlayCue(c Cue)
	RampAmbient(target float64, over time.Duration)
}

// NopEffects discards every request
type NopEffects struct{}

func (NopEffects) PlayCue(Cue)                         {}
func (NopEffects) RampAmbient(float64, time.Duration) {}
