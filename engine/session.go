package engine

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// Terminal is the match outcome state
type Terminal int

const (
	Playing Terminal = iota
	GameOverBaby
	GameOverChore
	Won
)

func (t Terminal) String() string {
	switch t {
	case Playing:
		return "Playing"
	case GameOverBaby:
		return "GameOverBaby"
	case GameOverChore:
		return "GameOverChore"
	case Won:
		return "Won"
	default:
		return "Unknown"
	}
}

// Cause returns the short outcome tag: "baby", "task", "won" or "" while playing
func (t Terminal) Cause() string {
	switch t {
	case GameOverBaby:
		return "baby"
	case GameOverChore:
		return "task"
	case Won:
		return "won"
	default:
		return ""
	}
}

// IsOver reports whether the match has ended
func (t Terminal) IsOver() bool {
	return t != Playing
}

// SessionConfig wires a session to its geometry, rules and collaborators
type SessionConfig struct {
	Layout  *Layout
	Rules   Rules
	Catalog []ChoreSpec
	Stages  []HauntStage
	Random  RandomSource
	Effects Effects

	// NewRunID generates the id of each run; defaults to a random UUID
	NewRunID func() string
}

// RunSummary describes a finished or running match
type RunSummary struct {
	RunID           string
	StartedAt       time.Time
	EndedAt         time.Time
	Terminal        Terminal
	HazardsCleared  int
	ChoresCompleted int
}

// Duration returns how long the run lasted
func (s RunSummary) Duration() time.Duration {
	if s.EndedAt.IsZero() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// Session is the room controller: it owns the hazard and chore, the current room, the
// haunting schedule and the terminal state. All methods take the frame's sampled time.
type Session struct {
	layout  *Layout
	rules   Rules
	catalog []ChoreSpec
	rng     RandomSource
	fx      Effects
	newID   func() string

	runID      string
	room       Room
	matchStart time.Time
	endedAt    time.Time
	terminal   Terminal
	haunt      *hauntSchedule

	hazard *BabyHazardEvent
	chore  *ChoreEvent

	hazardsCleared  int
	choresCompleted int
}

// NewSession starts a match at now
func NewSession(now time.Time, cfg SessionConfig) *Session {
	s := &Session{
		layout:  cfg.Layout,
		rules:   cfg.Rules.withDefaults(),
		catalog: cfg.Catalog,
		rng:     cfg.Random,
		fx:      cfg.Effects,
		newID:   cfg.NewRunID,
	}
	if s.layout == nil {
		s.layout = NewLayout(80, 24, DefaultHazardSpots(), 0)
	}
	if s.rng == nil {
		s.rng = NewRandomSource(0)
	}
	if s.fx == nil {
		s.fx = NopEffects{}
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	stages := cfg.Stages
	if stages == nil {
		stages = DefaultHauntStages()
	}
	s.haunt = newHauntSchedule(stages)
	s.start(now)
	return s
}

// start (re)initialises every piece of per-run state
func (s *Session) start(now time.Time) {
	s.runID = s.newID()
	s.room = 0
	s.matchStart = now
	s.endedAt = time.Time{}
	s.terminal = Playing
	s.haunt.reset()
	s.hazardsCleared = 0
	s.choresCompleted = 0
	s.hazard = NewBabyHazardEvent(now, s.rng, s.rules, s.layout, s.onHazardActivate)
	s.chore = NewChoreEvent(now, s.rng, s.rules, s.layout, s.catalog, nil)
	log.Printf("[session] run %s started", s.runID)
}

func (s *Session) onHazardActivate(room Room, slot int) {
	s.fx.PlayCue(Cue{Kind: CueHazard, Room: room, Slot: slot})
}

// Reset abandons the current run and starts a fresh one at now
func (s *Session) Reset(now time.Time) {
	s.fx.RampAmbient(0, s.rules.AmbientFade)
	s.start(now)
}

// Tick advances the haunting schedule and the events, then checks the end conditions in
// priority order: win, hazard timeout, chore timeout. Terminal states are sticky.
// The haunting schedule follows wall time since the match start and keeps escalating
// behind the end screens; the events freeze.
func (s *Session) Tick(now time.Time) {
	elapsed := now.Sub(s.matchStart)
	for _, st := range s.haunt.advance(elapsed) {
		log.Printf("[session] run %s: %s haunted at %s", s.runID, st.Room, st.At)
		s.fx.RampAmbient(st.Volume, s.rules.AmbientFade)
	}

	if s.terminal != Playing {
		return
	}

	s.hazard.Update(now)
	s.chore.Update(now)

	switch {
	case elapsed >= s.rules.WinTime:
		s.finish(now, Won)
	case s.hazard.CheckTimeout(now):
		s.finish(now, GameOverBaby)
	case s.chore.CheckTimeout(now):
		s.finish(now, GameOverChore)
	}
}

func (s *Session) finish(now time.Time, t Terminal) {
	s.terminal = t
	s.endedAt = now
	if t == Won {
		s.fx.PlayCue(Cue{Kind: CueVictory, Slot: -1})
	} else {
		s.fx.PlayCue(Cue{Kind: CueGameOver, Slot: -1})
	}
	log.Printf("[session] run %s ended: %s after %s", s.runID, t, now.Sub(s.matchStart))
}

// Relayout moves both events onto the layout after it was rebuilt in place for a new
// screen size. Lifecycle state, timers and chore progress are kept.
func (s *Session) Relayout() {
	s.hazard.Relayout()
	s.chore.Relayout()
}

// Navigate moves delta rooms, clamped to the house; moving past either end is a no-op
func (s *Session) Navigate(delta int) {
	s.room = clampRoom(int(s.room) + delta)
}

// CanNavigate reports whether moving by delta would change rooms
func (s *Session) CanNavigate(delta int) bool {
	return clampRoom(int(s.room)+delta) != s.room
}

// HandlePoint dispatches a click: enabled navigation buttons first, then the hazard, then the
// chore. Returns true when something was hit. Ignored once the match is over.
func (s *Session) HandlePoint(p Point, now time.Time) bool {
	if s.terminal != Playing {
		return false
	}

	switch {
	case s.CanNavigate(-1) && s.layout.NavLeft.Contains(p):
		s.Navigate(-1)
		return true
	case s.CanNavigate(1) && s.layout.NavRight.Contains(p):
		s.Navigate(1)
		return true
	}

	if s.hazard.IsClicked(p, s.room, now) {
		s.hazardsCleared++
		return true
	}

	wasCompleted := s.chore.Completed()
	if s.chore.IsClicked(p, s.room, now) {
		if !wasCompleted && s.chore.Completed() {
			s.choresCompleted++
			log.Printf("[session] run %s: chore %q completed", s.runID, s.chore.Name())
		}
		return true
	}
	return false
}

// Room returns the room being viewed
func (s *Session) Room() Room { return s.room }

// Terminal returns the match state
func (s *Session) Terminal() Terminal { return s.terminal }

// Hazard returns the owned hazard event
func (s *Session) Hazard() *BabyHazardEvent { return s.hazard }

// Chore returns the owned chore event
func (s *Session) Chore() *ChoreEvent { return s.chore }

// Layout returns the field geometry
func (s *Session) Layout() *Layout { return s.layout }

// Rules returns the effective match rules
func (s *Session) Rules() Rules { return s.rules }

// RunID returns the id of the current run
func (s *Session) RunID() string { return s.runID }

// MatchStart returns when the current run began
func (s *Session) MatchStart() time.Time { return s.matchStart }

// HauntFired reports whether the stage at threshold has fired in this run
func (s *Session) HauntFired(threshold time.Duration) bool {
	return s.haunt.firedAt(threshold)
}

// Elapsed returns match time, frozen once the match is over
func (s *Session) Elapsed(now time.Time) time.Duration {
	if s.terminal != Playing {
		return s.endedAt.Sub(s.matchStart)
	}
	return now.Sub(s.matchStart)
}

// Summary describes the current run
func (s *Session) Summary() RunSummary {
	return RunSummary{
		RunID:           s.runID,
		StartedAt:       s.matchStart,
		EndedAt:         s.endedAt,
		Terminal:        s.terminal,
		HazardsCleared:  s.hazardsCleared,
		ChoresCompleted: s.choresCompleted,
	}
}
