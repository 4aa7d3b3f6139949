package engine

import (
	"time"
)

// EventState is the lifecycle state of a timed event
type EventState int

const (
	// Dormant events wait for their spawn time
	Dormant EventState = iota
	// Active events are visible, clickable and can time out
	Active
	// Resolved events sit in their grace period; only chores use it
	Resolved
)

func (s EventState) String() string {
	switch s {
	case Dormant:
		return "Dormant"
	case Active:
		return "Active"
	case Resolved:
		return "Resolved"
	default:
		return "Unknown"
	}
}

// ActivateHook is called when an event goes Dormant -> Active
type ActivateHook func(room Room, slot int)

// timedEvent is the spawn -> active -> resolve -> reset cycle shared by hazards and chores.
// It is embedded, never used on its own.
//
// Invariant: activatedAt is non-zero iff state is Active or Resolved.
type timedEvent struct {
	room     Room
	position Point
	slot     int
	radius   float64

	// placed is the position relative to the field it was drawn on
	placed Fraction

	state       EventState
	nextSpawn   time.Time
	activatedAt time.Time

	timeout    time.Duration
	onActivate ActivateHook
}

// respawn places the event and schedules its next activation from now
func (e *timedEvent) respawn(now time.Time, rng RandomSource, rules Rules, layout *Layout, room Room, candidates []Point) {
	e.room = room
	e.position, e.slot = layout.pickPosition(rng, candidates, e.radius)
	e.placed = layout.fractionOf(e.position)
	e.state = Dormant
	e.activatedAt = time.Time{}
	e.nextSpawn = now.Add(uniformDuration(rng, rules.SpawnDelayMin, rules.SpawnDelayMax))
}

// relocate maps the current placement onto a rebuilt layout without touching the lifecycle.
// A candidate placement takes the same candidate on the new field; a random one is rescaled
// and clamped into the safe bounds.
func (e *timedEvent) relocate(layout *Layout, candidates []Point) {
	if e.slot >= 0 && e.slot < len(candidates) {
		e.position = candidates[e.slot]
	} else {
		e.position = layout.clampPoint(layout.Resolve(e.placed), e.radius)
	}
	e.placed = layout.fractionOf(e.position)
}

// activateIfDue performs Dormant -> Active once the spawn time has been reached
func (e *timedEvent) activateIfDue(now time.Time) bool {
	if e.state != Dormant || now.Before(e.nextSpawn) {
		return false
	}
	e.state = Active
	e.activatedAt = now
	if e.onActivate != nil {
		e.onActivate(e.room, e.slot)
	}
	return true
}

// hit tests a click against the event; only Active events in the viewed room can be hit,
// and the radius boundary counts as a hit
func (e *timedEvent) hit(p Point, room Room) bool {
	if e.state != Active || room != e.room {
		return false
	}
	return p.Distance(e.position) <= e.radius
}

// CheckTimeout reports whether the event has been Active for longer than its timeout.
// It does not change state; the owner must act on it.
func (e *timedEvent) CheckTimeout(now time.Time) bool {
	return e.state == Active && now.Sub(e.activatedAt) > e.timeout
}

// Room returns the room the event spawned in
func (e *timedEvent) Room() Room { return e.room }

// Position returns the event position
func (e *timedEvent) Position() Point { return e.position }

// Slot returns the candidate index the position came from, -1 for a random placement
func (e *timedEvent) Slot() int { return e.slot }

// Radius returns the interaction radius
func (e *timedEvent) Radius() float64 { return e.radius }

// State returns the lifecycle state
func (e *timedEvent) State() EventState { return e.state }

// IsActive reports whether the event is Active
func (e *timedEvent) IsActive() bool { return e.state == Active }

// NextSpawn returns when a Dormant event becomes Active
func (e *timedEvent) NextSpawn() time.Time { return e.nextSpawn }

// Timeout returns the activation timeout
func (e *timedEvent) Timeout() time.Duration { return e.timeout }

// ActivatedAt returns the activation time; ok is false while Dormant
func (e *timedEvent) ActivatedAt() (time.Time, bool) {
	if e.state == Dormant {
		return time.Time{}, false
	}
	return e.activatedAt, true
}

// TimeLeft returns the time remaining before an Active event times out
func (e *timedEvent) TimeLeft(now time.Time) time.Duration {
	if e.state != Active {
		return 0
	}
	left := e.timeout - now.Sub(e.activatedAt)
	if left < 0 {
		return 0
	}
	return left
}
