package engine

import (
	"time"
)

// BabyHazardEvent is the baby-in-danger marker. A single click inside its radius clears it
// and it respawns straight away; leaving it Active past the hazard timeout kills the baby.
type BabyHazardEvent struct {
	timedEvent

	rng    RandomSource
	rules  Rules
	layout *Layout
}

// NewBabyHazardEvent spawns a hazard in a random room, Dormant until its spawn delay passes
func NewBabyHazardEvent(now time.Time, rng RandomSource, rules Rules, layout *Layout, onActivate ActivateHook) *BabyHazardEvent {
	rules = rules.withDefaults()
	e := &BabyHazardEvent{
		rng:    rng,
		rules:  rules,
		layout: layout,
	}
	e.radius = layout.HazardRadius
	e.timeout = rules.HazardTimeout
	e.onActivate = onActivate
	e.Reset(now)
	return e
}

// Reset draws a fresh room, position and spawn time
func (e *BabyHazardEvent) Reset(now time.Time) {
	room := Room(e.rng.Intn(RoomCount))
	e.respawn(now, e.rng, e.rules, e.layout, room, e.layout.HazardSpots[room])
}

// Relayout moves the hazard onto the current layout after a resize
func (e *BabyHazardEvent) Relayout() {
	e.relocate(e.layout, e.layout.HazardSpots[e.room])
}

// Update activates the hazard once its spawn time is reached
func (e *BabyHazardEvent) Update(now time.Time) {
	e.activateIfDue(now)
}

// IsClicked tests a click made while viewing room; a hit resets the hazard immediately
func (e *BabyHazardEvent) IsClicked(p Point, room Room, now time.Time) bool {
	if !e.hit(p, room) {
		return false
	}
	e.Reset(now)
	return true
}
